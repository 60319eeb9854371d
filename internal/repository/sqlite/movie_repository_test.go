package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"movievault/internal/domain"
	"movievault/internal/repository"
)

func newMovieRepo(t *testing.T) repository.MovieRepository {
	t.Helper()

	repo := NewMovieRepository(newTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func testMovie(title string, year int, genres ...string) *domain.Movie {
	return &domain.Movie{
		ID:       uuid.NewString(),
		Title:    title,
		Year:     year,
		FullPlot: "plot of " + title,
		Genres:   genres,
	}
}

func TestMovieCreateAndGet(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)
	ctx := context.Background()

	movie := testMovie("Inception", 2010, "Sci-Fi", "Thriller")
	movie.Poster = "http://example.com/inception.jpg"
	require.NoError(t, repo.Create(ctx, movie))
	require.False(t, movie.LastUpdated.IsZero())

	got, err := repo.Get(ctx, movie.ID)
	require.NoError(t, err)
	require.Equal(t, "Inception", got.Title)
	require.Equal(t, 2010, got.Year)
	require.Equal(t, "http://example.com/inception.jpg", got.Poster)
	require.Equal(t, []string{"Sci-Fi", "Thriller"}, got.Genres)
}

func TestMovieUniqueTitleOrPlot(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testMovie("Inception", 2010)))

	err := repo.Create(ctx, testMovie("Inception", 2011))
	require.ErrorIs(t, err, repository.ErrDuplicate)

	dup := testMovie("Other Title", 2011)
	dup.FullPlot = "plot of Inception"
	require.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicate)
}

func TestMovieListTitlePrefix(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testMovie("Inception", 2010)))
	require.NoError(t, repo.Create(ctx, testMovie("Sinception", 2012)))

	movies, err := repo.List(ctx, domain.MovieFilter{TitlePrefix: "Inc"})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, "Inception", movies[0].Title)

	// prefix match is case-insensitive
	movies, err = repo.List(ctx, domain.MovieFilter{TitlePrefix: "inc"})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, "Inception", movies[0].Title)
}

func TestMovieListYearAndGenres(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testMovie("Inception", 2010, "Sci-Fi")))
	require.NoError(t, repo.Create(ctx, testMovie("The Prestige", 2006, "Drama")))
	require.NoError(t, repo.Create(ctx, testMovie("Tenet", 2020, "Sci-Fi", "Action")))

	movies, err := repo.List(ctx, domain.MovieFilter{Year: 2010})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, "Inception", movies[0].Title)

	movies, err = repo.List(ctx, domain.MovieFilter{Genres: []string{"Sci-Fi"}})
	require.NoError(t, err)
	require.Len(t, movies, 2)

	movies, err = repo.List(ctx, domain.MovieFilter{Genres: []string{"Drama", "Action"}})
	require.NoError(t, err)
	require.Len(t, movies, 2)

	movies, err = repo.List(ctx, domain.MovieFilter{Genres: []string{"Horror"}})
	require.NoError(t, err)
	require.Empty(t, movies)

	// genre matching is exact, not case-folded
	movies, err = repo.List(ctx, domain.MovieFilter{Genres: []string{"sci-fi"}})
	require.NoError(t, err)
	require.Empty(t, movies)
}

func TestMovieListLikeMetacharacters(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testMovie("100% Wolf", 2020)))
	require.NoError(t, repo.Create(ctx, testMovie("1001 Nights", 2015)))

	movies, err := repo.List(ctx, domain.MovieFilter{TitlePrefix: "100%"})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, "100% Wolf", movies[0].Title)
}

func TestMovieUpdate(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)
	ctx := context.Background()

	movie := testMovie("Inception", 2010)
	require.NoError(t, repo.Create(ctx, movie))
	created := movie.LastUpdated

	title := "Inception (Director's Cut)"
	year := 2011
	updated, err := repo.Update(ctx, movie.ID, domain.MovieUpdate{Title: &title, Year: &year})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, 2011, updated.Year)
	require.Equal(t, movie.FullPlot, updated.FullPlot)
	require.False(t, updated.LastUpdated.Before(created))
}

func TestMovieUpdateMissing(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)

	title := "x"
	_, err := repo.Update(context.Background(), uuid.NewString(), domain.MovieUpdate{Title: &title})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieDelete(t *testing.T) {
	t.Parallel()

	repo := newMovieRepo(t)
	ctx := context.Background()

	movie := testMovie("Inception", 2010)
	require.NoError(t, repo.Create(ctx, movie))

	deleted, err := repo.Delete(ctx, movie.ID)
	require.NoError(t, err)
	require.Equal(t, "Inception", deleted.Title)

	_, err = repo.Get(ctx, movie.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Delete(ctx, movie.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
