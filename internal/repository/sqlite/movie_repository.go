package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"movievault/internal/domain"
	"movievault/internal/repository"
)

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL UNIQUE,
	year INTEGER NOT NULL,
	poster TEXT NOT NULL DEFAULT '',
	fullplot TEXT NOT NULL UNIQUE,
	genres TEXT NOT NULL DEFAULT '[]',
	last_updated DATETIME NOT NULL
);
`

type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) repository.MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createMoviesTable); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	return nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	movie.LastUpdated = time.Now().UTC()

	genres, err := marshalGenres(movie.Genres)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO movies (id, title, year, poster, fullplot, genres, last_updated)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		movie.ID,
		movie.Title,
		movie.Year,
		movie.Poster,
		movie.FullPlot,
		genres,
		movie.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert movie: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) Get(ctx context.Context, id string) (*domain.Movie, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, year, poster, fullplot, genres, last_updated
FROM movies
WHERE id = ?`,
		id,
	)
	return scanMovie(row)
}

func (r *MovieRepository) List(ctx context.Context, filter domain.MovieFilter) ([]domain.Movie, error) {
	var (
		conds []string
		args  []any
	)
	if prefix := strings.TrimSpace(filter.TitlePrefix); prefix != "" {
		conds = append(conds, `title LIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(prefix)+"%")
	}
	if filter.Year != 0 {
		conds = append(conds, `year = ?`)
		args = append(args, filter.Year)
	}

	query := `
SELECT id, title, year, poster, fullplot, genres, last_updated
FROM movies`
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY title ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		if len(filter.Genres) > 0 && !hasAnyGenre(movie.Genres, filter.Genres) {
			continue
		}
		movies = append(movies, *movie)
	}

	return movies, rows.Err()
}

func (r *MovieRepository) Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error) {
	var (
		sets = []string{"last_updated = ?"}
		args = []any{time.Now().UTC()}
	)
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Year != nil {
		sets = append(sets, "year = ?")
		args = append(args, *update.Year)
	}
	if update.Poster != nil {
		sets = append(sets, "poster = ?")
		args = append(args, *update.Poster)
	}
	if update.FullPlot != nil {
		sets = append(sets, "fullplot = ?")
		args = append(args, *update.FullPlot)
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`
UPDATE movies
SET %s
WHERE id = ?`, strings.Join(sets, ", ")), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update movie: %w", repository.ErrDuplicate)
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("movie update rows affected: %w", err)
	}
	if aff == 0 {
		return nil, repository.ErrNotFound
	}

	return r.Get(ctx, id)
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	movie, err := scanMovie(tx.QueryRowContext(ctx, `
SELECT id, title, year, poster, fullplot, genres, last_updated
FROM movies
WHERE id = ?`,
		id,
	))
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit movie delete: %w", err)
	}
	return movie, nil
}

func (r *MovieRepository) ExistsByTitleOrPlot(ctx context.Context, title, plot string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM movies WHERE title = ? OR fullplot = ?`,
		title,
		plot,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count movies: %w", err)
	}
	return count > 0, nil
}

func scanMovie(row interface {
	Scan(dest ...any) error
}) (*domain.Movie, error) {
	var (
		movie  domain.Movie
		genres string
	)
	if err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Poster,
		&movie.FullPlot,
		&genres,
		&movie.LastUpdated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan movie: %w", err)
	}
	if err := json.Unmarshal([]byte(genres), &movie.Genres); err != nil {
		return nil, fmt.Errorf("decode movie genres: %w", err)
	}
	return &movie, nil
}

func marshalGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	raw, err := json.Marshal(genres)
	if err != nil {
		return "", fmt.Errorf("encode movie genres: %w", err)
	}
	return string(raw), nil
}

// escapeLike neutralizes LIKE metacharacters so a user supplied prefix matches
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// hasAnyGenre reports whether any wanted genre appears verbatim in the movie's
// genre list. Genres are curated values, so matching is exact.
func hasAnyGenre(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
