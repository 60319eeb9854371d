package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"movievault/internal/domain"
	"movievault/internal/repository"
)

var (
	// ErrMovieNotFound indicates the movie id does not resolve.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrMovieAlreadyExists is returned when the title or plot is already taken.
	ErrMovieAlreadyExists = errors.New("movie already exists")
)

// MovieService coordinates catalog operations backed by the movie repository.
type MovieService interface {
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context, filter domain.MovieFilter) ([]domain.Movie, error)
	Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
	SetPoster(ctx context.Context, id, poster string) (*domain.Movie, error)
}

type movieService struct {
	movies repository.MovieRepository
}

func NewMovieService(movies repository.MovieRepository) MovieService {
	return &movieService{movies: movies}
}

func (s *movieService) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	movie.Title = strings.TrimSpace(movie.Title)
	movie.FullPlot = strings.TrimSpace(movie.FullPlot)

	if movie.Title == "" || movie.Year == 0 || movie.FullPlot == "" {
		return nil, fmt.Errorf("%w: title, year and fullplot are required", ErrValidation)
	}

	exists, err := s.movies.ExistsByTitleOrPlot(ctx, movie.Title, movie.FullPlot)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMovieAlreadyExists
	}

	movie.ID = uuid.NewString()
	if err := s.movies.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMovieAlreadyExists
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	movie, err := s.movies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) List(ctx context.Context, filter domain.MovieFilter) ([]domain.Movie, error) {
	return s.movies.List(ctx, filter)
}

func (s *movieService) Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error) {
	if update.Empty() {
		return nil, fmt.Errorf("%w: no updatable fields in request", ErrValidation)
	}

	movie, err := s.movies.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrMovieNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrMovieAlreadyExists
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	movie, err := s.movies.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) SetPoster(ctx context.Context, id, poster string) (*domain.Movie, error) {
	return s.Update(ctx, id, domain.MovieUpdate{Poster: &poster})
}
