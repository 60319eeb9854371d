package repository

import (
	"context"

	"movievault/internal/domain"
)

// MovieRepository defines persistence operations for Movie entities.
type MovieRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, movie *domain.Movie) error
	Get(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context, filter domain.MovieFilter) ([]domain.Movie, error)
	Update(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
	ExistsByTitleOrPlot(ctx context.Context, title, plot string) (bool, error)
}
