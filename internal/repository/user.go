package repository

import (
	"context"

	"movievault/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByName(ctx context.Context, name string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error)
}
