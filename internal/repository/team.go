package repository

import (
	"context"

	"movievault/internal/domain"
)

// TeamRepository defines persistence operations for Team entities. AddMember
// and RemoveMemberByName run their read-check-write sequence inside a single
// transaction so the roster cap holds under concurrent requests.
type TeamRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, team *domain.Team) error
	Get(ctx context.Context, id string) (*domain.Team, error)
	AddMember(ctx context.Context, id string, member domain.Member) error
	RemoveMemberByName(ctx context.Context, id, name string) error
}
