package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movievault/internal/domain"
	"movievault/internal/repository"
)

const createTeamsTable = `
CREATE TABLE IF NOT EXISTS teams (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	members TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) repository.TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTeamsTable); err != nil {
		return fmt.Errorf("create teams table: %w", err)
	}
	return nil
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	now := time.Now().UTC()
	team.CreatedAt = now
	team.UpdatedAt = now

	members, err := marshalMembers(team.Members)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO teams (id, name, members, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		team.ID,
		team.Name,
		members,
		team.CreatedAt,
		team.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert team: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Get(ctx context.Context, id string) (*domain.Team, error) {
	return getTeam(ctx, r.db, id)
}

// AddMember appends to the roster only while it holds fewer than
// domain.TeamCapacity entries. The read and the conditional write share one
// transaction, which distinguishes a missing team from a full one.
func (r *TeamRepository) AddMember(ctx context.Context, id string, member domain.Member) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	team, err := getTeam(ctx, tx, id)
	if err != nil {
		return err
	}
	if len(team.Members) >= domain.TeamCapacity {
		return repository.ErrTeamFull
	}

	if err := writeMembers(ctx, tx, id, append(team.Members, member)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit member add: %w", err)
	}
	return nil
}

// RemoveMemberByName drops every roster entry with the given name.
func (r *TeamRepository) RemoveMemberByName(ctx context.Context, id, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	team, err := getTeam(ctx, tx, id)
	if err != nil {
		return err
	}

	kept := team.Members[:0:0]
	for _, m := range team.Members {
		if m.Name != name {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(team.Members) {
		return repository.ErrMemberNotFound
	}

	if err := writeMembers(ctx, tx, id, kept); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit member remove: %w", err)
	}
	return nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getTeam(ctx context.Context, q querier, id string) (*domain.Team, error) {
	var (
		team    domain.Team
		members string
	)
	err := q.QueryRowContext(ctx, `
SELECT id, name, members, created_at, updated_at
FROM teams
WHERE id = ?`,
		id,
	).Scan(
		&team.ID,
		&team.Name,
		&members,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan team: %w", err)
	}
	if err := json.Unmarshal([]byte(members), &team.Members); err != nil {
		return nil, fmt.Errorf("decode team members: %w", err)
	}
	return &team, nil
}

func writeMembers(ctx context.Context, q querier, id string, members []domain.Member) error {
	raw, err := marshalMembers(members)
	if err != nil {
		return err
	}
	if _, err := q.ExecContext(ctx, `
UPDATE teams
SET members = ?, updated_at = ?
WHERE id = ?`,
		raw,
		time.Now().UTC(),
		id,
	); err != nil {
		return fmt.Errorf("update team members: %w", err)
	}
	return nil
}

func marshalMembers(members []domain.Member) (string, error) {
	if members == nil {
		members = []domain.Member{}
	}
	raw, err := json.Marshal(members)
	if err != nil {
		return "", fmt.Errorf("encode team members: %w", err)
	}
	return string(raw), nil
}
