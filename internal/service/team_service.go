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
	// ErrTeamNotFound indicates the team id does not resolve.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamAlreadyExists is returned when the team id is already taken.
	ErrTeamAlreadyExists = errors.New("team already exists")
	// ErrTeamFull indicates the roster already holds the maximum member count.
	ErrTeamFull = errors.New("team is full")
	// ErrMemberNotFound indicates the team holds no member with that name.
	ErrMemberNotFound = errors.New("member not found in team")
)

// TeamService coordinates roster operations backed by the team repository.
type TeamService interface {
	Create(ctx context.Context, id, name string) (*domain.Team, error)
	Get(ctx context.Context, id string) (*domain.Team, error)
	AddMember(ctx context.Context, id string, member domain.Member) error
	RemoveMemberByName(ctx context.Context, id, name string) error
}

type teamService struct {
	teams repository.TeamRepository
}

func NewTeamService(teams repository.TeamRepository) TeamService {
	return &teamService{teams: teams}
}

func (s *teamService) Create(ctx context.Context, id, name string) (*domain.Team, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}

	team := &domain.Team{
		ID:      id,
		Name:    strings.TrimSpace(name),
		Members: []domain.Member{},
	}
	if err := s.teams.Create(ctx, team); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrTeamAlreadyExists
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teams.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) AddMember(ctx context.Context, id string, member domain.Member) error {
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return fmt.Errorf("%w: member name is required", ErrValidation)
	}

	if err := s.teams.AddMember(ctx, id, member); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrTeamNotFound
		case errors.Is(err, repository.ErrTeamFull):
			return ErrTeamFull
		}
		return err
	}
	return nil
}

func (s *teamService) RemoveMemberByName(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: member name is required", ErrValidation)
	}

	if err := s.teams.RemoveMemberByName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrTeamNotFound
		case errors.Is(err, repository.ErrMemberNotFound):
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}
