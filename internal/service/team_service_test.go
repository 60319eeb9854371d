package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"movievault/internal/domain"
	"movievault/internal/repository"
)

type fakeTeamRepo struct {
	teams map[string]*domain.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[string]*domain.Team{}}
}

func (f *fakeTeamRepo) Init(ctx context.Context) error { return nil }

func (f *fakeTeamRepo) Create(ctx context.Context, team *domain.Team) error {
	if _, ok := f.teams[team.ID]; ok {
		return repository.ErrDuplicate
	}
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) Get(ctx context.Context, id string) (*domain.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) AddMember(ctx context.Context, id string, member domain.Member) error {
	team, ok := f.teams[id]
	if !ok {
		return repository.ErrNotFound
	}
	if len(team.Members) >= domain.TeamCapacity {
		return repository.ErrTeamFull
	}
	team.Members = append(team.Members, member)
	return nil
}

func (f *fakeTeamRepo) RemoveMemberByName(ctx context.Context, id, name string) error {
	team, ok := f.teams[id]
	if !ok {
		return repository.ErrNotFound
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
	team.Members = kept
	return nil
}

func TestTeamCreateGeneratesID(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(newFakeTeamRepo())

	team, err := svc.Create(context.Background(), "", "Kanto Squad")
	require.NoError(t, err)
	require.NotEmpty(t, team.ID)
	require.Equal(t, "Kanto Squad", team.Name)
}

func TestTeamCreateDuplicate(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(newFakeTeamRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "kanto", "")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "kanto", "")
	require.ErrorIs(t, err, ErrTeamAlreadyExists)
}

func TestTeamAddMemberValidation(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(newFakeTeamRepo())

	err := svc.AddMember(context.Background(), "kanto", domain.Member{Name: "  "})
	require.ErrorIs(t, err, ErrValidation)
}

func TestTeamAddMemberErrors(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo()
	svc := NewTeamService(repo)
	ctx := context.Background()

	err := svc.AddMember(ctx, "nowhere", domain.Member{Name: "pikachu"})
	require.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.Create(ctx, "kanto", "")
	require.NoError(t, err)
	for i := 0; i < domain.TeamCapacity; i++ {
		require.NoError(t, svc.AddMember(ctx, "kanto", domain.Member{Name: "m"}))
	}

	err = svc.AddMember(ctx, "kanto", domain.Member{Name: "extra"})
	require.ErrorIs(t, err, ErrTeamFull)
}

func TestTeamRemoveMemberErrors(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(newFakeTeamRepo())
	ctx := context.Background()

	err := svc.RemoveMemberByName(ctx, "kanto", "")
	require.ErrorIs(t, err, ErrValidation)

	err = svc.RemoveMemberByName(ctx, "nowhere", "pikachu")
	require.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.Create(ctx, "kanto", "")
	require.NoError(t, err)
	err = svc.RemoveMemberByName(ctx, "kanto", "pikachu")
	require.ErrorIs(t, err, ErrMemberNotFound)
}
