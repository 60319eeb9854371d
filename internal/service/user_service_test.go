package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"movievault/internal/domain"
	"movievault/internal/repository"
)

type fakeUserRepo struct {
	byName map[string]*domain.User
	byID   map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byName: map[string]*domain.User{},
		byID:   map[string]*domain.User{},
	}
}

func (f *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := f.byName[user.Name]; ok {
		return repository.ErrDuplicate
	}
	f.byName[user.Name] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	user, ok := f.byName[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error) {
	if _, ok := f.byName[name]; ok {
		return true, nil
	}
	for _, u := range f.byName {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), "ash", "ash@example.com", "pikachu123")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Empty(t, user.PasswordHash, "hash must not leave the service")

	stored := repo.byName["ash"]
	require.NotEqual(t, "pikachu123", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pikachu123")))
}

func TestRegisterKeepsPasswordBytes(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	const padded = "  staryu123  "
	created, err := svc.Register(ctx, "misty", "misty@example.com", padded)
	require.NoError(t, err)

	// the exact bytes used at registration must authenticate
	user, err := svc.Authenticate(ctx, "misty", padded)
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	_, err = svc.Authenticate(ctx, "misty", "staryu123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	for _, tc := range []struct {
		name, email, password string
	}{
		{"", "a@b.c", "secret123"},
		{"ash", "", "secret123"},
		{"ash", "a@b.c", ""},
		{"ash", "a@b.c", "   "},
		{"  ", "a@b.c", "secret123"},
	} {
		_, err := svc.Register(ctx, tc.name, tc.email, tc.password)
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "ash", "ash@example.com", "pikachu123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ash", "other@example.com", "pikachu123")
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(ctx, "misty", "ash@example.com", "pikachu123")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, "ash", "ash@example.com", "pikachu123")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "ash", "pikachu123")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.Empty(t, user.PasswordHash)

	_, err = svc.Authenticate(ctx, "ash", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "pikachu123")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, "ash", "ash@example.com", "pikachu123")
	require.NoError(t, err)

	user, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "ash", user.Name)
	require.Empty(t, user.PasswordHash)

	_, err = svc.GetByID(ctx, "missing-id")
	require.ErrorIs(t, err, ErrUserNotFound)
}
