package service_test

import (
	"context"
	"errors"
	"testing"

	"litepos/internal/dto"
	"litepos/internal/model"
	"litepos/internal/repository"
	"litepos/internal/service"
	"litepos/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[int64]*model.User
	nextID int64
	err    error
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*model.User)}
}

func (r *stubUserRepo) Login(_ context.Context, pinHash string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.PINHash == pinHash && u.IsActive {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) Create(_ context.Context, in dto.CreateUserInput) (int64, error) {
	r.nextID++
	r.users[r.nextID] = &model.User{
		ID: r.nextID, Name: in.Name, Email: in.Email, PINHash: in.PINHash, Role: in.Role, IsActive: true,
	}
	return r.nextID, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, p dto.UserPatch) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	if p.PINHash != nil {
		u.PINHash = *p.PINHash
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestHashPIN_Deterministic(t *testing.T) {
	assert.Equal(t, service.HashPIN("1234"), service.HashPIN("1234"))
	assert.NotEqual(t, service.HashPIN("1234"), service.HashPIN("1235"))
	assert.Len(t, service.HashPIN("1234"), 64)
	assert.NotContains(t, service.HashPIN("1234"), "1234")
}

func TestAuthService_LoginSetsSession(t *testing.T) {
	repo := newStubUserRepo()
	session := state.NewSession()
	svc := service.NewAuthService(repo, session)
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, dto.CreateUserRequest{Name: "Ana", PIN: "4321", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, service.HashPIN("4321"), repo.users[id].PINHash)

	u, err := svc.Login(ctx, "4321")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.True(t, session.IsAuthenticated())
	assert.True(t, session.IsAdmin())

	svc.Logout()
	assert.False(t, session.IsAuthenticated())
}

func TestAuthService_LoginRejectsUnknownPIN(t *testing.T) {
	repo := newStubUserRepo()
	session := state.NewSession()
	svc := service.NewAuthService(repo, session)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{Name: "Bo", PIN: "1111"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "2222")
	assert.ErrorIs(t, err, service.ErrInvalidPIN)
	_, err = svc.Login(ctx, "")
	assert.ErrorIs(t, err, service.ErrInvalidPIN)
	assert.False(t, session.IsAuthenticated())
}

func TestAuthService_LoginPropagatesStorageError(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = errors.New("disk I/O error")
	svc := service.NewAuthService(repo, state.NewSession())

	_, err := svc.Login(context.Background(), "1234")
	assert.EqualError(t, err, "disk I/O error")
}

func TestAuthService_ChangePIN(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewAuthService(repo, state.NewSession())
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, dto.CreateUserRequest{Name: "Cy", PIN: "0000"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangePIN(ctx, id, "9999"))
	assert.ErrorIs(t, svc.ChangePIN(ctx, id, ""), service.ErrInvalidPIN)

	_, err = svc.Login(ctx, "0000")
	assert.ErrorIs(t, err, service.ErrInvalidPIN)
	u, err := svc.Login(ctx, "9999")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
}
