package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"movie-catalog-service/internal/jwt"
	"movie-catalog-service/internal/model"
	"movie-catalog-service/internal/service"
)

type fakeAccountRepo struct {
	byName map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byName: map[string]*model.Account{}}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *model.Account) (uuid.UUID, error) {
	id := uuid.New()
	stored := *account
	stored.ID = id
	f.byName[account.Username] = &stored
	return id, nil
}

func (f *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*model.Account, error) {
	return f.byName[username], nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Account, error) {
	for _, a := range f.byName {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func TestRegisterThenLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeAccountRepo()
	s := service.NewAuthService(repo)

	account, err := s.Register(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, account.Role)
	require.NotEqual(t, "hunter22", account.PasswordHash)

	// stored hash verifies against the original password
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("hunter22")))

	token, role, err := s.Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, role)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, claims["role"])
	require.Equal(t, "alice", claims["username"])
}

func TestRegister_ExistingName_Conflict(t *testing.T) {
	repo := newFakeAccountRepo()
	s := service.NewAuthService(repo)

	_, err := s.Register(context.Background(), "alice", "first")
	require.NoError(t, err)
	originalHash := repo.byName["alice"].PasswordHash

	_, err = s.Register(context.Background(), "alice", "second")
	require.ErrorIs(t, err, service.ErrUsernameTaken)

	// the existing record is untouched
	require.Equal(t, originalHash, repo.byName["alice"].PasswordHash)
}

func TestLogin_UnknownName(t *testing.T) {
	s := service.NewAuthService(newFakeAccountRepo())

	_, _, err := s.Login(context.Background(), "ghost", "pw")
	require.ErrorIs(t, err, service.ErrAccountNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeAccountRepo()
	s := service.NewAuthService(repo)

	_, err := s.Register(context.Background(), "alice", "correct")
	require.NoError(t, err)

	_, _, err = s.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_AdminRoleInToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("adminpw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := newFakeAccountRepo()
	repo.byName["root"] = &model.Account{ID: uuid.New(), Username: "root", PasswordHash: string(hash), Role: model.RoleAdmin}

	s := service.NewAuthService(repo)
	token, role, err := s.Login(context.Background(), "root", "adminpw")
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, role)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, claims["role"])
}
