package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"movie-catalog-service/internal/jwt"
	"movie-catalog-service/internal/model"
	"movie-catalog-service/internal/repository"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrUsernameTaken      = errors.New("username already exists")
)

const bcryptCost = 10

type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.Account, error)
	Login(ctx context.Context, name, password string) (token string, role string, err error)
}

type authService struct {
	accountRepo repository.AccountRepository
}

func NewAuthService(accountRepo repository.AccountRepository) AuthService {
	return &authService{accountRepo: accountRepo}
}

// Register creates a user-role account. The password is hashed once here;
// the plaintext is never stored.
func (s *authService) Register(ctx context.Context, username, password string) (*model.Account, error) {
	existing, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleUser,
	}

	newID, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	account.ID = newID

	return account, nil
}

// Login verifies the credentials and issues a signed one-hour token
// carrying the account's id, username and role. Issuance is stateless.
func (s *authService) Login(ctx context.Context, name, password string) (string, string, error) {
	account, err := s.accountRepo.FindByUsername(ctx, name)
	if err != nil {
		return "", "", err
	}
	if account == nil {
		return "", "", ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(account)
	if err != nil {
		return "", "", err
	}

	return token, account.Role, nil
}
