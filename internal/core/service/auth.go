package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-courses-app/internal/core/domain/users"
	"go-courses-app/internal/core/ports"
)

// Diagnostic reasons for a failed authentication. These are logged but never
// written to a response: every failure is reported to the client as the same
// generic 401 so the API does not leak which emails are registered.
var (
	ErrUnknownEmail = errors.New("no user with this email exists")
	ErrBadPassword  = errors.New("authentication failed")
)

type AuthService struct {
	repo ports.UserRepository
	cost int
}

func NewAuthService(repo ports.UserRepository, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo: repo,
		cost: bcryptCost,
	}
}

func (s *AuthService) SignUp(ctx context.Context, in users.NewUserInput) (users.User, error) {
	// Pre-create uniqueness check. The users table also carries a UNIQUE
	// constraint, so a concurrent signup racing past this check still fails
	// on insert rather than producing a duplicate.
	_, err := s.repo.FindByEmail(ctx, in.EmailAddress)
	switch {
	case err == nil:
		return users.User{}, users.ErrEmailTaken
	case !errors.Is(err, users.ErrNotFound):
		return users.User{}, fmt.Errorf("uniqueness check failed: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return users.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := users.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		PasswordHash: string(hashed),
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return users.User{}, err
	}
	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (users.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.User{}, ErrUnknownEmail
		}
		return users.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return users.User{}, ErrBadPassword
	}

	return user, nil
}
