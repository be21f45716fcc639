// userservice.go
package userservice

import (
	"context"
	"fmt"

	"github.com/lmbotha/lea/internal/interfaces"
	"github.com/lmbotha/lea/internal/models"
	"github.com/lmbotha/lea/pkg/helper"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Repo   interfaces.Repository
	Logger interfaces.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(repo interfaces.Repository, logger interfaces.Logger) *UserService {
	return &UserService{
		Repo:   repo,
		Logger: logger,
	}
}

// RegisterUser hashes the password and adds the user via the repository.
// Duplicate emails or external IDs are not rejected; the store accepts them.
func (s *UserService) RegisterUser(ctx context.Context, externalUserID, name, email, password string) (string, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Registering user", "func", funcName, "email", email)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "email", email, "error", err)
		return "", fmt.Errorf("%s: %w", ErrFailedToHashPassword, err)
	}

	user := models.User{
		ExternalUserID: externalUserID,
		Name:           name,
		Email:          email,
		PasswordHash:   string(hashedPassword),
	}

	userID, err := s.Repo.AddUser(ctx, user)
	if err != nil {
		s.Logger.Error(ErrFailedToRegisterUser, "func", funcName, "email", email, "error", err)
		return "", fmt.Errorf("%s: %w", ErrFailedToRegisterUser, err)
	}
	s.Logger.Info("User registered successfully", "func", funcName, "email", email, "ID", userID)
	return userID, nil
}

// AuthenticateUser verifies a user's credentials. An unknown email and a wrong
// password both come back as (false, nil) so callers cannot tell the two
// apart; a non-nil error means the store itself failed.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (bool, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "email", email)
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "email", email, "error", err)
		return false, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	if user == nil {
		s.Logger.Debug("User not found", "func", funcName, "email", email)
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		s.Logger.Debug("Password mismatch", "func", funcName, "email", email)
		return false, nil
	}

	s.Logger.Info("User authenticated successfully", "func", funcName, "email", email)
	return true, nil
}
