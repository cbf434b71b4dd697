package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"filesmanager/internal/database"
	"filesmanager/internal/model"
	"filesmanager/internal/password"
	"filesmanager/internal/repository"
)

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserService defines registration and profile lookup.
type UserService interface {
	// Register creates a user with a bcrypt-hashed password.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)

	// Me returns the user owning token.
	Me(ctx context.Context, token string) (*model.User, error)
}

type userService struct {
	users    repository.UserRepository
	auth     *Authorizer
	validate *validator.Validate
	timeout  time.Duration
}

func NewUserService(users repository.UserRepository, auth *Authorizer, timeout time.Duration) UserService {
	return &userService{
		users:    users,
		auth:     auth,
		validate: validator.New(),
		timeout:  timeout,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].StructField() == "Password" {
			return nil, ErrMissingPassword
		}
		return nil, ErrMissingEmail
	}

	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, &model.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race with a concurrent registration
		if database.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return u, nil
}

func (s *userService) Me(ctx context.Context, token string) (*model.User, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	userID, err := s.auth.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}
