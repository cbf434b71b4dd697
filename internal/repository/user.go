package repository

import (
	"context"

	"filesmanager/internal/model"
)

// UserRepository defines data access for registered users.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Count(ctx context.Context) (int, error)
}
