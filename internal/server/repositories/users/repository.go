// Package users declares the repository contract for account rows.
package users

import (
	"context"

	"github.com/commboard/commboard/internal/server/models"
)

type Repository interface {
	// Create inserts a user and returns it with ID and RegDate populated.
	// A duplicate email returns common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email, including the
	// password hash, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, including the password
	// hash, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
