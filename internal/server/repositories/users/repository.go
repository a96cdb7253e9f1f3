// Package users declares the repository contract for user identity records.
package users

import (
	"context"

	"github.com/avoronins/scoreboard/internal/server/models"
)

// Repository defines persistence operations for users. Lookups return
// common.ErrorNotFound when no row matches.
type Repository interface {
	// Create inserts a new user and returns it with ID and CreatedAt set.
	// Username uniqueness is enforced by the store's unique index.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername looks a user up by exact username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByEmail looks a user up by linked email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// SetEmail binds email to the user. Uniqueness of non-null emails is
	// enforced by the store's partial unique index.
	SetEmail(ctx context.Context, userID, email string) error

	// UpdatePasswordHash unconditionally overwrites the stored hash.
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
}
