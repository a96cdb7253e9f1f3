// Package resettokens declares the repository contract for password-reset
// tokens in persistent storage.
package resettokens

import (
	"context"
	"time"

	"github.com/avoronins/scoreboard/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and consuming
// reset tokens. Tokens are retained after use; consumption flips the used
// flag instead of deleting the row.
type Repository interface {
	// Create stores a new reset token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find looks a token up by its opaque string and returns its full state.
	// Implementations return common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.ResetToken, error)

	// MarkUsed flips used to true, guarded by the prior value: if the token
	// was already used (or does not exist) the update matches zero rows and
	// common.ErrTokenAlreadyUsed is returned, so two concurrent consumers
	// cannot both succeed.
	MarkUsed(ctx context.Context, token string) error
}
