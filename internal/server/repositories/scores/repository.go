// Package scores declares the repository contract for score records and
// ranked leaderboard retrieval.
package scores

import (
	"context"

	"github.com/avoronins/scoreboard/internal/server/models"
)

// Repository defines persistence operations for scores. Score rows are
// append-only; there is no update or delete.
type Repository interface {
	// Create inserts a new score row for the given user.
	Create(ctx context.Context, score *models.Score) (*models.Score, error)

	// Leaderboard returns up to limit entries for game, ordered by score
	// descending with ties broken by earliest submission first.
	Leaderboard(ctx context.Context, game string, limit int) ([]models.LeaderboardEntry, error)
}
