package services

import (
	"context"
	"database/sql"

	"github.com/avoronins/scoreboard/internal/common"
	"github.com/avoronins/scoreboard/internal/logging"
	"github.com/avoronins/scoreboard/internal/server/models"
	"github.com/avoronins/scoreboard/internal/server/repositories/repomanager"
)

const (
	// MaxScore bounds accepted submissions; out-of-range values are
	// rejected, not clamped.
	MaxScore = 10_000_000

	// Leaderboard size limits. Requested limits are clamped into
	// [MinLeaderboardLimit, MaxLeaderboardLimit].
	MinLeaderboardLimit = 1
	MaxLeaderboardLimit = 200
)

// LeaderboardService accepts score submissions and serves ranked reads.
type LeaderboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	credentials *CredentialService
	logger      logging.Logger
}

// NewLeaderboardService constructs a LeaderboardService.
func NewLeaderboardService(db *sql.DB, m repomanager.RepositoryManager, credentials *CredentialService, logger logging.Logger) *LeaderboardService {
	return &LeaderboardService{
		db:          db,
		repomanager: m,
		credentials: credentials,
		logger:      logger.With("module", "leaderboard"),
	}
}

// Submit authenticates-or-creates the user and records a score. The range
// check runs before any write so a rejected submission leaves no rows
// behind.
func (s *LeaderboardService) Submit(ctx context.Context, game string, score int64, username, password string, email *string) error {
	if score < 0 || score > MaxScore {
		return common.ErrValidation
	}

	user, err := s.credentials.GetOrCreate(ctx, username, password, email)
	if err != nil {
		return err
	}

	if _, err := s.repomanager.Scores(s.db).Create(ctx, &models.Score{
		UserID: user.ID,
		Game:   game,
		Score:  score,
	}); err != nil {
		s.logger.Error(ctx, "error inserting score", "error", err)
		return common.ErrorInternal
	}

	return nil
}

// Leaderboard returns up to limit ranked entries for game. The limit is
// clamped to [1, 200] regardless of the requested value.
func (s *LeaderboardService) Leaderboard(ctx context.Context, game string, limit int) ([]models.LeaderboardEntry, error) {
	if limit < MinLeaderboardLimit {
		limit = MinLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	entries, err := s.repomanager.Scores(s.db).Leaderboard(ctx, game, limit)
	if err != nil {
		s.logger.Error(ctx, "error reading leaderboard", "error", err)
		return nil, common.ErrorInternal
	}
	return entries, nil
}
