package scores

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avoronins/scoreboard/internal/dbx"
	"github.com/avoronins/scoreboard/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, score *models.Score) (*models.Score, error) {
	query := `
		INSERT INTO scores (id, user_id, game, score)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	score.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		score.ID, score.UserID, score.Game, score.Score).Scan(&score.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return score, nil
}

func (r *PostgresRepository) Leaderboard(ctx context.Context, game string, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT u.username, s.score, s.created_at
		FROM scores s
		JOIN users u ON u.id = s.user_id
		WHERE s.game = $1
		ORDER BY s.score DESC, s.created_at ASC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, game, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entries, nil
}
