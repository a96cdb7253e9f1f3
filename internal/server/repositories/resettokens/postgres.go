package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avoronins/scoreboard/internal/common"
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

func (r *PostgresRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	query := `
		INSERT INTO reset_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, token, userID, time.Now().Add(validity)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.ResetToken, error) {
	query := `
		SELECT token, user_id, expires_at, used, created_at
		FROM reset_tokens
		WHERE token = $1
	`
	resetToken := &models.ResetToken{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&resetToken.Token, &resetToken.UserID, &resetToken.ExpiresAt,
		&resetToken.Used, &resetToken.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return resetToken, nil
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, token string) error {
	// guarded transition: only an unused token can be consumed
	query := `
		UPDATE reset_tokens SET used = TRUE
		WHERE token = $1 AND used = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrTokenAlreadyUsed
	}
	return nil
}
