package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avoronins/scoreboard/internal/common"
	"github.com/avoronins/scoreboard/internal/dbx"
	"github.com/avoronins/scoreboard/internal/logging"
	"github.com/avoronins/scoreboard/internal/server/mailer"
	"github.com/avoronins/scoreboard/internal/server/repositories/repomanager"
	"github.com/avoronins/scoreboard/internal/server/security"
)

// ResetService drives the password-reset token lifecycle and username
// recovery. Requesting a reset never invalidates earlier tokens: every
// issued token stays valid until individually consumed or expired. That
// mirrors the established client contract and is intentional laxity.
type ResetService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	credentials   *CredentialService
	notifier      mailer.Notifier
	logger        logging.Logger
	publicBaseURL string
	tokenValidity time.Duration
}

// NewResetService constructs a ResetService.
func NewResetService(
	db *sql.DB,
	m repomanager.RepositoryManager,
	credentials *CredentialService,
	notifier mailer.Notifier,
	logger logging.Logger,
	publicBaseURL string,
	tokenValidity time.Duration,
) *ResetService {
	return &ResetService{
		db:            db,
		repomanager:   m,
		credentials:   credentials,
		notifier:      notifier,
		logger:        logger.With("module", "reset"),
		publicBaseURL: publicBaseURL,
		tokenValidity: tokenValidity,
	}
}

// RequestReset issues a reset token for the account behind email and mails a
// recovery link. An unknown email is a silent no-op: the caller observes the
// same outcome either way, so the endpoint cannot be used to probe which
// emails exist. Notifier failures are logged and swallowed for the same
// reason.
func (s *ResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return common.ErrorInternal
	}

	token, err := security.NewResetToken()
	if err != nil {
		return common.ErrorInternal
	}

	if err := s.repomanager.ResetTokens(s.db).Create(ctx, user.ID, token, s.tokenValidity); err != nil {
		s.logger.Error(ctx, "error storing reset token", "error", err)
		return common.ErrorInternal
	}

	resetURL := fmt.Sprintf("%s/reset.html?token=%s", s.publicBaseURL, token)
	body := fmt.Sprintf(
		"Open this link to reset your password (valid %d minutes):\n%s\n\nIf you didn't request this, ignore this email.",
		int(s.tokenValidity.Minutes()), resetURL,
	)

	if err := s.notifier.Send(ctx, email, "Password reset for the scoreboard", body); err != nil {
		s.logger.Error(ctx, "error sending reset email", "error", err)
	}
	return nil
}

// RecoverUsername mails the account's username to email. Same uniform
// contract as RequestReset: unknown emails are a silent no-op.
func (s *ResetService) RecoverUsername(ctx context.Context, email string) error {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return common.ErrorInternal
	}

	body := fmt.Sprintf(
		"Your username is: %s\n\nIf you didn't request this, ignore this email.",
		user.Username,
	)

	if err := s.notifier.Send(ctx, email, "Your username on the scoreboard", body); err != nil {
		s.logger.Error(ctx, "error sending recovery email", "error", err)
	}
	return nil
}

// ConsumeReset validates a token and sets the new password. Checks run in a
// fixed order: unknown token, then already-used, then expired, so an expired
// token that was also consumed reports "already used". On success the
// password update and the used-flag transition commit in one transaction;
// losing a race on the conditional used-update rolls the password back.
func (s *ResetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	repo := s.repomanager.ResetTokens(s.db)

	t, err := repo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		return common.ErrorInternal
	}

	if t.Used {
		return common.ErrTokenAlreadyUsed
	}
	if time.Now().After(t.ExpiresAt) {
		return common.ErrTokenExpired
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.credentials.UpdatePassword(ctx, tx, t.UserID, newPassword); err != nil {
			return err
		}
		return s.repomanager.ResetTokens(tx).MarkUsed(ctx, token)
	}); err != nil {
		if errors.Is(err, common.ErrTokenAlreadyUsed) {
			return common.ErrTokenAlreadyUsed
		}
		s.logger.Error(ctx, "error consuming reset token", "error", err)
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "password reset completed", "user_id", t.UserID)
	return nil
}
