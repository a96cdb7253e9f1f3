// Package services contains server-side business logic. This file implements
// CredentialService, which authenticates users, creates them implicitly on
// first submission, links emails, and overwrites password hashes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronins/scoreboard/internal/common"
	"github.com/avoronins/scoreboard/internal/dbx"
	"github.com/avoronins/scoreboard/internal/logging"
	"github.com/avoronins/scoreboard/internal/server/models"
	"github.com/avoronins/scoreboard/internal/server/repositories/repomanager"
	"github.com/avoronins/scoreboard/internal/server/security"
)

// CredentialService provides credential operations:
//   - Authenticate: verify username/password
//   - GetOrCreate: authenticate an existing user or create a new one
//   - LinkEmail: bind an email to an authenticated account
//   - UpdatePassword: overwrite the stored hash (caller authorizes)
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger

	// dummyHash absorbs a verify on the unknown-username path so the
	// failure is not distinguishable from a wrong password by timing.
	dummyHash string
}

// NewCredentialService constructs a CredentialService.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) (*CredentialService, error) {
	dummy, err := security.NewResetToken()
	if err != nil {
		return nil, fmt.Errorf("error seeding dummy credential: %w", err)
	}
	dummyHash, err := security.HashPassword(dummy)
	if err != nil {
		return nil, fmt.Errorf("error hashing dummy credential: %w", err)
	}

	return &CredentialService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "credentials"),
		dummyHash:   dummyHash,
	}, nil
}

// Authenticate looks the user up by username and verifies the password.
// An unknown username and a wrong password both yield ErrInvalidCredentials;
// the two cases must stay indistinguishable to callers.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			security.VerifyPassword(password, s.dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// GetOrCreate behaves like Authenticate when username exists; otherwise it
// creates a new user with the hashed password and optional email, failing
// with ErrEmailInUse when email is already bound to another account.
func (s *CredentialService) GetOrCreate(ctx context.Context, username, password string, email *string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err == nil {
		if !security.VerifyPassword(password, user.PasswordHash) {
			return nil, common.ErrInvalidCredentials
		}
		return user, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	if email != nil {
		if _, err := repo.GetByEmail(ctx, *email); err == nil {
			return nil, common.ErrEmailInUse
		} else if !errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInternal
		}
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	created, err := repo.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		s.logger.Error(ctx, "error creating user", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user created", "username", username)
	return created, nil
}

// LinkEmail authenticates and binds email to the account. Rebinding the same
// email to the same user is idempotent and succeeds.
func (s *CredentialService) LinkEmail(ctx context.Context, username, password, email string) error {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)

	existing, err := repo.GetByEmail(ctx, email)
	if err == nil && existing.ID != user.ID {
		return common.ErrEmailInUse
	}
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return common.ErrorInternal
	}

	if err := repo.SetEmail(ctx, user.ID, email); err != nil {
		s.logger.Error(ctx, "error linking email", "error", err)
		return common.ErrorInternal
	}
	return nil
}

// UpdatePassword unconditionally overwrites the stored hash. The db handle
// may be a transaction so the reset flow can pair this with marking a token
// used. Callers are responsible for having authorized the change.
func (s *CredentialService) UpdatePassword(ctx context.Context, db dbx.DBTX, userID, newPassword string) error {
	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return common.ErrorInternal
	}
	if err := s.repomanager.Users(db).UpdatePasswordHash(ctx, userID, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}
