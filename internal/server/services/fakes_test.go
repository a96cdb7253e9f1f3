package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoronins/scoreboard/internal/common"
	"github.com/avoronins/scoreboard/internal/dbx"
	"github.com/avoronins/scoreboard/internal/logging"
	"github.com/avoronins/scoreboard/internal/server/models"
	"github.com/avoronins/scoreboard/internal/server/repositories/repomanager"
	resettokensrepo "github.com/avoronins/scoreboard/internal/server/repositories/resettokens"
	scoresrepo "github.com/avoronins/scoreboard/internal/server/repositories/scores"
	usersrepo "github.com/avoronins/scoreboard/internal/server/repositories/users"
	"github.com/avoronins/scoreboard/internal/server/security"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return hash
}

func newCredentialService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager) *CredentialService {
	t.Helper()
	s, err := NewCredentialService(db, rm, nopLogger{})
	if err != nil {
		t.Fatalf("NewCredentialService error: %v", err)
	}
	return s
}

// fakeUsersRepo is an in-memory users store keyed by username and email.
type fakeUsersRepo struct {
	byUsername map[string]*models.User
	byEmail    map[string]*models.User

	createErr error
	created   []*models.User

	emails    map[string]string // userID -> last linked email
	hashes    map[string]string // userID -> last written hash
	updateErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byUsername: map[string]*models.User{},
		byEmail:    map[string]*models.User{},
		emails:     map[string]string{},
		hashes:     map[string]string{},
	}
}

func (f *fakeUsersRepo) add(u *models.User) *models.User {
	f.byUsername[u.Username] = u
	if u.Email != nil {
		f.byEmail[*u.Email] = u
	}
	return u
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = fmt.Sprintf("u-%d", len(f.created)+1)
	u.CreatedAt = time.Now()
	f.created = append(f.created, u)
	return f.add(u), nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) SetEmail(ctx context.Context, userID, email string) error {
	f.emails[userID] = email
	return nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.hashes[userID] = hash
	return nil
}

type fakeScoresRepo struct {
	createErr error
	created   []*models.Score

	entries   []models.LeaderboardEntry
	lbErr     error
	lastGame  string
	lastLimit int
}

func (f *fakeScoresRepo) Create(ctx context.Context, s *models.Score) (*models.Score, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = fmt.Sprintf("s-%d", len(f.created)+1)
	s.CreatedAt = time.Now()
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeScoresRepo) Leaderboard(ctx context.Context, game string, limit int) ([]models.LeaderboardEntry, error) {
	f.lastGame = game
	f.lastLimit = limit
	if f.lbErr != nil {
		return nil, f.lbErr
	}
	return f.entries, nil
}

type fakeResetTokensRepo struct {
	tokens map[string]*models.ResetToken

	createErr error
	markErr   error
	marked    []string
}

func newFakeResetTokensRepo() *fakeResetTokensRepo {
	return &fakeResetTokensRepo{tokens: map[string]*models.ResetToken{}}
}

func (f *fakeResetTokensRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.ResetToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(validity),
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeResetTokensRepo) Find(ctx context.Context, token string) (*models.ResetToken, error) {
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeResetTokensRepo) MarkUsed(ctx context.Context, token string) error {
	if f.markErr != nil {
		return f.markErr
	}
	t, ok := f.tokens[token]
	if !ok || t.Used {
		return common.ErrTokenAlreadyUsed
	}
	t.Used = true
	f.marked = append(f.marked, token)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeScoresRepo
	r *fakeResetTokensRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error       { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.u }
func (m *fakeRepoManager) Scores(db dbx.DBTX) scoresrepo.Repository           { return m.s }
func (m *fakeRepoManager) ResetTokens(db dbx.DBTX) resettokensrepo.Repository { return m.r }

type sentMail struct {
	to, subject, body string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}
