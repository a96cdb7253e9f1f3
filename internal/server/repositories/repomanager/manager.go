// Package repomanager hands out entity repositories bound to a database
// handle. Passing a dbx.DBTX lets callers get repositories that run against
// the pool or against an open transaction with the same code.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avoronins/scoreboard/internal/dbx"
	"github.com/avoronins/scoreboard/internal/server/repositories/resettokens"
	"github.com/avoronins/scoreboard/internal/server/repositories/scores"
	"github.com/avoronins/scoreboard/internal/server/repositories/users"
)

// RepositoryManager is the factory for entity repositories.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Scores(db dbx.DBTX) scores.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
