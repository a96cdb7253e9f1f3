// Package server initializes and runs the scoreboard application server.
// It opens the database, wires services, and starts the HTTP API with
// graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avoronins/scoreboard/internal/logging"
	"github.com/avoronins/scoreboard/internal/server/config"
	"github.com/avoronins/scoreboard/internal/server/httpapi"
	"github.com/avoronins/scoreboard/internal/server/mailer"
	"github.com/avoronins/scoreboard/internal/server/repositories/repomanager"
	"github.com/avoronins/scoreboard/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	api    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := repomanager.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	notifier := mailer.New(cfg, logger)

	credentials, err := services.NewCredentialService(db, rm, logger)
	if err != nil {
		return nil, fmt.Errorf("credential service init error: %w", err)
	}
	reset := services.NewResetService(db, rm, credentials, notifier, logger, cfg.PublicBaseURL, cfg.ResetTokenValidity)
	leaderboard := services.NewLeaderboardService(db, rm, credentials, logger)

	api := httpapi.NewServer(cfg.EndpointAddr, cfg.CORSOrigins, logger, leaderboard, credentials, reset)

	return &App{config: cfg, logger: logger, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
