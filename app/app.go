// Package app assembles the trip server: database, event bus, job queue, modules,
// and the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-crew/tripbot/api"
	"github.com/fairway-crew/tripbot/api/handlers"
	"github.com/fairway-crew/tripbot/app/eventbus"
	"github.com/fairway-crew/tripbot/app/modules/course"
	"github.com/fairway-crew/tripbot/app/modules/leaderboard"
	"github.com/fairway-crew/tripbot/app/modules/round"
	roundqueue "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/queue"
	"github.com/fairway-crew/tripbot/app/modules/scorecard"
	"github.com/fairway-crew/tripbot/config"
	"github.com/fairway-crew/tripbot/db/bundb"
)

// App holds the wired application.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	DB       *bundb.DBService
	EventBus eventbus.EventBus
	Pool     *pgxpool.Pool
	Queue    *roundqueue.QueueService

	CourseModule      *course.Module
	ScorecardModule   *scorecard.Module
	RoundModule       *round.Module
	LeaderboardModule *leaderboard.Module

	Registry *prometheus.Registry
	server   *http.Server
}

// NewApp wires everything against the given configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger(cfg)

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	// The job queue uses pgx directly; river needs it.
	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	bus := eventbus.New(logger)

	queue, err := roundqueue.NewQueueService(pool, bus, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize job queue: %w", err)
	}

	registry := prometheus.NewRegistry()
	tracer := tracerFor("tripbot")

	db := dbService.GetDB()
	courseModule := course.NewModule(db, logger, tracer)
	scorecardModule := scorecard.NewModule(db, courseModule.Repo, bus, logger, registry, tracer)
	roundModule, err := round.NewModule(db, dbService.AttendeeDB, queue, logger, tracer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize round module: %w", err)
	}
	leaderboardModule := leaderboard.NewModule(db, bus, cfg.Leaderboard.PollInterval, logger, registry, tracer)

	h := handlers.NewHandlers(
		scorecardModule.Service,
		leaderboardModule.Service,
		roundModule.Service,
		courseModule.Service,
		logger,
	)
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(h, registry, cfg.HTTP.RateLimitPerMinute),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{
		Config:            cfg,
		Logger:            logger,
		DB:                dbService,
		EventBus:          bus,
		Pool:              pool,
		Queue:             queue,
		CourseModule:      courseModule,
		ScorecardModule:   scorecardModule,
		RoundModule:       roundModule,
		LeaderboardModule: leaderboardModule,
		Registry:          registry,
		server:            server,
	}, nil
}

// Run starts the queue, the leaderboard poller, and the HTTP server, then blocks
// until the context is canceled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if err := a.Queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start job queue: %w", err)
	}

	go func() {
		if err := a.LeaderboardModule.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.Logger.Error("Leaderboard poller stopped", slog.Any("error", err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("HTTP server listening", slog.String("addr", a.Config.HTTP.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

// Shutdown drains the server, the queue, and the connections.
func (a *App) Shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
	if err := a.Queue.Stop(shutdownCtx); err != nil {
		a.Logger.Error("Job queue shutdown failed", slog.Any("error", err))
	}
	if err := a.EventBus.Close(); err != nil {
		a.Logger.Error("Event bus close failed", slog.Any("error", err))
	}
	a.Pool.Close()
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close failed", slog.Any("error", err))
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Observability.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("env", cfg.Observability.Environment))
}

func tracerFor(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(name)
}
