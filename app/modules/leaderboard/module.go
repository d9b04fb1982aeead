// Package leaderboard wires the standings aggregator: read repository, service, and
// the background poller that keeps snapshots warm.
package leaderboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-crew/tripbot/app/eventbus"
	leaderboardservice "github.com/fairway-crew/tripbot/app/modules/leaderboard/application"
	leaderboarddb "github.com/fairway-crew/tripbot/app/modules/leaderboard/infrastructure/repositories"
)

// Module bundles the leaderboard's wired components.
type Module struct {
	Repo    leaderboarddb.Repository
	Service leaderboardservice.Service
	Poller  *leaderboardservice.Poller
}

// NewModule wires the leaderboard module against a live database connection.
func NewModule(
	db *bun.DB,
	bus eventbus.EventBus,
	pollInterval time.Duration,
	logger *slog.Logger,
	registerer prometheus.Registerer,
	tracer trace.Tracer,
) *Module {
	repo := &leaderboarddb.LeaderboardDBImpl{DB: db}

	var metrics leaderboardservice.Metrics = leaderboardservice.NoOpMetrics{}
	if registerer != nil {
		metrics = leaderboardservice.NewPrometheusMetrics(registerer)
	}

	service := leaderboardservice.NewLeaderboardService(repo, logger, metrics, tracer)
	poller := leaderboardservice.NewPoller(service, bus, pollInterval, logger)

	return &Module{
		Repo:    repo,
		Service: service,
		Poller:  poller,
	}
}

// Run starts the poller and blocks until the context is canceled.
func (m *Module) Run(ctx context.Context) error {
	return m.Poller.Run(ctx)
}
