// Package scorecard wires the scoring engine: repositories, service, metrics.
package scorecard

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-crew/tripbot/app/eventbus"
	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	scorecardservice "github.com/fairway-crew/tripbot/app/modules/scorecard/application"
	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
)

// Module bundles the scorecard engine's wired components.
type Module struct {
	Repo    scorecarddb.Repository
	Service scorecardservice.Service
}

// NewModule wires the scorecard module against a live database connection.
func NewModule(
	db *bun.DB,
	courses coursedb.Repository,
	bus eventbus.EventBus,
	logger *slog.Logger,
	registerer prometheus.Registerer,
	tracer trace.Tracer,
) *Module {
	repo := &scorecarddb.ScorecardDBImpl{DB: db}

	var metrics scorecardservice.Metrics = scorecardservice.NoOpMetrics{}
	if registerer != nil {
		metrics = scorecardservice.NewPrometheusMetrics(registerer)
	}

	service := scorecardservice.NewScorecardService(repo, courses, bus, logger, metrics, tracer)

	return &Module{
		Repo:    repo,
		Service: service,
	}
}
