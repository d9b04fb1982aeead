// Package round wires the itinerary module: repository, reminder queue, service.
package round

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	attendeedb "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories"
	roundservice "github.com/fairway-crew/tripbot/app/modules/round/application"
	roundqueue "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/queue"
	rounddb "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories"
)

// Module bundles the round module's wired components.
type Module struct {
	Repo    rounddb.Repository
	Service roundservice.Service
}

// NewModule wires the round module. scheduler may be nil when the job queue is not
// running. attendees is the roster pairings are validated against.
func NewModule(
	db *bun.DB,
	attendees attendeedb.Repository,
	scheduler roundqueue.Scheduler,
	logger *slog.Logger,
	tracer trace.Tracer,
) (*Module, error) {
	parser, err := roundservice.NewTeeTimeParser()
	if err != nil {
		return nil, err
	}

	repo := &rounddb.RoundDBImpl{DB: db}
	service := roundservice.NewRoundService(repo, attendees, scheduler, parser, logger, tracer)

	return &Module{
		Repo:    repo,
		Service: service,
	}, nil
}
