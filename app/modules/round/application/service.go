// Package roundservice implements the itinerary service.
package roundservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	attendeedb "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories"
	roundqueue "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/queue"
	rounddb "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// ErrEmptyPairing rejects a tee group with no players in it.
var ErrEmptyPairing = errors.New("pairing group has no attendees")

// RoundService implements the Service interface.
type RoundService struct {
	repo      rounddb.Repository
	attendees attendeedb.Repository
	scheduler roundqueue.Scheduler
	parser    *TeeTimeParser
	logger    *slog.Logger
	tracer    trace.Tracer

	// now is swappable for tests.
	now func() time.Time
}

var _ Service = (*RoundService)(nil)

// NewRoundService creates a new RoundService. The scheduler may be nil when the job
// queue is not running (tests, the migration CLI); reminders are then skipped.
func NewRoundService(
	repo rounddb.Repository,
	attendees attendeedb.Repository,
	scheduler roundqueue.Scheduler,
	parser *TeeTimeParser,
	logger *slog.Logger,
	tracer trace.Tracer,
) *RoundService {
	return &RoundService{
		repo:      repo,
		attendees: attendees,
		scheduler: scheduler,
		parser:    parser,
		logger:    logger,
		tracer:    tracer,
		now:       time.Now,
	}
}

// CreateRound adds an itinerary entry and books its tee-time reminder.
func (s *RoundService) CreateRound(ctx context.Context, params CreateRoundParams) (*rounddb.Round, error) {
	ctx, span := s.tracer.Start(ctx, "CreateRound", trace.WithAttributes(
		attribute.Int("trip_day", params.TripDay),
	))
	defer span.End()

	teeTime, err := s.parser.Parse(params.TeeTimeInput, s.now())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	round := &rounddb.Round{
		ID:        sharedtypes.NewRoundID(),
		CourseID:  params.CourseID,
		TripDay:   params.TripDay,
		Name:      params.Name,
		TeeTime:   teeTime,
		DressCode: params.DressCode,
		Notes:     params.Notes,
	}
	if err := s.repo.CreateRound(ctx, nil, round); err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.scheduleReminder(ctx, round)

	s.logger.InfoContext(ctx, "Round created",
		attr.RoundID("round_id", round.ID),
		attr.Int("trip_day", round.TripDay),
		attr.String("tee_time", teeTime.Format(time.RFC3339)),
	)
	return round, nil
}

func (s *RoundService) GetRound(ctx context.Context, roundID sharedtypes.RoundID) (*rounddb.Round, error) {
	return s.repo.GetRound(ctx, nil, roundID)
}

func (s *RoundService) Itinerary(ctx context.Context) ([]rounddb.Round, error) {
	return s.repo.ListRounds(ctx, nil)
}

// RescheduleTeeTime moves a round and books a fresh reminder for the new time.
func (s *RoundService) RescheduleTeeTime(ctx context.Context, roundID sharedtypes.RoundID, teeTimeInput string) (*rounddb.Round, error) {
	ctx, span := s.tracer.Start(ctx, "RescheduleTeeTime", trace.WithAttributes(
		attribute.String("round_id", roundID.String()),
	))
	defer span.End()

	teeTime, err := s.parser.Parse(teeTimeInput, s.now())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := s.repo.UpdateTeeTime(ctx, nil, roundID, teeTime); err != nil {
		span.RecordError(err)
		return nil, err
	}
	round, err := s.repo.GetRound(ctx, nil, roundID)
	if err != nil {
		return nil, err
	}

	s.scheduleReminder(ctx, round)
	return round, nil
}

// scheduleReminder is best-effort: a round without a reminder is an annoyance, not a
// broken itinerary.
func (s *RoundService) scheduleReminder(ctx context.Context, round *rounddb.Round) {
	if s.scheduler == nil {
		return
	}
	if err := s.scheduler.ScheduleTeeTimeReminder(ctx, round.ID, round.Name, round.TeeTime); err != nil {
		s.logger.WarnContext(ctx, "Failed to schedule tee time reminder",
			attr.RoundID("round_id", round.ID),
			attr.Error(err),
		)
	}
}

// SetPairings replaces the round's tee groups. Group numbers follow slice order.
// Every attendee id must exist on the roster.
func (s *RoundService) SetPairings(ctx context.Context, roundID sharedtypes.RoundID, groups [][]sharedtypes.AttendeeID) error {
	if _, err := s.repo.GetRound(ctx, nil, roundID); err != nil {
		return err
	}

	seen := make(map[sharedtypes.AttendeeID]struct{})
	ids := make([]sharedtypes.AttendeeID, 0)
	pairings := make([]rounddb.Pairing, 0, len(groups))
	for i, group := range groups {
		if len(group) == 0 {
			return fmt.Errorf("%w: group %d", ErrEmptyPairing, i+1)
		}
		for _, id := range group {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
		pairings = append(pairings, rounddb.Pairing{
			ID:          uuid.New(),
			RoundID:     roundID,
			GroupNumber: i + 1,
			AttendeeIDs: group,
		})
	}

	if err := s.checkRoster(ctx, ids); err != nil {
		return err
	}
	return s.repo.ReplacePairings(ctx, nil, roundID, pairings)
}

// checkRoster rejects attendee ids the roster does not know.
func (s *RoundService) checkRoster(ctx context.Context, ids []sharedtypes.AttendeeID) error {
	roster, err := s.attendees.ListAttendees(ctx, nil, ids)
	if err != nil {
		return fmt.Errorf("failed to load attendees for pairings: %w", err)
	}
	if len(roster) == len(ids) {
		return nil
	}
	known := make(map[sharedtypes.AttendeeID]struct{}, len(roster))
	for _, a := range roster {
		known[a.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: %s", attendeedb.ErrAttendeeNotFound, id)
		}
	}
	return nil
}

func (s *RoundService) ListPairings(ctx context.Context, roundID sharedtypes.RoundID) ([]rounddb.Pairing, error) {
	return s.repo.ListPairings(ctx, nil, roundID)
}
