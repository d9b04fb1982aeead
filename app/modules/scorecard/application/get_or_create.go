package scorecardservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// GetOrCreateScorecard returns the player's scorecard for the round, creating it with
// the supplied default tee on first visit. An existing card is returned unchanged; in
// particular its tee selection is never overwritten. Duplicate-create races are
// resolved by the (round_id, attendee_id) unique constraint plus a retry-as-lookup, so
// the race is never user-visible.
func (s *ScorecardService) GetOrCreateScorecard(ctx context.Context, roundID sharedtypes.RoundID, attendeeID sharedtypes.AttendeeID, courseID sharedtypes.CourseID, defaultTee sharedtypes.TeeColor) (*scorecarddb.Scorecard, error) {
	return withTelemetry(s, ctx, "GetOrCreateScorecard", func(ctx context.Context) (*scorecarddb.Scorecard, error) {
		if !defaultTee.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTee, defaultTee)
		}

		existing, err := s.repo.FindScorecard(ctx, nil, roundID, attendeeID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, scorecarddb.ErrNotFound) {
			return nil, err
		}

		scorecard := &scorecarddb.Scorecard{
			ID:           sharedtypes.NewScorecardID(),
			RoundID:      roundID,
			AttendeeID:   attendeeID,
			CourseID:     courseID,
			TeeSelection: defaultTee,
			StartedAt:    time.Now().UTC(),
		}

		inserted, err := s.repo.InsertScorecard(ctx, nil, scorecard)
		if err != nil {
			return nil, err
		}
		if inserted {
			return scorecard, nil
		}

		// A concurrent create won between our lookup and insert; the existing row is
		// the scorecard.
		s.logger.InfoContext(ctx, "Scorecard create lost a race; using existing row",
			attr.RoundID("round_id", roundID),
			attr.AttendeeID("attendee_id", attendeeID),
			attr.ExtractCorrelationID(ctx),
		)
		return s.repo.FindScorecard(ctx, nil, roundID, attendeeID)
	},
		attribute.String("round_id", roundID.String()),
		attribute.String("attendee_id", attendeeID.String()),
	)
}

// GetScorecard reads a scorecard back by id.
func (s *ScorecardService) GetScorecard(ctx context.Context, scorecardID sharedtypes.ScorecardID) (*scorecarddb.Scorecard, error) {
	return s.repo.GetScorecard(ctx, nil, scorecardID)
}

// ListHoleScores returns the sparse hole ledger for a scorecard.
func (s *ScorecardService) ListHoleScores(ctx context.Context, scorecardID sharedtypes.ScorecardID) ([]scorecarddb.HoleScore, error) {
	return s.repo.ListHoleScores(ctx, nil, scorecardID)
}
