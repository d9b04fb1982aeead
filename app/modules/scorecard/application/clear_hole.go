package scorecardservice

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	scorecardevents "github.com/fairway-crew/tripbot/app/modules/scorecard/domain/events"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// ClearHoleScore removes an entered score for one hole (a mis-tap or a wrong-player
// entry) and recomputes the total. The ledger row keeps its notes and photo; only the
// stroke count is nulled. Clearing a hole that was never scored is a no-op that still
// reports the current totals. If the card had been marked completed, clearing reopens
// it.
func (s *ScorecardService) ClearHoleScore(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID) (HoleScoreResult, error) {
	return withTelemetry(s, ctx, "ClearHoleScore", func(ctx context.Context) (HoleScoreResult, error) {
		scorecard, err := s.repo.GetScorecard(ctx, nil, scorecardID)
		if err != nil {
			return HoleScoreResult{}, err
		}

		if err := s.repo.ClearHoleStrokes(ctx, nil, scorecardID, holeID); err != nil {
			return HoleScoreResult{}, err
		}

		result, err := s.recomputeTotal(ctx, scorecardID)
		if err != nil {
			return HoleScoreResult{}, err
		}

		if scorecard.IsCompleted && result.HolesCompleted < holesPerRound {
			if err := s.repo.UpdateCompletion(ctx, nil, scorecardID, false, nil); err != nil {
				return HoleScoreResult{}, err
			}
			s.logger.InfoContext(ctx, "Scorecard reopened after hole cleared",
				attr.ScorecardID("scorecard_id", scorecardID),
				attr.ExtractCorrelationID(ctx),
			)
		}

		s.publishHoleScoreUpdated(ctx, scorecard, scorecardevents.HoleScoreUpdatedPayload{
			ScorecardID:    scorecardID,
			RoundID:        scorecard.RoundID,
			AttendeeID:     scorecard.AttendeeID,
			HoleID:         holeID,
			TotalScore:     result.TotalScore,
			HolesCompleted: result.HolesCompleted,
			UpdatedAt:      time.Now().UTC(),
		})
		return result, nil
	},
		attribute.String("scorecard_id", scorecardID.String()),
		attribute.String("hole_id", holeID.String()),
	)
}
