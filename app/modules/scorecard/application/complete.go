package scorecardservice

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	scorecardevents "github.com/fairway-crew/tripbot/app/modules/scorecard/domain/events"
	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// CompleteScorecard marks a card finished once all 18 holes hold strokes. The total
// is re-derived from the ledger before the check so a stale cache cannot let a short
// card through. Completing an already-completed card just refreshes completed_at.
func (s *ScorecardService) CompleteScorecard(ctx context.Context, scorecardID sharedtypes.ScorecardID) (*scorecarddb.Scorecard, error) {
	return withTelemetry(s, ctx, "CompleteScorecard", func(ctx context.Context) (*scorecarddb.Scorecard, error) {
		scorecard, err := s.repo.GetScorecard(ctx, nil, scorecardID)
		if err != nil {
			return nil, err
		}

		result, err := s.recomputeTotal(ctx, scorecardID)
		if err != nil {
			return nil, err
		}
		if result.HolesCompleted < holesPerRound {
			return nil, fmt.Errorf("%w: %d of %d holes scored", ErrScorecardIncomplete, result.HolesCompleted, holesPerRound)
		}

		completedAt := time.Now().UTC()
		if err := s.repo.UpdateCompletion(ctx, nil, scorecardID, true, &completedAt); err != nil {
			return nil, err
		}

		scorecard.TotalScore = result.TotalScore
		scorecard.IsCompleted = true
		scorecard.CompletedAt = &completedAt

		s.logger.InfoContext(ctx, "Scorecard completed",
			attr.ScorecardID("scorecard_id", scorecardID),
			attr.Int("total_score", *result.TotalScore),
			attr.ExtractCorrelationID(ctx),
		)

		if s.eventBus != nil {
			payload := scorecardevents.ScorecardCompletedPayload{
				ScorecardID: scorecardID,
				RoundID:     scorecard.RoundID,
				AttendeeID:  scorecard.AttendeeID,
				TotalScore:  *result.TotalScore,
				CompletedAt: completedAt,
			}
			if err := s.eventBus.Publish(scorecardevents.TopicScorecardCompleted, payload); err != nil {
				s.logger.WarnContext(ctx, "Failed to publish scorecard completion",
					attr.ScorecardID("scorecard_id", scorecardID),
					attr.Error(err),
				)
			}
		}
		return scorecard, nil
	},
		attribute.String("scorecard_id", scorecardID.String()),
	)
}
