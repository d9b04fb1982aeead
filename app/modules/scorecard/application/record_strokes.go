package scorecardservice

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	scorecarddomain "github.com/fairway-crew/tripbot/app/modules/scorecard/domain"
	scorecardevents "github.com/fairway-crew/tripbot/app/modules/scorecard/domain/events"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// RecordHoleStrokes writes a stroke count for one hole and recomputes the card's
// running total from the ledger. Re-entering the same hole overwrites the previous
// value, so the operation is idempotent for identical input. The recompute runs even
// when the written value matches what was already stored; a failure between the ledger
// upsert and the totals update is returned to the caller rather than hidden.
func (s *ScorecardService) RecordHoleStrokes(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, strokes int) (HoleScoreResult, error) {
	return withTelemetry(s, ctx, "RecordHoleStrokes", func(ctx context.Context) (HoleScoreResult, error) {
		if strokes < 1 {
			return HoleScoreResult{}, fmt.Errorf("%w: got %d", ErrInvalidStrokes, strokes)
		}

		scorecard, err := s.repo.GetScorecard(ctx, nil, scorecardID)
		if err != nil {
			return HoleScoreResult{}, err
		}

		hole, err := s.courses.GetHole(ctx, nil, holeID)
		if err != nil {
			return HoleScoreResult{}, err
		}

		if err := s.repo.UpsertHoleStrokes(ctx, nil, scorecardID, holeID, strokes); err != nil {
			return HoleScoreResult{}, err
		}

		category := scorecarddomain.Classify(strokes, hole.Par)
		s.metrics.RecordHoleResult(ctx, category)
		s.logger.InfoContext(ctx, "Hole strokes recorded",
			attr.ScorecardID("scorecard_id", scorecardID),
			attr.HoleID("hole_id", holeID),
			attr.Int("strokes", strokes),
			attr.String("category", category.Label()),
			attr.ExtractCorrelationID(ctx),
		)

		result, err := s.recomputeTotal(ctx, scorecardID)
		if err != nil {
			return HoleScoreResult{}, err
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
		attribute.Int("strokes", strokes),
	)
}

// recomputeTotal re-derives the running total from the ledger and persists it on the
// scorecard. The persisted total is only ever written here and by clearHoleAndRecompute,
// which keeps it equal to the ledger sum after every successful write. Zero scored
// holes stores NULL, not 0.
func (s *ScorecardService) recomputeTotal(ctx context.Context, scorecardID sharedtypes.ScorecardID) (HoleScoreResult, error) {
	total, holesCompleted, err := s.repo.SumStrokes(ctx, nil, scorecardID)
	if err != nil {
		return HoleScoreResult{}, fmt.Errorf("recompute total: %w", err)
	}

	var totalScore *int
	if holesCompleted > 0 {
		totalScore = &total
	}
	if err := s.repo.UpdateTotalScore(ctx, nil, scorecardID, totalScore); err != nil {
		return HoleScoreResult{}, fmt.Errorf("persist total: %w", err)
	}
	return HoleScoreResult{TotalScore: totalScore, HolesCompleted: holesCompleted}, nil
}
