package scorecardservice

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// RecordHolePutts stores a putt count for one hole and refreshes the cached putt
// total. Putts are a side statistic: they never affect total_score or the leaderboard.
// Zero is a legal value (a chip-in).
func (s *ScorecardService) RecordHolePutts(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, putts int) error {
	_, err := withTelemetry(s, ctx, "RecordHolePutts", func(ctx context.Context) (struct{}, error) {
		if putts < 0 {
			return struct{}{}, fmt.Errorf("%w: got %d", ErrInvalidPutts, putts)
		}

		if _, err := s.repo.GetScorecard(ctx, nil, scorecardID); err != nil {
			return struct{}{}, err
		}
		if _, err := s.courses.GetHole(ctx, nil, holeID); err != nil {
			return struct{}{}, err
		}

		if err := s.repo.UpsertHolePutts(ctx, nil, scorecardID, holeID, putts); err != nil {
			return struct{}{}, err
		}

		total, holesWithPutts, err := s.repo.SumPutts(ctx, nil, scorecardID)
		if err != nil {
			return struct{}{}, fmt.Errorf("recompute putts: %w", err)
		}
		var totalPutts *int
		if holesWithPutts > 0 {
			totalPutts = &total
		}
		if err := s.repo.UpdateTotalPutts(ctx, nil, scorecardID, totalPutts); err != nil {
			return struct{}{}, fmt.Errorf("persist putts: %w", err)
		}

		s.logger.InfoContext(ctx, "Hole putts recorded",
			attr.ScorecardID("scorecard_id", scorecardID),
			attr.HoleID("hole_id", holeID),
			attr.Int("putts", putts),
			attr.ExtractCorrelationID(ctx),
		)
		return struct{}{}, nil
	},
		attribute.String("scorecard_id", scorecardID.String()),
		attribute.String("hole_id", holeID.String()),
	)
	return err
}
