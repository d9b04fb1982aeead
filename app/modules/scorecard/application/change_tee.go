package scorecardservice

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// ChangeTee switches the scorecard's tee selection. Tees only affect the yardage
// shown per hole, so already-entered scores are untouched and no recompute runs.
func (s *ScorecardService) ChangeTee(ctx context.Context, scorecardID sharedtypes.ScorecardID, tee sharedtypes.TeeColor) error {
	_, err := withTelemetry(s, ctx, "ChangeTee", func(ctx context.Context) (struct{}, error) {
		if !tee.IsValid() {
			return struct{}{}, fmt.Errorf("%w: %q", ErrInvalidTee, tee)
		}
		if err := s.repo.UpdateTeeSelection(ctx, nil, scorecardID, tee); err != nil {
			// An update touching zero rows means the scorecard does not exist.
			if errors.Is(err, scorecarddb.ErrNoRowsAffected) {
				return struct{}{}, fmt.Errorf("%w: scorecard %s", scorecarddb.ErrNotFound, scorecardID)
			}
			return struct{}{}, err
		}
		s.logger.InfoContext(ctx, "Tee selection changed",
			attr.ScorecardID("scorecard_id", scorecardID),
			attr.String("tee", string(tee)),
			attr.ExtractCorrelationID(ctx),
		)
		return struct{}{}, nil
	},
		attribute.String("scorecard_id", scorecardID.String()),
		attribute.String("tee", string(tee)),
	)
	return err
}
