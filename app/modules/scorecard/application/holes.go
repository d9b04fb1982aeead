package scorecardservice

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// UpdateHoleNotes attaches free-text notes to a hole. The ledger row is created if the
// hole has no score yet, so notes can be written before anyone putts out.
func (s *ScorecardService) UpdateHoleNotes(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, notes string) error {
	_, err := withTelemetry(s, ctx, "UpdateHoleNotes", func(ctx context.Context) (struct{}, error) {
		if _, err := s.repo.GetScorecard(ctx, nil, scorecardID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, s.repo.UpdateHoleNotes(ctx, nil, scorecardID, holeID, notes)
	},
		attribute.String("scorecard_id", scorecardID.String()),
		attribute.String("hole_id", holeID.String()),
	)
	return err
}

// AttachHolePhoto stores a photo URL against a hole.
func (s *ScorecardService) AttachHolePhoto(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, photoURL string) error {
	_, err := withTelemetry(s, ctx, "AttachHolePhoto", func(ctx context.Context) (struct{}, error) {
		if _, err := s.repo.GetScorecard(ctx, nil, scorecardID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, s.repo.UpdateHolePhoto(ctx, nil, scorecardID, holeID, photoURL)
	},
		attribute.String("scorecard_id", scorecardID.String()),
		attribute.String("hole_id", holeID.String()),
	)
	return err
}
