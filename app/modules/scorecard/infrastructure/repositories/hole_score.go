package scorecarddb

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

func (r *ScorecardDBImpl) UpsertHoleStrokes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, strokes int) error {
	score := HoleScore{
		ID:          uuid.New(),
		ScorecardID: scorecardID,
		HoleID:      holeID,
		Strokes:     &strokes,
	}

	_, err := r.conn(db).NewInsert().
		Model(&score).
		On("CONFLICT (scorecard_id, hole_id) DO UPDATE").
		Set("strokes = EXCLUDED.strokes").
		Set("updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert strokes for scorecard %s hole %s: %w", scorecardID, holeID, err)
	}
	return nil
}

func (r *ScorecardDBImpl) UpsertHolePutts(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, putts int) error {
	score := HoleScore{
		ID:          uuid.New(),
		ScorecardID: scorecardID,
		HoleID:      holeID,
		Putts:       &putts,
	}

	_, err := r.conn(db).NewInsert().
		Model(&score).
		On("CONFLICT (scorecard_id, hole_id) DO UPDATE").
		Set("putts = EXCLUDED.putts").
		Set("updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert putts for scorecard %s hole %s: %w", scorecardID, holeID, err)
	}
	return nil
}

// ClearHoleStrokes nulls the strokes for a hole. Clearing a hole that has no row is a
// no-op; "holes completed" only ever counts rows with non-null strokes.
func (r *ScorecardDBImpl) ClearHoleStrokes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID) error {
	_, err := r.conn(db).NewUpdate().
		Model((*HoleScore)(nil)).
		Set("strokes = NULL").
		Set("updated_at = now()").
		Where("scorecard_id = ?", scorecardID).
		Where("hole_id = ?", holeID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear strokes for scorecard %s hole %s: %w", scorecardID, holeID, err)
	}
	return nil
}

func (r *ScorecardDBImpl) UpdateHoleNotes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, notes string) error {
	score := HoleScore{
		ID:          uuid.New(),
		ScorecardID: scorecardID,
		HoleID:      holeID,
		Notes:       notes,
	}

	_, err := r.conn(db).NewInsert().
		Model(&score).
		On("CONFLICT (scorecard_id, hole_id) DO UPDATE").
		Set("notes = EXCLUDED.notes").
		Set("updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update notes for scorecard %s hole %s: %w", scorecardID, holeID, err)
	}
	return nil
}

func (r *ScorecardDBImpl) UpdateHolePhoto(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, photoURL string) error {
	score := HoleScore{
		ID:          uuid.New(),
		ScorecardID: scorecardID,
		HoleID:      holeID,
		PhotoURL:    photoURL,
	}

	_, err := r.conn(db).NewInsert().
		Model(&score).
		On("CONFLICT (scorecard_id, hole_id) DO UPDATE").
		Set("photo_url = EXCLUDED.photo_url").
		Set("updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update photo for scorecard %s hole %s: %w", scorecardID, holeID, err)
	}
	return nil
}

func (r *ScorecardDBImpl) ListHoleScores(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) ([]HoleScore, error) {
	var scores []HoleScore
	err := r.conn(db).NewSelect().
		Model(&scores).
		Where("hs.scorecard_id = ?", scorecardID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hole scores for scorecard %s: %w", scorecardID, err)
	}
	return scores, nil
}

func (r *ScorecardDBImpl) SumStrokes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) (int, int, error) {
	var total, holesCompleted int
	err := r.conn(db).NewSelect().
		Model((*HoleScore)(nil)).
		ColumnExpr("COALESCE(SUM(hs.strokes), 0)").
		ColumnExpr("COUNT(hs.strokes)").
		Where("hs.scorecard_id = ?", scorecardID).
		Scan(ctx, &total, &holesCompleted)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum strokes for scorecard %s: %w", scorecardID, err)
	}
	return total, holesCompleted, nil
}

func (r *ScorecardDBImpl) SumPutts(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) (int, int, error) {
	var total, holesWithPutts int
	err := r.conn(db).NewSelect().
		Model((*HoleScore)(nil)).
		ColumnExpr("COALESCE(SUM(hs.putts), 0)").
		ColumnExpr("COUNT(hs.putts)").
		Where("hs.scorecard_id = ?", scorecardID).
		Scan(ctx, &total, &holesWithPutts)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum putts for scorecard %s: %w", scorecardID, err)
	}
	return total, holesWithPutts, nil
}
