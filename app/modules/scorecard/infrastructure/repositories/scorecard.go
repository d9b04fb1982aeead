package scorecarddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// ScorecardDBImpl implements Repository against Postgres via bun.
type ScorecardDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*ScorecardDBImpl)(nil)

// conn prefers the caller-supplied handle (usually a transaction) over the pool.
func (r *ScorecardDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *ScorecardDBImpl) InsertScorecard(ctx context.Context, db bun.IDB, scorecard *Scorecard) (bool, error) {
	res, err := r.conn(db).NewInsert().
		Model(scorecard).
		On("CONFLICT (round_id, attendee_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert scorecard for round %s attendee %s: %w",
			scorecard.RoundID, scorecard.AttendeeID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return rows > 0, nil
}

func (r *ScorecardDBImpl) FindScorecard(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, attendeeID sharedtypes.AttendeeID) (*Scorecard, error) {
	var scorecard Scorecard
	err := r.conn(db).NewSelect().
		Model(&scorecard).
		Where("sc.round_id = ?", roundID).
		Where("sc.attendee_id = ?", attendeeID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find scorecard for round %s attendee %s: %w", roundID, attendeeID, err)
	}
	return &scorecard, nil
}

func (r *ScorecardDBImpl) GetScorecard(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) (*Scorecard, error) {
	var scorecard Scorecard
	err := r.conn(db).NewSelect().
		Model(&scorecard).
		Where("sc.id = ?", scorecardID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch scorecard %s: %w", scorecardID, err)
	}
	return &scorecard, nil
}

func (r *ScorecardDBImpl) UpdateTeeSelection(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, tee sharedtypes.TeeColor) error {
	res, err := r.conn(db).NewUpdate().
		Model((*Scorecard)(nil)).
		Set("tee_selection = ?", tee).
		Set("updated_at = now()").
		Where("id = ?", scorecardID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tee selection for scorecard %s: %w", scorecardID, err)
	}
	return requireRows(res)
}

func (r *ScorecardDBImpl) UpdateTotalScore(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, total *int) error {
	res, err := r.conn(db).NewUpdate().
		Model((*Scorecard)(nil)).
		Set("total_score = ?", total).
		Set("updated_at = now()").
		Where("id = ?", scorecardID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update total score for scorecard %s: %w", scorecardID, err)
	}
	return requireRows(res)
}

func (r *ScorecardDBImpl) UpdateTotalPutts(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, total *int) error {
	res, err := r.conn(db).NewUpdate().
		Model((*Scorecard)(nil)).
		Set("total_putts = ?", total).
		Set("updated_at = now()").
		Where("id = ?", scorecardID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update total putts for scorecard %s: %w", scorecardID, err)
	}
	return requireRows(res)
}

func (r *ScorecardDBImpl) UpdateCompletion(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, completed bool, completedAt *time.Time) error {
	res, err := r.conn(db).NewUpdate().
		Model((*Scorecard)(nil)).
		Set("is_completed = ?", completed).
		Set("completed_at = ?", completedAt).
		Set("updated_at = now()").
		Where("id = ?", scorecardID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update completion for scorecard %s: %w", scorecardID, err)
	}
	return requireRows(res)
}

// requireRows maps a zero-row update to ErrNoRowsAffected so the service layer can
// translate it into a not-found.
func requireRows(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
