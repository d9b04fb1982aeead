package scorecarddb

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Repository is the persistence contract for scorecards and their hole ledger. Every
// method takes an optional bun.IDB so callers can supply a transaction; nil uses the
// pool. No method assumes a transaction spans multiple calls — the service layer is
// written to tolerate the totals update landing as a separate write from the ledger
// upsert.
type Repository interface {
	// InsertScorecard inserts with ON CONFLICT (round_id, attendee_id) DO NOTHING and
	// reports whether the row was actually inserted; false means a concurrent create
	// won the race and the caller should re-fetch.
	InsertScorecard(ctx context.Context, db bun.IDB, scorecard *Scorecard) (bool, error)
	FindScorecard(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID, attendeeID sharedtypes.AttendeeID) (*Scorecard, error)
	GetScorecard(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) (*Scorecard, error)
	UpdateTeeSelection(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, tee sharedtypes.TeeColor) error
	UpdateTotalScore(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, total *int) error
	UpdateTotalPutts(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, total *int) error
	UpdateCompletion(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, completed bool, completedAt *time.Time) error

	UpsertHoleStrokes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, strokes int) error
	UpsertHolePutts(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, putts int) error
	ClearHoleStrokes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID) error
	UpdateHoleNotes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, notes string) error
	UpdateHolePhoto(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, photoURL string) error
	ListHoleScores(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) ([]HoleScore, error)

	// SumStrokes re-derives the ledger sum: total strokes and the count of holes with
	// non-null strokes.
	SumStrokes(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) (total int, holesCompleted int, err error)
	SumPutts(ctx context.Context, db bun.IDB, scorecardID sharedtypes.ScorecardID) (total int, holesWithPutts int, err error)
}
