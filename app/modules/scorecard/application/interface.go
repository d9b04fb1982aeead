package scorecardservice

import (
	"context"

	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// HoleScoreResult reports the scorecard state after a ledger write: the recomputed
// total (nil until the first hole is entered) and how many holes hold strokes.
type HoleScoreResult struct {
	TotalScore     *int `json:"total_score"`
	HolesCompleted int  `json:"holes_completed"`
}

// Service is the scorecard engine: lifecycle of one player's card for one round, and
// the guarantee that the cached running total always equals the ledger sum after any
// successful operation.
type Service interface {
	GetOrCreateScorecard(ctx context.Context, roundID sharedtypes.RoundID, attendeeID sharedtypes.AttendeeID, courseID sharedtypes.CourseID, defaultTee sharedtypes.TeeColor) (*scorecarddb.Scorecard, error)
	GetScorecard(ctx context.Context, scorecardID sharedtypes.ScorecardID) (*scorecarddb.Scorecard, error)
	ListHoleScores(ctx context.Context, scorecardID sharedtypes.ScorecardID) ([]scorecarddb.HoleScore, error)

	RecordHoleStrokes(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, strokes int) (HoleScoreResult, error)
	RecordHolePutts(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, putts int) error
	ClearHoleScore(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID) (HoleScoreResult, error)
	ChangeTee(ctx context.Context, scorecardID sharedtypes.ScorecardID, tee sharedtypes.TeeColor) error

	UpdateHoleNotes(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, notes string) error
	AttachHolePhoto(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, photoURL string) error
	CompleteScorecard(ctx context.Context, scorecardID sharedtypes.ScorecardID) (*scorecarddb.Scorecard, error)
}
