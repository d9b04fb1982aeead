package leaderboarddb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Row is one scorecard's standing data as read from the database: the attendee it
// belongs to, its cached total, the course's full par, and the ledger-derived progress
// count. Vs-par is always measured against the full card, not just the holes played.
type Row struct {
	ScorecardID    sharedtypes.ScorecardID `bun:"scorecard_id"`
	AttendeeID     sharedtypes.AttendeeID  `bun:"attendee_id"`
	AttendeeName   string                  `bun:"attendee_name"`
	Handicap       *int                    `bun:"handicap"`
	TeeSelection   sharedtypes.TeeColor    `bun:"tee_selection"`
	TotalScore     *int                    `bun:"total_score"`
	IsCompleted    bool                    `bun:"is_completed"`
	HolesCompleted int                     `bun:"holes_completed"`
	ParTotal       int                     `bun:"par_total"`
}

// Repository is the leaderboard's read-only view over scorecard and attendee data.
type Repository interface {
	// ListRoundStandings returns one Row per scorecard in the round, joined with the
	// attendee roster. Rounds with no scorecards yield an empty slice, not an error.
	ListRoundStandings(ctx context.Context, db bun.IDB, roundID sharedtypes.RoundID) ([]Row, error)
}
