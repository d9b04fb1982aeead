package scorecarddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Scorecard is one player's card for one round. At most one row exists per
// (round_id, attendee_id); the unique index enforces it and GetOrCreate relies on it.
// total_score and total_putts are caches of the hole_scores ledger, maintained only by
// the scorecard service's recompute step.
type Scorecard struct {
	bun.BaseModel `bun:"table:scorecards,alias:sc"`

	ID           sharedtypes.ScorecardID `bun:"id,pk,type:uuid"`
	RoundID      sharedtypes.RoundID     `bun:"round_id,notnull,type:uuid"`
	AttendeeID   sharedtypes.AttendeeID  `bun:"attendee_id,notnull,type:uuid"`
	CourseID     sharedtypes.CourseID    `bun:"course_id,notnull,type:uuid"`
	TeeSelection sharedtypes.TeeColor    `bun:"tee_selection,notnull"`
	TotalScore   *int                    `bun:"total_score"`
	TotalPutts   *int                    `bun:"total_putts"`
	IsCompleted  bool                    `bun:"is_completed,notnull,default:false"`
	StartedAt    time.Time               `bun:"started_at,nullzero"`
	CompletedAt  *time.Time              `bun:"completed_at"`
	CreatedAt    time.Time               `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time               `bun:",nullzero,notnull,default:current_timestamp"`
}

// HoleScore is the sparse per-hole ledger: holes not yet played have no row, and a
// cleared hole keeps its row with strokes set back to NULL so notes and photos
// survive. At most one row exists per (scorecard_id, hole_id).
type HoleScore struct {
	bun.BaseModel `bun:"table:hole_scores,alias:hs"`

	ID          uuid.UUID               `bun:"id,pk,type:uuid"`
	ScorecardID sharedtypes.ScorecardID `bun:"scorecard_id,notnull,type:uuid"`
	HoleID      sharedtypes.HoleID      `bun:"hole_id,notnull,type:uuid"`
	Strokes     *int                    `bun:"strokes"`
	Putts       *int                    `bun:"putts"`
	Notes       string                  `bun:"notes,nullzero"`
	PhotoURL    string                  `bun:"photo_url,nullzero"`
	CreatedAt   time.Time               `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time               `bun:",nullzero,notnull,default:current_timestamp"`
}
