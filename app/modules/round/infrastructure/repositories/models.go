package rounddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Round is one day's outing on the trip itinerary.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID        sharedtypes.RoundID  `bun:"id,pk,type:uuid"`
	CourseID  sharedtypes.CourseID `bun:"course_id,notnull,type:uuid"`
	TripDay   int                  `bun:"trip_day,notnull"`
	Name      string               `bun:"name,notnull"`
	TeeTime   time.Time            `bun:"tee_time,notnull"`
	DressCode string               `bun:"dress_code,nullzero"`
	Notes     string               `bun:"notes,nullzero"`
	CreatedAt time.Time            `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time            `bun:",nullzero,notnull,default:current_timestamp"`
}

// Pairing is one tee group within a round. AttendeeIDs is stored as jsonb in tee
// order (first listed hits first).
type Pairing struct {
	bun.BaseModel `bun:"table:round_pairings,alias:p"`

	ID          uuid.UUID           `bun:"id,pk,type:uuid"`
	RoundID     sharedtypes.RoundID `bun:"round_id,notnull,type:uuid"`
	GroupNumber int                 `bun:"group_number,notnull"`
	AttendeeIDs []sharedtypes.AttendeeID `bun:"attendee_ids,type:jsonb"`
	CreatedAt   time.Time           `bun:",nullzero,notnull,default:current_timestamp"`
}
