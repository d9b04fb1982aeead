package attendeedb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Attendee is the slice of the people directory the scoring engine needs: a display
// name and an optional course handicap for the leaderboard. Directory CRUD, contact
// info and auth all live outside this service.
type Attendee struct {
	bun.BaseModel `bun:"table:attendees,alias:a"`

	ID           sharedtypes.AttendeeID `bun:"id,pk,type:uuid"`
	Name         string                 `bun:"name,notnull"`
	GolfHandicap *int                   `bun:"golf_handicap"`
	CreatedAt    time.Time              `bun:",nullzero,notnull,default:current_timestamp"`
}
