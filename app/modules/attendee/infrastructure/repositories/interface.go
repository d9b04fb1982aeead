package attendeedb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Repository is the roster read contract. Pairing validation resolves attendee ids
// through it; the leaderboard joins the attendees table directly.
type Repository interface {
	// ListAttendees returns the attendees matching the given ids. Unknown ids are
	// silently absent from the result; callers diff against their input.
	ListAttendees(ctx context.Context, db bun.IDB, attendeeIDs []sharedtypes.AttendeeID) ([]Attendee, error)
}
