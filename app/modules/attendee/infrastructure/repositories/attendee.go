package attendeedb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// AttendeeDBImpl implements Repository against Postgres via bun.
type AttendeeDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*AttendeeDBImpl)(nil)

func (r *AttendeeDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *AttendeeDBImpl) ListAttendees(ctx context.Context, db bun.IDB, attendeeIDs []sharedtypes.AttendeeID) ([]Attendee, error) {
	if len(attendeeIDs) == 0 {
		return nil, nil
	}

	var attendees []Attendee
	err := r.conn(db).NewSelect().
		Model(&attendees).
		Where("a.id IN (?)", bun.In(attendeeIDs)).
		Order("a.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	return attendees, nil
}
