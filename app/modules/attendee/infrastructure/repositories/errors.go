package attendeedb

import "errors"

var ErrAttendeeNotFound = errors.New("attendee not found")
