package scorecarddb

import "errors"

// Sentinel errors for the scorecard repository. Infrastructure-level signals; the
// service layer decides whether they are domain failures.
var (
	// ErrNotFound indicates the requested scorecard does not exist.
	ErrNotFound = errors.New("scorecard not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
