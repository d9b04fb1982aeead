package coursedb

import "errors"

// Sentinel errors for the course repository. Infrastructure-level signals; the service
// layer decides whether they are domain failures.
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrHoleNotFound   = errors.New("hole not found")
)
