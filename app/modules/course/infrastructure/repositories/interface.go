package coursedb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Repository is the read-only contract the scoring engine consumes. Course data is
// seeded by migrations and never written at runtime.
type Repository interface {
	GetCourse(ctx context.Context, db bun.IDB, courseID sharedtypes.CourseID) (*Course, error)
	GetCourseByName(ctx context.Context, db bun.IDB, name string) (*Course, error)
	ListHoles(ctx context.Context, db bun.IDB, courseID sharedtypes.CourseID) ([]Hole, error)
	GetHole(ctx context.Context, db bun.IDB, holeID sharedtypes.HoleID) (*Hole, error)
}
