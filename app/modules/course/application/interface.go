package courseservice

import (
	"context"

	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Service exposes the read-only course catalog.
type Service interface {
	GetCourse(ctx context.Context, courseID sharedtypes.CourseID) (*coursedb.Course, error)
	GetDefaultCourse(ctx context.Context) (*coursedb.Course, error)
	ListHoles(ctx context.Context, courseID sharedtypes.CourseID) ([]coursedb.Hole, error)
}
