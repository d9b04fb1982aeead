package courseservice

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// DefaultCourseName is the course seeded by migrations. The trip plays a single fixed
// course; multi-course support is out of scope.
const DefaultCourseName = "Champions Pointe Golf Club"

// CourseService implements the Service interface.
type CourseService struct {
	repo   coursedb.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

var _ Service = (*CourseService)(nil)

func NewCourseService(repo coursedb.Repository, logger *slog.Logger, tracer trace.Tracer) *CourseService {
	return &CourseService{
		repo:   repo,
		logger: logger,
		tracer: tracer,
	}
}

func (s *CourseService) GetCourse(ctx context.Context, courseID sharedtypes.CourseID) (*coursedb.Course, error) {
	ctx, span := s.tracer.Start(ctx, "GetCourse")
	defer span.End()

	return s.repo.GetCourse(ctx, nil, courseID)
}

func (s *CourseService) GetDefaultCourse(ctx context.Context) (*coursedb.Course, error) {
	ctx, span := s.tracer.Start(ctx, "GetDefaultCourse")
	defer span.End()

	course, err := s.repo.GetCourseByName(ctx, nil, DefaultCourseName)
	if err != nil {
		s.logger.ErrorContext(ctx, "Default course missing; has the course migration run?",
			attr.String("course_name", DefaultCourseName),
			attr.Error(err),
		)
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListHoles(ctx context.Context, courseID sharedtypes.CourseID) ([]coursedb.Hole, error) {
	ctx, span := s.tracer.Start(ctx, "ListHoles")
	defer span.End()

	return s.repo.ListHoles(ctx, nil, courseID)
}
