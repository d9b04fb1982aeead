// Package course wires the course catalog read side.
package course

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	courseservice "github.com/fairway-crew/tripbot/app/modules/course/application"
	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
)

// Module bundles the course module's wired components.
type Module struct {
	Repo    coursedb.Repository
	Service courseservice.Service
}

// NewModule wires the course module against a live database connection.
func NewModule(db *bun.DB, logger *slog.Logger, tracer trace.Tracer) *Module {
	repo := &coursedb.CourseDBImpl{DB: db}
	return &Module{
		Repo:    repo,
		Service: courseservice.NewCourseService(repo, logger, tracer),
	}
}
