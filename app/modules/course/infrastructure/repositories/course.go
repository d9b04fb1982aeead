package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// CourseDBImpl implements Repository against Postgres via bun.
type CourseDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*CourseDBImpl)(nil)

// conn prefers the caller-supplied handle (usually a transaction) over the pool.
func (r *CourseDBImpl) conn(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *CourseDBImpl) GetCourse(ctx context.Context, db bun.IDB, courseID sharedtypes.CourseID) (*Course, error) {
	var course Course
	err := r.conn(db).NewSelect().
		Model(&course).
		Where("c.id = ?", courseID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course %s: %w", courseID, err)
	}
	return &course, nil
}

func (r *CourseDBImpl) GetCourseByName(ctx context.Context, db bun.IDB, name string) (*Course, error) {
	var course Course
	err := r.conn(db).NewSelect().
		Model(&course).
		Where("c.name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to fetch course %q: %w", name, err)
	}
	return &course, nil
}

func (r *CourseDBImpl) ListHoles(ctx context.Context, db bun.IDB, courseID sharedtypes.CourseID) ([]Hole, error) {
	var holes []Hole
	err := r.conn(db).NewSelect().
		Model(&holes).
		Where("h.course_id = ?", courseID).
		Order("h.hole_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holes for course %s: %w", courseID, err)
	}
	return holes, nil
}

func (r *CourseDBImpl) GetHole(ctx context.Context, db bun.IDB, holeID sharedtypes.HoleID) (*Hole, error) {
	var hole Hole
	err := r.conn(db).NewSelect().
		Model(&hole).
		Where("h.id = ?", holeID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHoleNotFound
		}
		return nil, fmt.Errorf("failed to fetch hole %s: %w", holeID, err)
	}
	return &hole, nil
}
