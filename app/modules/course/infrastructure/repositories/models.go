package coursedb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Course is immutable reference data for the course the trip plays.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID           sharedtypes.CourseID `bun:"id,pk,type:uuid"`
	Name         string               `bun:"name,notnull,unique"`
	Address      string               `bun:"address,nullzero"`
	Phone        string               `bun:"phone,nullzero"`
	ParTotal     int                  `bun:"par_total,notnull"`
	YardageTotal int                  `bun:"yardage_total,notnull"`
	CreatedAt    time.Time            `bun:",nullzero,notnull,default:current_timestamp"`
}

// Hole belongs to exactly one course. Hole numbers are unique per course and the
// stroke indexes form a 1-18 permutation across the card.
type Hole struct {
	bun.BaseModel `bun:"table:course_holes,alias:h"`

	ID           sharedtypes.HoleID   `bun:"id,pk,type:uuid"`
	CourseID     sharedtypes.CourseID `bun:"course_id,notnull,type:uuid"`
	HoleNumber   int                  `bun:"hole_number,notnull"`
	Par          int                  `bun:"par,notnull"`
	StrokeIndex  int                  `bun:"stroke_index,notnull"`
	YardageFuzzy int                  `bun:"yardage_fuzzy,nullzero"`
	YardageWhite int                  `bun:"yardage_white,nullzero"`
	YardageGray  int                  `bun:"yardage_gray,nullzero"`
	YardageRed   int                  `bun:"yardage_red,nullzero"`
	CreatedAt    time.Time            `bun:",nullzero,notnull,default:current_timestamp"`
}

// YardageForTee returns the yardage printed on the card for the given tee.
func (h *Hole) YardageForTee(tee sharedtypes.TeeColor) int {
	switch tee {
	case sharedtypes.TeeFuzzy:
		return h.YardageFuzzy
	case sharedtypes.TeeGray:
		return h.YardageGray
	case sharedtypes.TeeRed:
		return h.YardageRed
	default:
		return h.YardageWhite
	}
}
