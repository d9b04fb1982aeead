package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating course tables...")

		if _, err := db.NewCreateTable().Model((*coursedb.Course)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*coursedb.Hole)(nil)).IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id")`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().Model((*coursedb.Hole)(nil)).
			Index("course_holes_course_id_hole_number_key").
			Unique().
			Column("course_id", "hole_number").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		// Seed the one course the trip plays so a fresh install can score immediately.
		course := coursedb.Course{
			ID:           sharedtypes.NewCourseID(),
			Name:         seedCourseName,
			Address:      "3 Heritage Way, Henryville, IN",
			ParTotal:     seedParTotal(),
			YardageTotal: seedYardageTotal(),
		}
		if _, err := db.NewInsert().Model(&course).
			On("CONFLICT (name) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}

		// Re-read in case the course row already existed.
		if err := db.NewSelect().Model(&course).Where("name = ?", seedCourseName).Scan(ctx); err != nil {
			return err
		}

		holes := make([]coursedb.Hole, 0, len(championsPointeHoles))
		for _, spec := range championsPointeHoles {
			holes = append(holes, coursedb.Hole{
				ID:           sharedtypes.NewHoleID(),
				CourseID:     course.ID,
				HoleNumber:   spec.Number,
				Par:          spec.Par,
				StrokeIndex:  spec.StrokeIndex,
				YardageFuzzy: spec.Fuzzy,
				YardageWhite: spec.White,
				YardageGray:  spec.Gray,
				YardageRed:   spec.Red,
			})
		}
		if _, err := db.NewInsert().Model(&holes).
			On("CONFLICT (course_id, hole_number) DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Course tables created and seeded!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping course tables...")

		if _, err := db.NewDropTable().Model((*coursedb.Hole)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*coursedb.Course)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
