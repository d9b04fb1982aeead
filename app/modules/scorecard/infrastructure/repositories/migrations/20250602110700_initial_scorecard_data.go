package scorecardmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scorecard tables...")

		if _, err := db.NewCreateTable().Model((*scorecarddb.Scorecard)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		// The engine's find-or-create race resolution depends on this constraint.
		if _, err := db.NewCreateIndex().Model((*scorecarddb.Scorecard)(nil)).
			Index("scorecards_round_id_attendee_id_key").
			Unique().
			Column("round_id", "attendee_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*scorecarddb.HoleScore)(nil)).IfNotExists().
			ForeignKey(`("scorecard_id") REFERENCES "scorecards" ("id")`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().Model((*scorecarddb.HoleScore)(nil)).
			Index("hole_scores_scorecard_id_hole_id_key").
			Unique().
			Column("scorecard_id", "hole_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Scorecard tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scorecard tables...")

		if _, err := db.NewDropTable().Model((*scorecarddb.HoleScore)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*scorecarddb.Scorecard)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
