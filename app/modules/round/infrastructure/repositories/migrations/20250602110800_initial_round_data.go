package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	rounddb "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating round tables...")

		if _, err := db.NewCreateTable().Model((*rounddb.Round)(nil)).IfNotExists().
			ForeignKey(`("course_id") REFERENCES "courses" ("id")`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().Model((*rounddb.Round)(nil)).
			Index("rounds_trip_day_key").
			Unique().
			Column("trip_day").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*rounddb.Pairing)(nil)).IfNotExists().
			ForeignKey(`("round_id") REFERENCES "rounds" ("id")`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().Model((*rounddb.Pairing)(nil)).
			Index("round_pairings_round_id_group_number_key").
			Unique().
			Column("round_id", "group_number").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Round tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping round tables...")

		if _, err := db.NewDropTable().Model((*rounddb.Pairing)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*rounddb.Round)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
