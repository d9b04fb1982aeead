package attendeemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	attendeedb "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating attendees table...")

		if _, err := db.NewCreateTable().Model((*attendeedb.Attendee)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping attendees table...")

		if _, err := db.NewDropTable().Model((*attendeedb.Attendee)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
