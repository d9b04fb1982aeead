package integration_tests

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/fairway-crew/tripbot/app/eventbus"
	attendeedb "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories"
	attendeemigrations "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories/migrations"
	coursemigrations "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories/migrations"
	"github.com/fairway-crew/tripbot/app/modules/course"
	"github.com/fairway-crew/tripbot/app/modules/leaderboard"
	roundmigrations "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories/migrations"
	"github.com/fairway-crew/tripbot/app/modules/scorecard"
	scorecardmigrations "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories/migrations"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
	"github.com/fairway-crew/tripbot/config"
	"github.com/fairway-crew/tripbot/db/bundb"
	"github.com/fairway-crew/tripbot/integration_tests/containers"
)

// TestScoringFlow exercises the full stack against a real Postgres: migrations, the
// seeded course, scorecard writes, and the leaderboard read side.
func TestScoringFlow(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("set RUN_INTEGRATION_TESTS=true to run integration tests")
	}

	ctx := context.Background()
	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	dbService, err := bundb.NewBunDBService(ctx, config.PostgresConfig{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbService.Close() })
	db := dbService.GetDB()

	for _, migrations := range []*migrate.Migrations{
		coursemigrations.Migrations,
		attendeemigrations.Migrations,
		roundmigrations.Migrations,
		scorecardmigrations.Migrations,
	} {
		migrator := migrate.NewMigrator(db, migrations)
		require.NoError(t, migrator.Init(ctx))
		_, err := migrator.Migrate(ctx)
		require.NoError(t, err)
	}

	logger := slog.New(slog.DiscardHandler)
	tracer := noop.NewTracerProvider().Tracer("integration")
	bus := eventbus.New(logger)
	t.Cleanup(func() { _ = bus.Close() })

	courseModule := course.NewModule(db, logger, tracer)
	scorecardModule := scorecard.NewModule(db, courseModule.Repo, bus, logger, nil, tracer)
	leaderboardModule := leaderboard.NewModule(db, bus, 0, logger, nil, tracer)

	// The migration seeds the trip's course with a full card.
	crs, err := courseModule.Service.GetDefaultCourse(ctx)
	require.NoError(t, err)
	assert.Equal(t, 72, crs.ParTotal)

	holes, err := courseModule.Service.ListHoles(ctx, crs.ID)
	require.NoError(t, err)
	require.Len(t, holes, 18)

	// Two players on the roster.
	lee := &attendeedb.Attendee{ID: sharedtypes.NewAttendeeID(), Name: "Lee"}
	pat := &attendeedb.Attendee{ID: sharedtypes.NewAttendeeID(), Name: "Pat"}
	for _, a := range []*attendeedb.Attendee{lee, pat} {
		_, err := db.NewInsert().Model(a).Exec(ctx)
		require.NoError(t, err)
	}

	roundID := sharedtypes.NewRoundID()

	leeCard, err := scorecardModule.Service.GetOrCreateScorecard(ctx, roundID, lee.ID, crs.ID, sharedtypes.TeeWhite)
	require.NoError(t, err)
	patCard, err := scorecardModule.Service.GetOrCreateScorecard(ctx, roundID, pat.ID, crs.ID, sharedtypes.TeeGray)
	require.NoError(t, err)

	// Lee birdies the first, Pat double bogeys it; Pat also plays the second.
	result, err := scorecardModule.Service.RecordHoleStrokes(ctx, leeCard.ID, holes[0].ID, holes[0].Par-1)
	require.NoError(t, err)
	assert.Equal(t, holes[0].Par-1, *result.TotalScore)

	_, err = scorecardModule.Service.RecordHoleStrokes(ctx, patCard.ID, holes[0].ID, holes[0].Par+2)
	require.NoError(t, err)
	patResult, err := scorecardModule.Service.RecordHoleStrokes(ctx, patCard.ID, holes[1].ID, holes[1].Par)
	require.NoError(t, err)
	assert.Equal(t, 2, patResult.HolesCompleted)

	// Idempotent re-entry.
	again, err := scorecardModule.Service.RecordHoleStrokes(ctx, leeCard.ID, holes[0].ID, holes[0].Par-1)
	require.NoError(t, err)
	assert.Equal(t, *result.TotalScore, *again.TotalScore)
	assert.Equal(t, 1, again.HolesCompleted)

	// Vs-par is measured against the full card's par, so mid-round deltas are
	// deeply negative.
	snapshot, err := leaderboardModule.Service.Refresh(ctx, roundID)
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, "Lee", snapshot.Entries[0].AttendeeName)
	assert.Equal(t, holes[0].Par-1-crs.ParTotal, *snapshot.Entries[0].ScoreVsPar)
	assert.Equal(t, "Pat", snapshot.Entries[1].AttendeeName)
	assert.Equal(t, holes[0].Par+2+holes[1].Par-crs.ParTotal, *snapshot.Entries[1].ScoreVsPar)

	// Clearing Lee's only hole drops the card back to unstarted and Pat leads alone.
	cleared, err := scorecardModule.Service.ClearHoleScore(ctx, leeCard.ID, holes[0].ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.TotalScore)

	snapshot, err = leaderboardModule.Service.Refresh(ctx, roundID)
	require.NoError(t, err)
	assert.Equal(t, "Pat", snapshot.Entries[0].AttendeeName)
	assert.Equal(t, 1, snapshot.Entries[0].Position)
	assert.Nil(t, snapshot.Entries[1].TotalScore)
	assert.Equal(t, 2, snapshot.Entries[1].Position)
}
