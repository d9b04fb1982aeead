// Package bundb owns the database connection and hands out module repositories.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	attendeedb "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories"
	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	leaderboarddb "github.com/fairway-crew/tripbot/app/modules/leaderboard/infrastructure/repositories"
	rounddb "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories"
	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/config"
)

// DBService bundles the connection pool with each module's repository.
type DBService struct {
	CourseDB      *coursedb.CourseDBImpl
	AttendeeDB    *attendeedb.AttendeeDBImpl
	ScorecardDB   *scorecarddb.ScorecardDBImpl
	RoundDB       *rounddb.RoundDBImpl
	LeaderboardDB *leaderboarddb.LeaderboardDBImpl

	db *bun.DB
}

// GetDB returns the underlying connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close closes the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewBunDBService connects to Postgres and wires up the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel((*coursedb.Course)(nil))
	db.RegisterModel((*coursedb.Hole)(nil))
	db.RegisterModel((*attendeedb.Attendee)(nil))
	db.RegisterModel((*scorecarddb.Scorecard)(nil))
	db.RegisterModel((*scorecarddb.HoleScore)(nil))
	db.RegisterModel((*rounddb.Round)(nil))
	db.RegisterModel((*rounddb.Pairing)(nil))

	return &DBService{
		CourseDB:      &coursedb.CourseDBImpl{DB: db},
		AttendeeDB:    &attendeedb.AttendeeDBImpl{DB: db},
		ScorecardDB:   &scorecarddb.ScorecardDBImpl{DB: db},
		RoundDB:       &rounddb.RoundDBImpl{DB: db},
		LeaderboardDB: &leaderboarddb.LeaderboardDBImpl{DB: db},
		db:            db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqldb, nil
}
