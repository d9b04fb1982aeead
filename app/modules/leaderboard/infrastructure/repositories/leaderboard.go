// Package leaderboarddb reads standings data. It owns no tables; it aggregates over
// the scorecard and attendee modules' schemas.
package leaderboarddb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// LeaderboardDBImpl implements Repository using bun.
type LeaderboardDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*LeaderboardDBImpl)(nil)

func (db *LeaderboardDBImpl) conn(idb bun.IDB) bun.IDB {
	if idb != nil {
		return idb
	}
	return db.DB
}

// ListRoundStandings joins scorecards to the roster and folds the hole ledger into
// per-card progress columns. Only holes with strokes count toward holes_completed, so
// a cleared hole drops back out.
func (db *LeaderboardDBImpl) ListRoundStandings(ctx context.Context, idb bun.IDB, roundID sharedtypes.RoundID) ([]Row, error) {
	rows := []Row{}
	err := db.conn(idb).NewSelect().
		TableExpr("scorecards AS sc").
		ColumnExpr("sc.id AS scorecard_id").
		ColumnExpr("sc.attendee_id AS attendee_id").
		ColumnExpr("a.name AS attendee_name").
		ColumnExpr("a.golf_handicap AS handicap").
		ColumnExpr("sc.tee_selection AS tee_selection").
		ColumnExpr("sc.total_score AS total_score").
		ColumnExpr("sc.is_completed AS is_completed").
		ColumnExpr("c.par_total AS par_total").
		ColumnExpr("COUNT(hs.strokes) AS holes_completed").
		Join("JOIN attendees AS a ON a.id = sc.attendee_id").
		Join("JOIN courses AS c ON c.id = sc.course_id").
		Join("LEFT JOIN hole_scores AS hs ON hs.scorecard_id = sc.id").
		Where("sc.round_id = ?", roundID).
		GroupExpr("sc.id, a.name, a.golf_handicap, c.par_total").
		OrderExpr("a.name ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list round standings: %w", err)
	}
	return rows, nil
}
