package leaderboardservice

import (
	"context"
	"io"

	leaderboarddomain "github.com/fairway-crew/tripbot/app/modules/leaderboard/domain"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Service is the leaderboard aggregator. Snapshots are recomputed from persisted
// scorecard state on a polling cadence; readers always get the last good snapshot and
// a refresh failure never tears down what was previously served.
type Service interface {
	// GetLeaderboard returns the cached snapshot for the round, computing one
	// synchronously the first time a round is requested.
	GetLeaderboard(ctx context.Context, roundID sharedtypes.RoundID) (*leaderboarddomain.Snapshot, error)

	// Refresh recomputes the round's snapshot from the database. On error the
	// previous snapshot stays served.
	Refresh(ctx context.Context, roundID sharedtypes.RoundID) (*leaderboarddomain.Snapshot, error)

	// RenderVsParChart writes a PNG bar chart of each started player's score against
	// par for the round.
	RenderVsParChart(ctx context.Context, roundID sharedtypes.RoundID, w io.Writer) error

	// ExportResults writes the round's standings as an xlsx workbook.
	ExportResults(ctx context.Context, roundID sharedtypes.RoundID, w io.Writer) error
}
