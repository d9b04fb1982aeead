package leaderboardservice

import (
	"context"
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	leaderboarddomain "github.com/fairway-crew/tripbot/app/modules/leaderboard/domain"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// ErrNoStartedPlayers means there is nothing to chart or export yet.
var ErrNoStartedPlayers = errors.New("no players have started the round")

// RenderVsParChart writes a PNG bar chart of score against par for every player who
// has started, in leaderboard order.
func (s *LeaderboardService) RenderVsParChart(ctx context.Context, roundID sharedtypes.RoundID, w io.Writer) error {
	snapshot, err := s.GetLeaderboard(ctx, roundID)
	if err != nil {
		return err
	}

	var bars []chart.Value
	for _, entry := range snapshot.Entries {
		if !entry.Started() {
			continue
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%s)", entry.AttendeeName, leaderboarddomain.FormatVsPar(entry.ScoreVsPar)),
			Value: float64(*entry.ScoreVsPar),
		})
	}
	if len(bars) == 0 {
		return ErrNoStartedPlayers
	}

	graph := chart.BarChart{
		Title:    "Score vs Par",
		Height:   512,
		BarWidth: 48,
		Bars:     bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render vs-par chart: %w", err)
	}
	return nil
}
