// Package leaderboarddomain holds the pure standings model: entries, snapshots, and
// the ordering and formatting rules the aggregator applies. Nothing here touches the
// database.
package leaderboarddomain

import (
	"fmt"
	"sort"
	"time"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// Entry is one player's row in the standings for a round.
type Entry struct {
	AttendeeID     sharedtypes.AttendeeID  `json:"attendee_id"`
	AttendeeName   string                  `json:"attendee_name"`
	Handicap       *int                    `json:"handicap,omitempty"`
	ScorecardID    sharedtypes.ScorecardID `json:"scorecard_id"`
	TeeSelection   sharedtypes.TeeColor    `json:"tee_selection"`
	TotalScore     *int                    `json:"total_score"`
	ScoreVsPar     *int                    `json:"score_vs_par"`
	HolesCompleted int                     `json:"holes_completed"`
	IsCompleted    bool                    `json:"is_completed"`
	Position       int                     `json:"position"`
}

// Started reports whether the player has entered at least one hole.
func (e Entry) Started() bool {
	return e.TotalScore != nil
}

// Snapshot is a fully ranked leaderboard for one round at one point in time.
type Snapshot struct {
	RoundID     sharedtypes.RoundID `json:"round_id"`
	Entries     []Entry             `json:"entries"`
	LastUpdated time.Time           `json:"last_updated"`
}

// Rank orders entries and assigns positions in place. Players who have started sort
// by total score ascending; those tied on total share a position and the next
// distinct score skips the tied count (1, 1, 3). Players yet to start keep their
// relative order and are appended after the field, numbered where the field left off.
func Rank(entries []Entry) []Entry {
	started := make([]Entry, 0, len(entries))
	waiting := make([]Entry, 0)
	for _, e := range entries {
		if e.Started() {
			started = append(started, e)
		} else {
			waiting = append(waiting, e)
		}
	}

	sort.SliceStable(started, func(i, j int) bool {
		return *started[i].TotalScore < *started[j].TotalScore
	})

	for i := range started {
		if i > 0 && *started[i].TotalScore == *started[i-1].TotalScore {
			started[i].Position = started[i-1].Position
			continue
		}
		started[i].Position = i + 1
	}
	for i := range waiting {
		waiting[i].Position = len(started) + i + 1
	}
	return append(started, waiting...)
}

// FormatVsPar renders a score-to-par delta the way a broadcast graphic would: "E" at
// even, otherwise a signed number.
func FormatVsPar(vsPar *int) string {
	if vsPar == nil {
		return "-"
	}
	if *vsPar == 0 {
		return "E"
	}
	return fmt.Sprintf("%+d", *vsPar)
}
