// Package scorecardevents defines the topics and payloads the scorecard engine
// publishes. Consumers inside the process (the leaderboard poller) treat them as
// refresh hints, never as a source of truth.
package scorecardevents

import (
	"time"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

const (
	// TopicHoleScoreUpdated fires after any write that changed a scorecard's ledger
	// or its cached total (strokes recorded, putts recorded, hole cleared).
	TopicHoleScoreUpdated = "scorecard.hole_score.updated"

	// TopicScorecardCompleted fires once when a player closes out all 18 holes.
	TopicScorecardCompleted = "scorecard.completed"
)

// HoleScoreUpdatedPayload describes a ledger change.
type HoleScoreUpdatedPayload struct {
	ScorecardID    sharedtypes.ScorecardID `json:"scorecard_id"`
	RoundID        sharedtypes.RoundID     `json:"round_id"`
	AttendeeID     sharedtypes.AttendeeID  `json:"attendee_id"`
	HoleID         sharedtypes.HoleID      `json:"hole_id"`
	TotalScore     *int                    `json:"total_score"`
	HolesCompleted int                     `json:"holes_completed"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// ScorecardCompletedPayload announces a finished round for one player.
type ScorecardCompletedPayload struct {
	ScorecardID sharedtypes.ScorecardID `json:"scorecard_id"`
	RoundID     sharedtypes.RoundID     `json:"round_id"`
	AttendeeID  sharedtypes.AttendeeID  `json:"attendee_id"`
	TotalScore  int                     `json:"total_score"`
	CompletedAt time.Time               `json:"completed_at"`
}
