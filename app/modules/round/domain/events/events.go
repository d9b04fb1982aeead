// Package roundevents defines the topics and payloads the round module publishes.
package roundevents

import (
	"time"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// TopicTeeTimeReminderDue fires when a round's reminder job comes due.
const TopicTeeTimeReminderDue = "round.tee_time.reminder"

// TeeTimeReminderPayload tells listeners which round is about to start.
type TeeTimeReminderPayload struct {
	RoundID   sharedtypes.RoundID `json:"round_id"`
	RoundName string              `json:"round_name"`
	TeeTime   time.Time           `json:"tee_time"`
}
