package roundqueue

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairway-crew/tripbot/app/eventbus"
	roundevents "github.com/fairway-crew/tripbot/app/modules/round/domain/events"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

func TestTeeTimeReminderWorker_PublishesReminderEvent(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	bus := eventbus.New(logger)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	messages, err := bus.Subscribe(ctx, roundevents.TopicTeeTimeReminderDue)
	require.NoError(t, err)

	worker := &TeeTimeReminderWorker{bus: bus, logger: logger}
	args := TeeTimeReminderArgs{
		RoundID:   sharedtypes.NewRoundID(),
		RoundName: "Day 2 at Champions Pointe",
		TeeTime:   time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, worker.Work(ctx, &river.Job[TeeTimeReminderArgs]{Args: args}))

	select {
	case msg := <-messages:
		var payload roundevents.TeeTimeReminderPayload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, args.RoundID, payload.RoundID)
		assert.Equal(t, args.RoundName, payload.RoundName)
		assert.True(t, args.TeeTime.Equal(payload.TeeTime))
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reminder event on the bus")
	}
}

func TestTeeTimeReminderArgs_Kind(t *testing.T) {
	assert.Equal(t, "tee_time_reminder", TeeTimeReminderArgs{}.Kind())
}
