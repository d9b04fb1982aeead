// Package roundqueue schedules tee-time reminders on a river job queue backed by the
// same Postgres cluster as everything else.
package roundqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/fairway-crew/tripbot/app/eventbus"
	roundevents "github.com/fairway-crew/tripbot/app/modules/round/domain/events"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// ReminderLeadTime is how far before the tee time the reminder fires.
const ReminderLeadTime = time.Hour

// Scheduler is the contract the round service uses to book reminders.
type Scheduler interface {
	ScheduleTeeTimeReminder(ctx context.Context, roundID sharedtypes.RoundID, roundName string, teeTime time.Time) error
}

// TeeTimeReminderArgs is the river job payload.
type TeeTimeReminderArgs struct {
	RoundID   sharedtypes.RoundID `json:"round_id"`
	RoundName string              `json:"round_name"`
	TeeTime   time.Time           `json:"tee_time"`
}

func (TeeTimeReminderArgs) Kind() string { return "tee_time_reminder" }

// TeeTimeReminderWorker turns a due job into an event on the in-process bus.
type TeeTimeReminderWorker struct {
	river.WorkerDefaults[TeeTimeReminderArgs]

	bus    eventbus.EventBus
	logger *slog.Logger
}

func (w *TeeTimeReminderWorker) Work(ctx context.Context, job *river.Job[TeeTimeReminderArgs]) error {
	w.logger.InfoContext(ctx, "Tee time reminder due",
		attr.RoundID("round_id", job.Args.RoundID),
		attr.String("round_name", job.Args.RoundName),
	)
	return w.bus.Publish(roundevents.TopicTeeTimeReminderDue, roundevents.TeeTimeReminderPayload{
		RoundID:   job.Args.RoundID,
		RoundName: job.Args.RoundName,
		TeeTime:   job.Args.TeeTime,
	})
}

// QueueService owns the river client.
type QueueService struct {
	client *river.Client[pgx.Tx]
	logger *slog.Logger
}

var _ Scheduler = (*QueueService)(nil)

// NewQueueService builds a river client with the reminder worker registered.
func NewQueueService(pool *pgxpool.Pool, bus eventbus.EventBus, logger *slog.Logger) (*QueueService, error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, &TeeTimeReminderWorker{bus: bus, logger: logger})

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 4},
		},
		Workers: workers,
	})
	if err != nil {
		return nil, fmt.Errorf("create river client: %w", err)
	}
	return &QueueService{client: client, logger: logger}, nil
}

// Start begins working jobs; Stop drains in-flight work.
func (q *QueueService) Start(ctx context.Context) error { return q.client.Start(ctx) }
func (q *QueueService) Stop(ctx context.Context) error  { return q.client.Stop(ctx) }

// ScheduleTeeTimeReminder books a reminder one lead time before the round. A reminder
// already in the past is skipped rather than fired immediately.
func (q *QueueService) ScheduleTeeTimeReminder(ctx context.Context, roundID sharedtypes.RoundID, roundName string, teeTime time.Time) error {
	remindAt := teeTime.Add(-ReminderLeadTime)
	if remindAt.Before(time.Now()) {
		q.logger.InfoContext(ctx, "Skipping reminder scheduled in the past",
			attr.RoundID("round_id", roundID),
		)
		return nil
	}

	_, err := q.client.Insert(ctx, TeeTimeReminderArgs{
		RoundID:   roundID,
		RoundName: roundName,
		TeeTime:   teeTime,
	}, &river.InsertOpts{
		ScheduledAt: remindAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	})
	if err != nil {
		return fmt.Errorf("schedule tee time reminder: %w", err)
	}
	return nil
}
