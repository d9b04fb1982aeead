package leaderboardservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/fairway-crew/tripbot/app/eventbus"
	scorecardevents "github.com/fairway-crew/tripbot/app/modules/scorecard/domain/events"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// DefaultPollInterval matches the cadence clients poll the board at.
const DefaultPollInterval = 30 * time.Second

// Poller keeps leaderboard snapshots warm. Every tick it refreshes rounds marked
// dirty by scorecard events since the last tick. A refresh failure is logged and the
// round stays dirty, so the next tick retries; readers keep seeing the last good
// snapshot throughout.
type Poller struct {
	svc      Service
	bus      eventbus.EventBus
	interval time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	dirty map[sharedtypes.RoundID]struct{}
}

// NewPoller creates a poller. A non-positive interval falls back to
// DefaultPollInterval.
func NewPoller(svc Service, bus eventbus.EventBus, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		svc:      svc,
		bus:      bus,
		interval: interval,
		logger:   logger,
		dirty:    make(map[sharedtypes.RoundID]struct{}),
	}
}

// MarkDirty flags a round for refresh on the next tick.
func (p *Poller) MarkDirty(roundID sharedtypes.RoundID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dirty[roundID] = struct{}{}
}

func (p *Poller) takeDirty() []sharedtypes.RoundID {
	p.mu.Lock()
	defer p.mu.Unlock()
	rounds := make([]sharedtypes.RoundID, 0, len(p.dirty))
	for roundID := range p.dirty {
		rounds = append(rounds, roundID)
	}
	p.dirty = make(map[sharedtypes.RoundID]struct{})
	return rounds
}

// Run subscribes to scorecard events and ticks until the context is canceled.
func (p *Poller) Run(ctx context.Context) error {
	updated, err := p.bus.Subscribe(ctx, scorecardevents.TopicHoleScoreUpdated)
	if err != nil {
		return err
	}
	completed, err := p.bus.Subscribe(ctx, scorecardevents.TopicScorecardCompleted)
	if err != nil {
		return err
	}

	go p.consume(ctx, updated)
	go p.consume(ctx, completed)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.refreshDirty(ctx)
		}
	}
}

func (p *Poller) consume(ctx context.Context, messages <-chan *message.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			p.handle(ctx, msg)
			msg.Ack()
		}
	}
}

// handle extracts the round from a scorecard event. Both payloads carry round_id, so
// one decode shape covers both topics.
func (p *Poller) handle(ctx context.Context, msg *message.Message) {
	var payload struct {
		RoundID sharedtypes.RoundID `json:"round_id"`
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		p.logger.WarnContext(ctx, "Dropping malformed scorecard event",
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		return
	}
	if payload.RoundID.IsNil() {
		return
	}
	p.MarkDirty(payload.RoundID)
}

func (p *Poller) refreshDirty(ctx context.Context) {
	for _, roundID := range p.takeDirty() {
		if _, err := p.svc.Refresh(ctx, roundID); err != nil {
			// Refresh already logged the failure; re-flag so the next tick retries.
			p.MarkDirty(roundID)
		}
	}
}
