package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	leaderboarddomain "github.com/fairway-crew/tripbot/app/modules/leaderboard/domain"
	leaderboarddb "github.com/fairway-crew/tripbot/app/modules/leaderboard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/attr"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// LeaderboardService implements the Service interface. It holds the last good
// snapshot per round; Refresh is the only writer of that cache.
type LeaderboardService struct {
	repo    leaderboarddb.Repository
	logger  *slog.Logger
	metrics Metrics
	tracer  trace.Tracer

	mu        sync.RWMutex
	snapshots map[sharedtypes.RoundID]*leaderboarddomain.Snapshot

	// now is swappable for tests.
	now func() time.Time
}

var _ Service = (*LeaderboardService)(nil)

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	repo leaderboarddb.Repository,
	logger *slog.Logger,
	metrics Metrics,
	tracer trace.Tracer,
) *LeaderboardService {
	return &LeaderboardService{
		repo:      repo,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		snapshots: make(map[sharedtypes.RoundID]*leaderboarddomain.Snapshot),
		now:       time.Now,
	}
}

// GetLeaderboard serves the cached snapshot, computing one on first request.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, roundID sharedtypes.RoundID) (*leaderboarddomain.Snapshot, error) {
	s.mu.RLock()
	snapshot, ok := s.snapshots[roundID]
	s.mu.RUnlock()
	if ok {
		return snapshot, nil
	}
	return s.Refresh(ctx, roundID)
}

// Refresh recomputes the round's standings from the database. A successful compute
// replaces the cached snapshot; a failure leaves it untouched so readers keep the last
// good board.
func (s *LeaderboardService) Refresh(ctx context.Context, roundID sharedtypes.RoundID) (*leaderboarddomain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "RefreshLeaderboard", trace.WithAttributes(
		attribute.String("round_id", roundID.String()),
	))
	defer span.End()

	s.metrics.RecordRefreshAttempt(ctx)
	startTime := s.now()
	defer func() {
		s.metrics.RecordRefreshDuration(ctx, s.now().Sub(startTime))
	}()

	snapshot, err := s.compute(ctx, roundID)
	if err != nil {
		wrappedErr := fmt.Errorf("refresh leaderboard: %w", err)
		s.logger.ErrorContext(ctx, "Leaderboard refresh failed; keeping previous snapshot",
			attr.RoundID("round_id", roundID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordRefreshFailure(ctx)
		span.RecordError(wrappedErr)

		s.mu.RLock()
		previous := s.snapshots[roundID]
		s.mu.RUnlock()
		return previous, wrappedErr
	}

	s.mu.Lock()
	s.snapshots[roundID] = snapshot
	s.mu.Unlock()

	s.metrics.RecordRefreshSuccess(ctx, len(snapshot.Entries))
	return snapshot, nil
}

func (s *LeaderboardService) compute(ctx context.Context, roundID sharedtypes.RoundID) (*leaderboarddomain.Snapshot, error) {
	rows, err := s.repo.ListRoundStandings(ctx, nil, roundID)
	if err != nil {
		return nil, err
	}

	entries := make([]leaderboarddomain.Entry, 0, len(rows))
	for _, row := range rows {
		entry := leaderboarddomain.Entry{
			AttendeeID:     row.AttendeeID,
			AttendeeName:   row.AttendeeName,
			Handicap:       row.Handicap,
			ScorecardID:    row.ScorecardID,
			TeeSelection:   row.TeeSelection,
			TotalScore:     row.TotalScore,
			HolesCompleted: row.HolesCompleted,
			IsCompleted:    row.IsCompleted,
		}
		if row.TotalScore != nil {
			vsPar := *row.TotalScore - row.ParTotal
			entry.ScoreVsPar = &vsPar
		}
		entries = append(entries, entry)
	}

	return &leaderboarddomain.Snapshot{
		RoundID:     roundID,
		Entries:     leaderboarddomain.Rank(entries),
		LastUpdated: s.now().UTC(),
	}, nil
}
