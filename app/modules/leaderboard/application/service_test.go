package leaderboardservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	leaderboarddb "github.com/fairway-crew/tripbot/app/modules/leaderboard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// FakeStandingsRepository serves canned rows per round; Err, when set, fails every
// read.
type FakeStandingsRepository struct {
	Rows  map[sharedtypes.RoundID][]leaderboarddb.Row
	Err   error
	Calls int
}

var _ leaderboarddb.Repository = (*FakeStandingsRepository)(nil)

func (f *FakeStandingsRepository) ListRoundStandings(_ context.Context, _ bun.IDB, roundID sharedtypes.RoundID) ([]leaderboarddb.Row, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Rows[roundID], nil
}

func intp(v int) *int { return &v }

func newTestService(repo *FakeStandingsRepository) *LeaderboardService {
	return NewLeaderboardService(
		repo,
		slog.New(slog.DiscardHandler),
		NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func standingsRow(name string, total *int, holes, parTotal int) leaderboarddb.Row {
	return leaderboarddb.Row{
		ScorecardID:    sharedtypes.NewScorecardID(),
		AttendeeID:     sharedtypes.NewAttendeeID(),
		AttendeeName:   name,
		TeeSelection:   sharedtypes.TeeWhite,
		TotalScore:     total,
		HolesCompleted: holes,
		ParTotal:       parTotal,
	}
}

func TestRefresh_RanksAndComputesVsPar(t *testing.T) {
	roundID := sharedtypes.NewRoundID()
	repo := &FakeStandingsRepository{Rows: map[sharedtypes.RoundID][]leaderboarddb.Row{
		roundID: {
			standingsRow("Pat", intp(85), 18, 72), // +13
			standingsRow("Sam", intp(90), 18, 72), // +18
			standingsRow("Lee", intp(78), 18, 72), // +6
			standingsRow("Kim", nil, 0, 72),
			standingsRow("Ash", intp(40), 9, 72), // -32 through nine
		},
	}}
	svc := newTestService(repo)

	snapshot, err := svc.Refresh(context.Background(), roundID)
	require.NoError(t, err)
	require.Len(t, snapshot.Entries, 5)

	// Partial rounds rank by raw total alongside full ones, and vs-par is measured
	// against the full card's par even mid-round.
	assert.Equal(t, "Ash", snapshot.Entries[0].AttendeeName)
	assert.Equal(t, 40-72, *snapshot.Entries[0].ScoreVsPar)
	assert.Equal(t, "Lee", snapshot.Entries[1].AttendeeName)
	assert.Equal(t, 6, *snapshot.Entries[1].ScoreVsPar)
	assert.Equal(t, "Pat", snapshot.Entries[2].AttendeeName)
	assert.Equal(t, "Sam", snapshot.Entries[3].AttendeeName)

	// Kim has not started: last, positioned after the field, no vs-par.
	last := snapshot.Entries[4]
	assert.Equal(t, "Kim", last.AttendeeName)
	assert.Equal(t, 5, last.Position)
	assert.Nil(t, last.ScoreVsPar)
	assert.False(t, snapshot.LastUpdated.IsZero())
}

func TestGetLeaderboard_CachesSnapshot(t *testing.T) {
	roundID := sharedtypes.NewRoundID()
	repo := &FakeStandingsRepository{Rows: map[sharedtypes.RoundID][]leaderboarddb.Row{
		roundID: {standingsRow(gofakeit.Name(), intp(72), 18, 72)},
	}}
	svc := newTestService(repo)

	first, err := svc.GetLeaderboard(context.Background(), roundID)
	require.NoError(t, err)
	second, err := svc.GetLeaderboard(context.Background(), roundID)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.Calls, "cache hit must not requery")
}

func TestRefresh_FailureKeepsLastSnapshot(t *testing.T) {
	roundID := sharedtypes.NewRoundID()
	repo := &FakeStandingsRepository{Rows: map[sharedtypes.RoundID][]leaderboarddb.Row{
		roundID: {standingsRow("Lee", intp(80), 18, 72)},
	}}
	svc := newTestService(repo)

	good, err := svc.Refresh(context.Background(), roundID)
	require.NoError(t, err)

	repo.Err = errors.New("connection refused")
	stale, err := svc.Refresh(context.Background(), roundID)
	require.Error(t, err)
	assert.Same(t, good, stale, "a failed refresh must hand back the previous snapshot")

	served, err := svc.GetLeaderboard(context.Background(), roundID)
	require.NoError(t, err)
	assert.Same(t, good, served)
}

func TestRefresh_EmptyRound(t *testing.T) {
	svc := newTestService(&FakeStandingsRepository{})

	snapshot, err := svc.Refresh(context.Background(), sharedtypes.NewRoundID())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Entries)
}
