package roundservice

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	attendeedb "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories"
	rounddb "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// fakeRoundRepository is an in-memory rounddb.Repository.
type fakeRoundRepository struct {
	rounds   map[sharedtypes.RoundID]*rounddb.Round
	pairings map[sharedtypes.RoundID][]rounddb.Pairing
}

var _ rounddb.Repository = (*fakeRoundRepository)(nil)

func newFakeRoundRepository() *fakeRoundRepository {
	return &fakeRoundRepository{
		rounds:   make(map[sharedtypes.RoundID]*rounddb.Round),
		pairings: make(map[sharedtypes.RoundID][]rounddb.Pairing),
	}
}

func (f *fakeRoundRepository) CreateRound(_ context.Context, _ bun.IDB, round *rounddb.Round) error {
	copied := *round
	f.rounds[round.ID] = &copied
	return nil
}

func (f *fakeRoundRepository) GetRound(_ context.Context, _ bun.IDB, roundID sharedtypes.RoundID) (*rounddb.Round, error) {
	round, ok := f.rounds[roundID]
	if !ok {
		return nil, rounddb.ErrRoundNotFound
	}
	copied := *round
	return &copied, nil
}

func (f *fakeRoundRepository) ListRounds(context.Context, bun.IDB) ([]rounddb.Round, error) {
	var out []rounddb.Round
	for _, round := range f.rounds {
		out = append(out, *round)
	}
	return out, nil
}

func (f *fakeRoundRepository) UpdateTeeTime(_ context.Context, _ bun.IDB, roundID sharedtypes.RoundID, teeTime time.Time) error {
	round, ok := f.rounds[roundID]
	if !ok {
		return rounddb.ErrNoRowsAffected
	}
	round.TeeTime = teeTime
	return nil
}

func (f *fakeRoundRepository) ReplacePairings(_ context.Context, _ bun.IDB, roundID sharedtypes.RoundID, pairings []rounddb.Pairing) error {
	f.pairings[roundID] = pairings
	return nil
}

func (f *fakeRoundRepository) ListPairings(_ context.Context, _ bun.IDB, roundID sharedtypes.RoundID) ([]rounddb.Pairing, error) {
	return f.pairings[roundID], nil
}

// fakeRoster is an in-memory attendeedb.Repository.
type fakeRoster struct {
	attendees map[sharedtypes.AttendeeID]attendeedb.Attendee
}

var _ attendeedb.Repository = (*fakeRoster)(nil)

func newFakeRoster() *fakeRoster {
	return &fakeRoster{attendees: make(map[sharedtypes.AttendeeID]attendeedb.Attendee)}
}

func (f *fakeRoster) add(name string) sharedtypes.AttendeeID {
	id := sharedtypes.NewAttendeeID()
	f.attendees[id] = attendeedb.Attendee{ID: id, Name: name}
	return id
}

func (f *fakeRoster) ListAttendees(_ context.Context, _ bun.IDB, ids []sharedtypes.AttendeeID) ([]attendeedb.Attendee, error) {
	var out []attendeedb.Attendee
	for _, id := range ids {
		if a, ok := f.attendees[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeScheduler records reminder bookings.
type fakeScheduler struct {
	booked []sharedtypes.RoundID
}

func (f *fakeScheduler) ScheduleTeeTimeReminder(_ context.Context, roundID sharedtypes.RoundID, _ string, _ time.Time) error {
	f.booked = append(f.booked, roundID)
	return nil
}

func newRoundFixture(t *testing.T) (*RoundService, *fakeRoundRepository, *fakeRoster, *fakeScheduler) {
	t.Helper()
	parser, err := NewTeeTimeParser()
	require.NoError(t, err)

	repo := newFakeRoundRepository()
	roster := newFakeRoster()
	scheduler := &fakeScheduler{}
	svc := NewRoundService(repo, roster, scheduler, parser, slog.New(slog.DiscardHandler), noop.NewTracerProvider().Tracer("test"))

	loc, err := time.LoadLocation(TripTimezone)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 7, 0, 0, 0, loc) }
	return svc, repo, roster, scheduler
}

func TestCreateRound(t *testing.T) {
	svc, _, _, scheduler := newRoundFixture(t)

	round, err := svc.CreateRound(context.Background(), CreateRoundParams{
		TripDay:      2,
		Name:         "Day 2 at Champions Pointe",
		CourseID:     sharedtypes.NewCourseID(),
		TeeTimeInput: "tomorrow at 8am",
		DressCode:    "collared shirts",
	})
	require.NoError(t, err)

	loc, _ := time.LoadLocation(TripTimezone)
	want := time.Date(2025, 6, 3, 8, 0, 0, 0, loc).UTC()
	assert.Equal(t, want, round.TeeTime)
	assert.Equal(t, []sharedtypes.RoundID{round.ID}, scheduler.booked)

	stored, err := svc.GetRound(context.Background(), round.ID)
	require.NoError(t, err)
	assert.Equal(t, "Day 2 at Champions Pointe", stored.Name)
}

func TestCreateRound_BadTeeTime(t *testing.T) {
	svc, repo, _, scheduler := newRoundFixture(t)

	_, err := svc.CreateRound(context.Background(), CreateRoundParams{
		TripDay:      1,
		Name:         "Day 1",
		CourseID:     sharedtypes.NewCourseID(),
		TeeTimeInput: "whenever",
	})
	require.Error(t, err)
	assert.Empty(t, repo.rounds)
	assert.Empty(t, scheduler.booked)
}

func TestRescheduleTeeTime(t *testing.T) {
	svc, _, _, scheduler := newRoundFixture(t)

	round, err := svc.CreateRound(context.Background(), CreateRoundParams{
		TripDay:      1,
		Name:         "Day 1",
		CourseID:     sharedtypes.NewCourseID(),
		TeeTimeInput: "today at 9am",
	})
	require.NoError(t, err)

	moved, err := svc.RescheduleTeeTime(context.Background(), round.ID, "today at 1pm")
	require.NoError(t, err)

	loc, _ := time.LoadLocation(TripTimezone)
	assert.Equal(t, time.Date(2025, 6, 2, 13, 0, 0, 0, loc).UTC(), moved.TeeTime)
	assert.Len(t, scheduler.booked, 2, "rescheduling books a fresh reminder")
}

func TestRescheduleTeeTime_UnknownRound(t *testing.T) {
	svc, _, _, _ := newRoundFixture(t)

	_, err := svc.RescheduleTeeTime(context.Background(), sharedtypes.NewRoundID(), "today at 1pm")
	assert.ErrorIs(t, err, rounddb.ErrNoRowsAffected)
}

func TestSetPairings(t *testing.T) {
	svc, _, roster, _ := newRoundFixture(t)

	round, err := svc.CreateRound(context.Background(), CreateRoundParams{
		TripDay:      3,
		Name:         "Day 3",
		CourseID:     sharedtypes.NewCourseID(),
		TeeTimeInput: "today at 10am",
	})
	require.NoError(t, err)

	groupA := []sharedtypes.AttendeeID{roster.add("Lee"), roster.add("Pat")}
	groupB := []sharedtypes.AttendeeID{roster.add("Sam")}
	require.NoError(t, svc.SetPairings(context.Background(), round.ID, [][]sharedtypes.AttendeeID{groupA, groupB}))

	pairings, err := svc.ListPairings(context.Background(), round.ID)
	require.NoError(t, err)
	require.Len(t, pairings, 2)
	assert.Equal(t, 1, pairings[0].GroupNumber)
	assert.Equal(t, groupA, pairings[0].AttendeeIDs)
	assert.Equal(t, 2, pairings[1].GroupNumber)
	assert.Equal(t, groupB, pairings[1].AttendeeIDs)
}

func TestSetPairings_RejectsEmptyGroup(t *testing.T) {
	svc, _, _, _ := newRoundFixture(t)

	round, err := svc.CreateRound(context.Background(), CreateRoundParams{
		TripDay:      4,
		Name:         "Day 4",
		CourseID:     sharedtypes.NewCourseID(),
		TeeTimeInput: "today at 10am",
	})
	require.NoError(t, err)

	err = svc.SetPairings(context.Background(), round.ID, [][]sharedtypes.AttendeeID{{}})
	assert.ErrorIs(t, err, ErrEmptyPairing)
}

func TestSetPairings_UnknownAttendee(t *testing.T) {
	svc, repo, roster, _ := newRoundFixture(t)

	round, err := svc.CreateRound(context.Background(), CreateRoundParams{
		TripDay:      5,
		Name:         "Day 5",
		CourseID:     sharedtypes.NewCourseID(),
		TeeTimeInput: "today at 10am",
	})
	require.NoError(t, err)

	groups := [][]sharedtypes.AttendeeID{{roster.add("Lee"), sharedtypes.NewAttendeeID()}}
	err = svc.SetPairings(context.Background(), round.ID, groups)
	assert.ErrorIs(t, err, attendeedb.ErrAttendeeNotFound)
	assert.Empty(t, repo.pairings, "a rejected pairing must not be stored")
}
