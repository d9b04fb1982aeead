package scorecardservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// FakeScorecardRepository is an in-memory scorecarddb.Repository. Default behavior
// mimics the real implementation (unique indexes, NULL semantics); any Func field set
// overrides the corresponding method for fault injection. Calls records method names
// in order.
type FakeScorecardRepository struct {
	mu sync.Mutex

	scorecards map[sharedtypes.ScorecardID]*scorecarddb.Scorecard
	holeScores map[sharedtypes.ScorecardID]map[sharedtypes.HoleID]*scorecarddb.HoleScore

	Calls []string

	InsertScorecardFunc  func(ctx context.Context, scorecard *scorecarddb.Scorecard) (bool, error)
	UpdateTotalScoreFunc func(ctx context.Context, scorecardID sharedtypes.ScorecardID, total *int) error
	SumStrokesFunc       func(ctx context.Context, scorecardID sharedtypes.ScorecardID) (int, int, error)
	UpsertHoleStrokesFunc func(ctx context.Context, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, strokes int) error
}

var _ scorecarddb.Repository = (*FakeScorecardRepository)(nil)

func NewFakeScorecardRepository() *FakeScorecardRepository {
	return &FakeScorecardRepository{
		scorecards: make(map[sharedtypes.ScorecardID]*scorecarddb.Scorecard),
		holeScores: make(map[sharedtypes.ScorecardID]map[sharedtypes.HoleID]*scorecarddb.HoleScore),
	}
}

func (f *FakeScorecardRepository) record(call string) {
	f.Calls = append(f.Calls, call)
}

func (f *FakeScorecardRepository) InsertScorecard(ctx context.Context, _ bun.IDB, scorecard *scorecarddb.Scorecard) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InsertScorecard")
	if f.InsertScorecardFunc != nil {
		return f.InsertScorecardFunc(ctx, scorecard)
	}
	for _, existing := range f.scorecards {
		if existing.RoundID == scorecard.RoundID && existing.AttendeeID == scorecard.AttendeeID {
			return false, nil
		}
	}
	copied := *scorecard
	f.scorecards[scorecard.ID] = &copied
	return true, nil
}

func (f *FakeScorecardRepository) FindScorecard(_ context.Context, _ bun.IDB, roundID sharedtypes.RoundID, attendeeID sharedtypes.AttendeeID) (*scorecarddb.Scorecard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("FindScorecard")
	for _, sc := range f.scorecards {
		if sc.RoundID == roundID && sc.AttendeeID == attendeeID {
			copied := *sc
			return &copied, nil
		}
	}
	return nil, scorecarddb.ErrNotFound
}

func (f *FakeScorecardRepository) GetScorecard(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID) (*scorecarddb.Scorecard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetScorecard")
	sc, ok := f.scorecards[scorecardID]
	if !ok {
		return nil, scorecarddb.ErrNotFound
	}
	copied := *sc
	return &copied, nil
}

func (f *FakeScorecardRepository) UpdateTeeSelection(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, tee sharedtypes.TeeColor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTeeSelection")
	sc, ok := f.scorecards[scorecardID]
	if !ok {
		return scorecarddb.ErrNoRowsAffected
	}
	sc.TeeSelection = tee
	return nil
}

func (f *FakeScorecardRepository) UpdateTotalScore(ctx context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, total *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTotalScore")
	if f.UpdateTotalScoreFunc != nil {
		return f.UpdateTotalScoreFunc(ctx, scorecardID, total)
	}
	sc, ok := f.scorecards[scorecardID]
	if !ok {
		return scorecarddb.ErrNoRowsAffected
	}
	sc.TotalScore = total
	return nil
}

func (f *FakeScorecardRepository) UpdateTotalPutts(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, total *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTotalPutts")
	sc, ok := f.scorecards[scorecardID]
	if !ok {
		return scorecarddb.ErrNoRowsAffected
	}
	sc.TotalPutts = total
	return nil
}

func (f *FakeScorecardRepository) UpdateCompletion(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, completed bool, completedAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateCompletion")
	sc, ok := f.scorecards[scorecardID]
	if !ok {
		return scorecarddb.ErrNoRowsAffected
	}
	sc.IsCompleted = completed
	sc.CompletedAt = completedAt
	return nil
}

func (f *FakeScorecardRepository) ledger(scorecardID sharedtypes.ScorecardID) map[sharedtypes.HoleID]*scorecarddb.HoleScore {
	holes, ok := f.holeScores[scorecardID]
	if !ok {
		holes = make(map[sharedtypes.HoleID]*scorecarddb.HoleScore)
		f.holeScores[scorecardID] = holes
	}
	return holes
}

func (f *FakeScorecardRepository) upsert(scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID) *scorecarddb.HoleScore {
	holes := f.ledger(scorecardID)
	row, ok := holes[holeID]
	if !ok {
		row = &scorecarddb.HoleScore{ID: uuid.New(), ScorecardID: scorecardID, HoleID: holeID}
		holes[holeID] = row
	}
	return row
}

func (f *FakeScorecardRepository) UpsertHoleStrokes(ctx context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, strokes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpsertHoleStrokes")
	if f.UpsertHoleStrokesFunc != nil {
		return f.UpsertHoleStrokesFunc(ctx, scorecardID, holeID, strokes)
	}
	value := strokes
	f.upsert(scorecardID, holeID).Strokes = &value
	return nil
}

func (f *FakeScorecardRepository) UpsertHolePutts(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, putts int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpsertHolePutts")
	value := putts
	f.upsert(scorecardID, holeID).Putts = &value
	return nil
}

func (f *FakeScorecardRepository) ClearHoleStrokes(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ClearHoleStrokes")
	if row, ok := f.ledger(scorecardID)[holeID]; ok {
		row.Strokes = nil
	}
	return nil
}

func (f *FakeScorecardRepository) UpdateHoleNotes(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateHoleNotes")
	f.upsert(scorecardID, holeID).Notes = notes
	return nil
}

func (f *FakeScorecardRepository) UpdateHolePhoto(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID, holeID sharedtypes.HoleID, photoURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateHolePhoto")
	f.upsert(scorecardID, holeID).PhotoURL = photoURL
	return nil
}

func (f *FakeScorecardRepository) ListHoleScores(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID) ([]scorecarddb.HoleScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListHoleScores")
	var out []scorecarddb.HoleScore
	for _, row := range f.ledger(scorecardID) {
		out = append(out, *row)
	}
	return out, nil
}

func (f *FakeScorecardRepository) SumStrokes(ctx context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SumStrokes")
	if f.SumStrokesFunc != nil {
		return f.SumStrokesFunc(ctx, scorecardID)
	}
	var total, holes int
	for _, row := range f.ledger(scorecardID) {
		if row.Strokes != nil {
			total += *row.Strokes
			holes++
		}
	}
	return total, holes, nil
}

func (f *FakeScorecardRepository) SumPutts(_ context.Context, _ bun.IDB, scorecardID sharedtypes.ScorecardID) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SumPutts")
	var total, holes int
	for _, row := range f.ledger(scorecardID) {
		if row.Putts != nil {
			total += *row.Putts
			holes++
		}
	}
	return total, holes, nil
}

// FakeCourseRepository serves a fixed hole map.
type FakeCourseRepository struct {
	Course *coursedb.Course
	Holes  map[sharedtypes.HoleID]*coursedb.Hole

	GetHoleFunc func(ctx context.Context, holeID sharedtypes.HoleID) (*coursedb.Hole, error)
}

var _ coursedb.Repository = (*FakeCourseRepository)(nil)

func NewFakeCourseRepository() *FakeCourseRepository {
	return &FakeCourseRepository{Holes: make(map[sharedtypes.HoleID]*coursedb.Hole)}
}

// AddHole registers a hole with the given number and par and returns its id.
func (f *FakeCourseRepository) AddHole(number, par int) sharedtypes.HoleID {
	id := sharedtypes.NewHoleID()
	f.Holes[id] = &coursedb.Hole{ID: id, HoleNumber: number, Par: par}
	return id
}

func (f *FakeCourseRepository) GetCourse(_ context.Context, _ bun.IDB, _ sharedtypes.CourseID) (*coursedb.Course, error) {
	if f.Course == nil {
		return nil, coursedb.ErrCourseNotFound
	}
	return f.Course, nil
}

func (f *FakeCourseRepository) GetCourseByName(_ context.Context, _ bun.IDB, _ string) (*coursedb.Course, error) {
	if f.Course == nil {
		return nil, coursedb.ErrCourseNotFound
	}
	return f.Course, nil
}

func (f *FakeCourseRepository) ListHoles(_ context.Context, _ bun.IDB, _ sharedtypes.CourseID) ([]coursedb.Hole, error) {
	var out []coursedb.Hole
	for _, hole := range f.Holes {
		out = append(out, *hole)
	}
	return out, nil
}

func (f *FakeCourseRepository) GetHole(ctx context.Context, _ bun.IDB, holeID sharedtypes.HoleID) (*coursedb.Hole, error) {
	if f.GetHoleFunc != nil {
		return f.GetHoleFunc(ctx, holeID)
	}
	hole, ok := f.Holes[holeID]
	if !ok {
		return nil, coursedb.ErrHoleNotFound
	}
	return hole, nil
}
