package leaderboarddomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

func intp(v int) *int { return &v }

func TestRank_OrdersByTotalAscending(t *testing.T) {
	entries := []Entry{
		{AttendeeName: "Pat", TotalScore: intp(85)},
		{AttendeeName: "Sam", TotalScore: intp(90)},
		{AttendeeName: "Lee", TotalScore: intp(78)},
	}

	ranked := Rank(entries)

	var got []string
	var positions []int
	for _, e := range ranked {
		got = append(got, e.AttendeeName)
		positions = append(positions, e.Position)
	}
	if diff := cmp.Diff([]string{"Lee", "Pat", "Sam"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 2, 3}, positions)
}

func TestRank_TiesSharePosition(t *testing.T) {
	entries := []Entry{
		{AttendeeName: "Pat", TotalScore: intp(80)},
		{AttendeeName: "Sam", TotalScore: intp(76)},
		{AttendeeName: "Lee", TotalScore: intp(76)},
		{AttendeeName: "Kim", TotalScore: intp(82)},
	}

	ranked := Rank(entries)

	byName := map[string]int{}
	for _, e := range ranked {
		byName[e.AttendeeName] = e.Position
	}
	assert.Equal(t, 1, byName["Sam"])
	assert.Equal(t, 1, byName["Lee"])
	assert.Equal(t, 3, byName["Pat"], "position after a tie skips the tied count")
	assert.Equal(t, 4, byName["Kim"])
}

func TestRank_UnstartedAppendedAfterField(t *testing.T) {
	entries := []Entry{
		{AttendeeID: sharedtypes.NewAttendeeID(), AttendeeName: "Sam"},
		{AttendeeID: sharedtypes.NewAttendeeID(), AttendeeName: "Lee", TotalScore: intp(71)},
		{AttendeeID: sharedtypes.NewAttendeeID(), AttendeeName: "Kim"},
	}

	ranked := Rank(entries)

	assert.Equal(t, "Lee", ranked[0].AttendeeName)
	assert.Equal(t, 1, ranked[0].Position)
	// Unstarted players keep their relative order and number on from the field.
	assert.Equal(t, "Sam", ranked[1].AttendeeName)
	assert.Equal(t, 2, ranked[1].Position)
	assert.Equal(t, "Kim", ranked[2].AttendeeName)
	assert.Equal(t, 3, ranked[2].Position)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestFormatVsPar(t *testing.T) {
	assert.Equal(t, "E", FormatVsPar(intp(0)))
	assert.Equal(t, "+3", FormatVsPar(intp(3)))
	assert.Equal(t, "-2", FormatVsPar(intp(-2)))
	assert.Equal(t, "-", FormatVsPar(nil))
}
