package roundservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeeTimeParser_Parse(t *testing.T) {
	parser, err := NewTeeTimeParser()
	require.NoError(t, err)

	loc, err := time.LoadLocation(TripTimezone)
	require.NoError(t, err)
	// A Wednesday morning mid-trip.
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, loc)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "explicit clock time later today",
			input: "today at 2:30 pm",
			want:  time.Date(2025, 6, 4, 14, 30, 0, 0, loc),
		},
		{
			name:  "tomorrow morning",
			input: "tomorrow at 8am",
			want:  time.Date(2025, 6, 5, 8, 0, 0, 0, loc),
		},
		{
			name:  "compact clock without colon",
			input: "tomorrow 932am",
			want:  time.Date(2025, 6, 5, 9, 32, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want.UTC(), got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestTeeTimeParser_Rejects(t *testing.T) {
	parser, err := NewTeeTimeParser()
	require.NoError(t, err)

	loc, err := time.LoadLocation(TripTimezone)
	require.NoError(t, err)
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, loc)

	for _, input := range []string{"", "   ", "gibberish", "today at 6am"} {
		_, err := parser.Parse(input, now)
		assert.Error(t, err, "input %q", input)
	}
}
