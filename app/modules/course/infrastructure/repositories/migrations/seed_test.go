package coursemigrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCardShape(t *testing.T) {
	require.Len(t, championsPointeHoles, 18)

	seenNumbers := make(map[int]bool)
	seenIndexes := make(map[int]bool)
	for _, h := range championsPointeHoles {
		assert.GreaterOrEqual(t, h.Par, 3, "hole %d par", h.Number)
		assert.LessOrEqual(t, h.Par, 5, "hole %d par", h.Number)
		assert.False(t, seenNumbers[h.Number], "duplicate hole number %d", h.Number)
		assert.False(t, seenIndexes[h.StrokeIndex], "duplicate stroke index %d", h.StrokeIndex)
		seenNumbers[h.Number] = true
		seenIndexes[h.StrokeIndex] = true

		// Longer tees play longer.
		assert.Greater(t, h.Fuzzy, h.White, "hole %d", h.Number)
		assert.Greater(t, h.White, h.Gray, "hole %d", h.Number)
		assert.Greater(t, h.Gray, h.Red, "hole %d", h.Number)
	}

	for n := 1; n <= 18; n++ {
		assert.True(t, seenNumbers[n], "missing hole number %d", n)
		assert.True(t, seenIndexes[n], "missing stroke index %d", n)
	}

	assert.Equal(t, 72, seedParTotal())
	assert.Equal(t, 6828, seedYardageTotal())
}
