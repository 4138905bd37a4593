package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirections(t *testing.T) {
	t.Run("down maps to the south slot", func(t *testing.T) {
		assert.Equal(t, []Vec2{{X: 0, Y: -1}}, Directions(SuffixDown))
	})

	t.Run("up maps to the north slot", func(t *testing.T) {
		assert.Equal(t, []Vec2{{X: 0, Y: 1}}, Directions(SuffixUp))
	})

	t.Run("side mirrors into all six off-axis slots", func(t *testing.T) {
		got := Directions(SuffixSide)
		require.Len(t, got, 6)
		assert.Equal(t, []Vec2{
			{X: 1, Y: 0}, {X: -1, Y: 0},
			{X: 1, Y: 1}, {X: -1, Y: 1},
			{X: 1, Y: -1}, {X: -1, Y: -1},
		}, got)
	})

	t.Run("unrecognised suffix contributes nothing", func(t *testing.T) {
		assert.Nil(t, Directions("diagonal"))
		assert.Nil(t, Directions(""))
	})

	t.Run("returned slices are caller-owned", func(t *testing.T) {
		first := Directions(SuffixSide)
		first[0] = Vec2{X: 99, Y: 99}
		second := Directions(SuffixSide)
		assert.Equal(t, Vec2{X: 1, Y: 0}, second[0])
	})
}
