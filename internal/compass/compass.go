// Package compass holds the deterministic policy that maps a clip's axis
// suffix to the 2D blend-space slots it populates.
package compass

// Vec2 is one slot in the blend space. Coordinates are drawn from the
// 8-slot compass {-1, 0, 1}² minus the center.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Axis suffixes recognised on canonical clip sub-names.
const (
	SuffixDown = "down"
	SuffixUp   = "up"
	SuffixSide = "side"
)

// sideSlots is the fixed mirror order for a side clip: east, west, then
// the four diagonals. One authored side clip covers all six slots; the
// runtime mirrors it for the -X half. Order is load-bearing: blend-node
// children inherit it, and graph output must be byte-stable across builds.
var sideSlots = []Vec2{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

// Directions maps an axis suffix to the blend slots that suffix fills.
// An unrecognised suffix contributes no slots; that is deliberate, so a
// manifest can carry clips the graph has no use for.
func Directions(suffix string) []Vec2 {
	switch suffix {
	case SuffixDown:
		return []Vec2{{X: 0, Y: -1}}
	case SuffixUp:
		return []Vec2{{X: 0, Y: 1}}
	case SuffixSide:
		out := make([]Vec2, len(sideSlots))
		copy(out, sideSlots)
		return out
	default:
		return nil
	}
}
