// Package motion defines the canonical motion graph model and its builder:
// a closed catalog of logical states, directional blend nodes populated from
// a variant-filtered manifest, and a fixed guarded transition topology.
package motion

import "fmt"

// State identifies one logical state of the motion graph. The set is
// closed; the graph's topology is compiled in, not derived from data.
type State int

const (
	// AnyState is a pseudo-source for transitions that can fire from
	// every state. It never appears in the state catalog itself.
	AnyState State = iota - 1

	Idle
	Walk
	Run
	Jump
	Attack
	Duck
	Slide

	stateCount int = iota - 1
)

var stateNames = [...]string{"idle", "walk", "run", "jump", "attack", "duck", "slide"}

// String returns the state's canonical lowercase name, which is also the
// prefix of its clip sub-names.
func (s State) String() string {
	if s == AnyState {
		return "any"
	}
	if s < 0 || int(s) >= stateCount {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText emits the canonical name, keeping serialized graphs readable
// and diffable.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Catalog returns every logical state in declaration order. This order is
// the canonical iteration order for graph construction and patch emission.
func Catalog() []State {
	out := make([]State, stateCount)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// SubName derives the canonical clip sub-name a state resolves for one
// axis suffix, e.g. (Walk, "side") → "walk_side". Keeping this in one
// place is what guarantees manifest names and graph bindings agree.
func SubName(s State, suffix string) string {
	return s.String() + "_" + suffix
}
