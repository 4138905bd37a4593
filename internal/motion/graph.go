package motion

import (
	"encoding/json"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/compass"
)

// BlendChild is one directional slot of a blend node: a blend-space
// coordinate bound to a canonical clip.
type BlendChild struct {
	Direction compass.Vec2 `json:"direction"`
	Name      string       `json:"name"`
	Clip      string       `json:"clip"`
}

// BlendNode selects among directional clips using two scalar parameters.
// Children are ordered; the order is part of the graph's canonical form.
type BlendNode struct {
	ParamX   string       `json:"param_x"`
	ParamY   string       `json:"param_y"`
	Children []BlendChild `json:"children"`
}

// StateNode is one logical state with its binding. Exactly one of Blend
// and Clip is set: Blend for directional states, Clip for a state bound
// straight to a single clip.
type StateNode struct {
	State State      `json:"state"`
	Blend *BlendNode `json:"blend,omitempty"`
	Clip  string     `json:"clip,omitempty"`
}

// ExitPolicy declares how a transition leaves its source state.
type ExitPolicy int

const (
	// ExitImmediate interrupts the source motion as soon as guards pass.
	ExitImmediate ExitPolicy = iota
	// ExitWaitForCompletion lets the source motion play out (or fire its
	// end-of-clip event) before the transition is taken.
	ExitWaitForCompletion
)

// String returns the policy's serialized name.
func (p ExitPolicy) String() string {
	if p == ExitWaitForCompletion {
		return "wait_for_completion"
	}
	return "immediate"
}

// MarshalText keeps serialized transitions readable.
func (p ExitPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Guard is one condition on a transition: a graph parameter compared
// against a required value.
type Guard struct {
	Param string
	Value cty.Value
}

// MarshalJSON serializes the guard's cty value through its simple JSON
// form, so bool guards come out as plain true/false in emitted graphs.
func (g Guard) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Param string                  `json:"param"`
		Value ctyjson.SimpleJSONValue `json:"value"`
	}{g.Param, ctyjson.SimpleJSONValue{Value: g.Value}})
}

// boolGuard builds the common bool-flag guard.
func boolGuard(param string, required bool) Guard {
	v := cty.False
	if required {
		v = cty.True
	}
	return Guard{Param: param, Value: v}
}

// Transition is one edge of the graph. From may be AnyState.
type Transition struct {
	From   State      `json:"from"`
	To     State      `json:"to"`
	Guards []Guard    `json:"guards,omitempty"`
	Exit   ExitPolicy `json:"exit"`
}

// CanonicalBinding is one (logical name, clip path) pair the graph binds.
// The patcher iterates these; their order is the graph's canonical order.
type CanonicalBinding struct {
	Name string
	Clip string
}

// Graph is the compiled motion graph. It is built once per run and
// treated as read-only afterwards; every override patch shares it.
type Graph struct {
	States      []*StateNode `json:"states"`
	Transitions []Transition `json:"transitions"`
	Entry       State        `json:"entry"`

	index map[string]*StateNode
}

// Node returns the state node registered under a canonical state name.
// The index is built once alongside the graph; no linear search.
func (g *Graph) Node(name string) (*StateNode, bool) {
	n, ok := g.index[name]
	return n, ok
}

// CanonicalBindings returns every distinct clip binding reachable from the
// graph, in canonical order: state catalog order, then child order within
// each blend node, first occurrence only. A side clip occupies six blend
// slots but contributes one binding.
func (g *Graph) CanonicalBindings() []CanonicalBinding {
	var out []CanonicalBinding
	seen := make(map[string]bool)
	for _, sn := range g.States {
		if sn.Clip != "" && !seen[sn.State.String()] {
			seen[sn.State.String()] = true
			out = append(out, CanonicalBinding{Name: sn.State.String(), Clip: sn.Clip})
		}
		if sn.Blend == nil {
			continue
		}
		for _, child := range sn.Blend.Children {
			if seen[child.Name] {
				continue
			}
			seen[child.Name] = true
			out = append(out, CanonicalBinding{Name: child.Name, Clip: child.Clip})
		}
	}
	return out
}
