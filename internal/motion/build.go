package motion

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/compass"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/manifest"
)

// ErrMissingBaseAnimations is wrapped when the base variant's filtered
// view is empty. No graph can be built from nothing; fatal.
var ErrMissingBaseAnimations = errors.New("missing base animations")

// axisSuffixes is the fixed resolution order for a state's sub-names.
// Child order inside every blend node follows from it, which is what makes
// two builds from the same view byte-identical.
var axisSuffixes = []string{compass.SuffixDown, compass.SuffixUp, compass.SuffixSide}

// Build assembles the canonical motion graph from the base variant's view.
//
// Every state in the catalog becomes a blend node populated from its three
// axis sub-names; a sub-name absent from the view simply contributes no
// children. Partial blend nodes are valid. The transition topology and the
// Idle entry state are fixed.
func Build(ctx context.Context, view *manifest.View) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	if view.Len() == 0 {
		return nil, fmt.Errorf("variant %q matched no manifest entries: %w", view.Variant(), ErrMissingBaseAnimations)
	}

	graph := &Graph{
		Entry: Idle,
		index: make(map[string]*StateNode, stateCount),
	}

	for _, state := range Catalog() {
		node := &StateNode{
			State: state,
			Blend: &BlendNode{ParamX: ParamMoveX, ParamY: ParamMoveY},
		}
		for _, suffix := range axisSuffixes {
			name := SubName(state, suffix)
			clip, ok := view.Path(name)
			if !ok {
				logger.Debug("Sub-name has no clip in base variant, slot left empty.", "name", name)
				continue
			}
			for _, dir := range compass.Directions(suffix) {
				node.Blend.Children = append(node.Blend.Children, BlendChild{
					Direction: dir,
					Name:      name,
					Clip:      clip,
				})
			}
		}
		graph.States = append(graph.States, node)
		graph.index[state.String()] = node
	}

	ts := transitionCatalog()
	validateTransitions(ts)
	graph.Transitions = ts

	logger.Debug("Motion graph built.",
		"states", len(graph.States),
		"transitions", len(graph.Transitions),
		"bindings", len(graph.CanonicalBindings()))
	return graph, nil
}
