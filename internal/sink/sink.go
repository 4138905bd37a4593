// Package sink is the hand-off boundary between the compiler and asset
// persistence. The compiler computes plain immutable values; writing them
// into a host engine's native format is somebody else's job, behind this
// interface.
package sink

import (
	"context"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/motion"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/patch"
)

// Sink consumes compilation output in the order the compiler produces it:
// the graph once, then zero or more patches.
type Sink interface {
	WriteGraph(ctx context.Context, g *motion.Graph) error
	WritePatch(ctx context.Context, p *patch.Patch) error
}

// Memory is an in-process Sink that just retains what it was handed.
// Tests and dry runs use it.
type Memory struct {
	Graph   *motion.Graph
	Patches []*patch.Patch
}

// WriteGraph implements Sink.
func (m *Memory) WriteGraph(ctx context.Context, g *motion.Graph) error {
	m.Graph = g
	return nil
}

// WritePatch implements Sink.
func (m *Memory) WritePatch(ctx context.Context, p *patch.Patch) error {
	m.Patches = append(m.Patches, p)
	return nil
}
