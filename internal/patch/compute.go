package patch

import (
	"context"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/asset"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/diag"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/manifest"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/motion"
)

// Compute builds the override patch for one variant.
//
// The graph is shared and read-only; patches for different variants are
// independent of each other and of the order they are computed in. Every
// recovered condition lands in the returned diagnostics, never an error:
// an unresolvable substitute drops its pair, a missing override is simply
// absent, and an empty variant produces an empty (still valid) patch.
func Compute(ctx context.Context, graph *motion.Graph, entries []manifest.Entry, variant string, catalog asset.Catalog) (*Patch, diag.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	p := &Patch{Variant: variant}

	view, diags := manifest.Filter(entries, variant)
	if view.Len() == 0 {
		diags = diags.Append(emptyFilterDiag(variant))
		logger.Warn("Variant matched no manifest entries, emitting empty patch.", "variant", variant)
		return p, diags
	}

	for _, binding := range graph.CanonicalBindings() {
		subPath, ok := view.Path(binding.Name)
		if !ok {
			// No override for this clip; the canonical binding stands.
			continue
		}
		if subPath == binding.Clip {
			// A variant patched against itself overrides nothing.
			continue
		}
		substitute, ok := catalog.Lookup(subPath)
		if !ok {
			diags = diags.Append(unresolvedDiag(variant, binding.Name, subPath))
			continue
		}

		p.Substitutions = append(p.Substitutions, Substitution{
			Name:       binding.Name,
			Canonical:  binding.Clip,
			Substitute: subPath,
		})

		if canonical, ok := catalog.Lookup(binding.Clip); ok {
			PropagateEndMarkers(p, canonical, substitute)
		}
	}

	logger.Debug("Patch computed.",
		"variant", variant,
		"substitutions", len(p.Substitutions),
		"marked_clips", len(p.Markers))
	return p, diags
}
