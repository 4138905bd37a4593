// Package compiler orchestrates one batch compilation run: manifest in,
// canonical graph plus per-variant override patches out, with an
// accumulated diagnostics collection alongside.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/asset"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/config"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/diag"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/manifest"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/motion"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/patch"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/sink"
)

// Result is everything a completed run produced.
type Result struct {
	Graph   *motion.Graph
	Patches []*patch.Patch
}

// Run executes one compilation: load the manifest, build the graph from
// the base variant, emit it, then compute and emit each requested
// variant's patch in the configured order.
//
// The run is synchronous and sequential. Parse-time and graph-time
// failures abort with an error (mirrored into the diagnostics); every
// other condition is recovered locally and only surfaces as a diagnostic.
func Run(ctx context.Context, cfg *config.Config, out sink.Sink) (*Result, diag.Diagnostics, error) {
	logger := ctxlog.FromContext(ctx)
	var diags diag.Diagnostics

	loader := manifest.LoaderFor(cfg.ManifestPath)
	entries, err := loader.Load(ctx, cfg.ManifestPath)
	if err != nil {
		if errors.Is(err, manifest.ErrMalformed) {
			diags = diags.Append(&diag.Diagnostic{
				Severity: diag.Error,
				Code:     diag.CodeMalformedManifest,
				Summary:  "manifest did not parse",
				Detail:   err.Error(),
			})
		}
		return nil, diags, err
	}
	logger.Info("Manifest loaded.", "entries", len(entries))

	baseView, filterDiags := manifest.Filter(entries, cfg.BaseVariant)
	diags = diags.Extend(filterDiags)

	graph, err := motion.Build(ctx, baseView)
	if err != nil {
		if errors.Is(err, motion.ErrMissingBaseAnimations) {
			diags = diags.Append(&diag.Diagnostic{
				Severity: diag.Error,
				Code:     diag.CodeMissingBaseAnimations,
				Summary:  fmt.Sprintf("base variant %q has no animations", cfg.BaseVariant),
				Detail:   err.Error(),
			})
		}
		return nil, diags, err
	}
	if err := out.WriteGraph(ctx, graph); err != nil {
		return nil, diags, fmt.Errorf("emitting graph: %w", err)
	}
	logger.Info("Graph compiled and emitted.", "base_variant", cfg.BaseVariant)

	result := &Result{Graph: graph}
	if len(cfg.Variants) == 0 {
		return result, diags, nil
	}

	catalog, err := asset.LoadCatalog(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, diags, err
	}

	for _, variant := range cfg.Variants {
		p, patchDiags := patch.Compute(ctx, graph, entries, variant, catalog)
		diags = diags.Extend(patchDiags)
		result.Patches = append(result.Patches, p)

		if p.Empty() && cfg.SkipEmptyPatches {
			logger.Warn("Skipping empty patch.", "variant", variant)
			continue
		}
		if err := out.WritePatch(ctx, p); err != nil {
			return nil, diags, fmt.Errorf("emitting patch for variant %q: %w", variant, err)
		}
	}

	logger.Info("Compilation finished.",
		"patches", len(result.Patches),
		"diagnostics", len(diags))
	return result, diags, nil
}
