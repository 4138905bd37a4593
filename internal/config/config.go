// Package config defines the explicit run configuration of the compiler.
//
// A run is fully described by one value: where the manifest and clip
// catalog live, where output goes, which variant is the base, and which
// variants get override patches. Nothing is implicit or global; the entry
// point receives this value and everything downstream is a function of it.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
)

// Config is the compiler's entire run configuration.
type Config struct {
	// ManifestPath locates the motion asset manifest (JSON or YAML).
	ManifestPath string `hcl:"manifest"`
	// CatalogPath locates the clip metadata catalog. Required only when
	// Variants is non-empty; graph-only runs never consult it.
	CatalogPath string `hcl:"clip_catalog,optional"`
	// OutputDir is where the serialization sink writes artifacts.
	OutputDir string `hcl:"output"`
	// BaseVariant is the variant the graph topology is built from.
	BaseVariant string `hcl:"base_variant"`
	// Variants lists the override patches to generate, in emission order.
	Variants []string `hcl:"variants,optional"`
	// SkipEmptyPatches stops the sink from persisting patches that
	// substitute nothing. The EmptyVariantFilter diagnostic is emitted
	// either way.
	SkipEmptyPatches bool `hcl:"skip_empty_patches,optional"`
}

// Load parses an HCL run-configuration file.
func Load(ctx context.Context, path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config %q: %w", path, diags)
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config %q: %w", path, diags)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	ctxlog.FromContext(ctx).Debug("Run configuration loaded.",
		"path", path,
		"base_variant", cfg.BaseVariant,
		"variants", len(cfg.Variants))
	return &cfg, nil
}

// Validate checks the invariants the HCL schema cannot express.
func (c *Config) Validate() error {
	if c.ManifestPath == "" {
		return errors.New("manifest path must not be empty")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	if c.BaseVariant == "" {
		return errors.New("base variant must not be empty")
	}
	if len(c.Variants) > 0 && c.CatalogPath == "" {
		return errors.New("clip_catalog is required when variants are requested")
	}
	for i, v := range c.Variants {
		if v == "" {
			return fmt.Errorf("variant %d must not be empty", i)
		}
	}
	return nil
}
