package app

import (
	"context"
	"fmt"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/compiler"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/config"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/ctxlog"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/diag"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/sink"
)

// Run loads the run configuration, executes the compiler, and reports
// every accumulated diagnostic through the logger.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.", "run_id", a.runID)

	runCfg, err := a.resolveRunConfig(ctx)
	if err != nil {
		return err
	}

	out, err := sink.NewJSONDir(runCfg.OutputDir)
	if err != nil {
		return err
	}

	_, diags, err := compiler.Run(ctx, runCfg, out)
	a.report(diags)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}
	return nil
}

// resolveRunConfig merges the HCL file (when given) with CLI overrides.
// A CLI field that is set always wins over the file.
func (a *App) resolveRunConfig(ctx context.Context) (*config.Config, error) {
	runCfg := &config.Config{}
	if a.config.ConfigPath != "" {
		loaded, err := config.Load(ctx, a.config.ConfigPath)
		if err != nil {
			return nil, err
		}
		runCfg = loaded
	}

	if a.config.ManifestPath != "" {
		runCfg.ManifestPath = a.config.ManifestPath
	}
	if a.config.CatalogPath != "" {
		runCfg.CatalogPath = a.config.CatalogPath
	}
	if a.config.OutputDir != "" {
		runCfg.OutputDir = a.config.OutputDir
	}
	if a.config.BaseVariant != "" {
		runCfg.BaseVariant = a.config.BaseVariant
	}
	if len(a.config.Variants) > 0 {
		runCfg.Variants = a.config.Variants
	}
	if a.config.SkipEmptyPatches {
		runCfg.SkipEmptyPatches = true
	}

	if err := runCfg.Validate(); err != nil {
		return nil, fmt.Errorf("run configuration: %w", err)
	}
	return runCfg, nil
}

// report logs every diagnostic at a level matching its severity. Nothing
// is dropped; a clean run logs nothing here.
func (a *App) report(diags diag.Diagnostics) {
	for _, d := range diags {
		attrs := []any{"code", string(d.Code), "detail", d.Detail}
		switch d.Severity {
		case diag.Error:
			a.logger.Error(d.Summary, attrs...)
		default:
			a.logger.Warn(d.Summary, attrs...)
		}
	}
}
