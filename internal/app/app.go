// Package app wires one motionc invocation together: logger, run
// configuration, serialization sink, and the compiler itself.
package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Config holds everything the CLI hands to an App instance.
type Config struct {
	// ConfigPath points at an HCL run-configuration file. Individual
	// fields below override what the file says; with no file they must
	// describe the run on their own.
	ConfigPath string

	ManifestPath     string
	CatalogPath      string
	OutputDir        string
	BaseVariant      string
	Variants         []string
	SkipEmptyPatches bool

	LogFormat string
	LogLevel  string
}

// App encapsulates one compiler invocation's dependencies and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	runID  string
	config *Config
}

// New constructs an App with its own isolated logger and a fresh run ID.
// The run ID tags every log line so interleaved CI output stays legible.
func New(outW io.Writer, cfg *Config) *App {
	runID := uuid.NewString()
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW).With("run_id", runID[:8]),
		runID:  runID,
		config: cfg,
	}
}
