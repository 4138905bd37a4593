// Package cli parses motionc's command line into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/app"
)

// ExitError carries a specific process exit code alongside its message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the populated app
// config, a boolean indicating a clean early exit (help, no work
// requested), or an ExitError for invalid input.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("motionc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
motionc - compiles a motion asset manifest into a canonical motion graph
and per-variant override patches.

Usage:
  motionc [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to an HCL run-configuration file. Flags below override its values.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the HCL run-configuration file.")
	manifestFlag := flagSet.String("manifest", "", "Path to the motion asset manifest (JSON or YAML).")
	clipsFlag := flagSet.String("clips", "", "Path to the clip metadata catalog.")
	outFlag := flagSet.String("out", "", "Output directory for the emitted graph and patches.")
	baseFlag := flagSet.String("base", "", "Base variant tag the graph is built from.")
	variantsFlag := flagSet.String("variants", "", "Comma-separated variant tags to generate override patches for.")
	skipEmptyFlag := flagSet.Bool("skip-empty", false, "Do not persist patches that substitute nothing.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	configPath := *configFlag
	if configPath == "" && flagSet.NArg() > 0 {
		configPath = flagSet.Arg(0)
	}

	if configPath == "" && *manifestFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var variants []string
	if *variantsFlag != "" {
		for _, v := range strings.Split(*variantsFlag, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				return nil, false, &ExitError{Code: 2, Message: "invalid variants: empty tag in list"}
			}
			variants = append(variants, v)
		}
	}

	return &app.Config{
		ConfigPath:       configPath,
		ManifestPath:     *manifestFlag,
		CatalogPath:      *clipsFlag,
		OutputDir:        *outFlag,
		BaseVariant:      *baseFlag,
		Variants:         variants,
		SkipEmptyPatches: *skipEmptyFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	}, false, nil
}
