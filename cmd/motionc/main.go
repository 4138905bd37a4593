package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/app"
	"github.com/Nexusdeveloper902/Stellar-Mercenary-Freelancers-Haven/internal/cli"
)

// main is the entrypoint for the motionc compiler.
func main() {
	// Minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the real logic so tests can drive it with their own writer.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	compilerApp := app.New(outW, appConfig)
	return compilerApp.Run(context.Background())
}
