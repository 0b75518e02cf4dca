package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	scancmd "github.com/rzbill/trawl/internal/cmd/scan"
	logpkg "github.com/rzbill/trawl/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	// initialize logger for CLI
	// Respect TRAWL_LOG_LEVEL and TRAWL_LOG_FORMAT for startup output
	level := os.Getenv("TRAWL_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if os.Getenv("TRAWL_LOG_FORMAT") == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "trawl",
		Short: "Trawl line filter CLI",
		Long: "Trawl filters a line stream in a single pass, emitting lines that " +
			"match one or more patterns together with surrounding context.",
	}

	rootCmd.AddCommand(scancmd.NewScanCommand())
	rootCmd.AddCommand(scancmd.NewPatternsCommand())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
