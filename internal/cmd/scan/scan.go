// Package scan contains Cobra CLI commands for trawl.
package scan

import (
	"os"

	"github.com/rzbill/trawl/internal/config"
	"github.com/rzbill/trawl/internal/lineio"
	"github.com/rzbill/trawl/internal/match"
	"github.com/rzbill/trawl/internal/scanner"
	logpkg "github.com/rzbill/trawl/pkg/log"
	"github.com/spf13/cobra"
)

// NewScanCommand constructs the `scan` command, the single-pass filter run.
func NewScanCommand() *cobra.Command {
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Filter lines matching patterns, with surrounding context",
		Long: "Scan reads newline-delimited text from a file or standard input and " +
			"emits every line matching at least one pattern, together with the " +
			"configured number of context lines before and after the match.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			set, err := match.Compile(match.CompileOptions{
				Exprs:        cfg.Patterns,
				Filters:      cfg.Filters,
				PatternFiles: cfg.PatternFiles,
			})
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			srcOpts := lineio.SourceOptions{
				MaxLineBytes:   cfg.MaxLineBytes,
				GzipAutoDetect: cfg.GzipAutoDetect,
			}
			var src *lineio.Source
			if cfg.Input == "" {
				src, err = lineio.NewSource(cmd.InOrStdin(), srcOpts)
			} else {
				src, err = lineio.OpenInput(cfg.Input, srcOpts)
			}
			if err != nil {
				return err
			}
			defer src.Close()

			var sink *lineio.Sink
			if cfg.Output == "" {
				sink = lineio.NewSink(cmd.OutOrStdout())
			} else {
				sink, err = lineio.OpenOutput(cfg.Output)
				if err != nil {
					return err
				}
			}

			sc, err := scanner.New(set, scanner.Options{
				Before: cfg.Before,
				After:  cfg.After,
				Logger: logger,
			})
			if err != nil {
				return err
			}
			_, runErr := sc.Run(cmd.Context(), src, sink)
			if cerr := sink.Close(); runErr == nil {
				runErr = cerr
			}
			return runErr
		},
	}
	addPatternFlags(scanCmd)
	scanCmd.Flags().StringP("input", "i", "", "Input file (default: standard input)")
	scanCmd.Flags().StringP("output", "o", "", "Output file (default: standard output)")
	scanCmd.Flags().IntP("before", "b", 0, "Number of context lines before a match")
	scanCmd.Flags().IntP("after", "a", 0, "Number of context lines after a match")
	scanCmd.Flags().String("config", "", "Config file (default: well-known locations)")
	scanCmd.Flags().Int("max-line-bytes", 0, "Skip lines longer than this many bytes (0 = default 1 MiB)")
	scanCmd.Flags().Bool("gzip", true, "Transparently decompress gzip input")
	scanCmd.Flags().String("log-level", "", "Log level: debug|info|warn|error")
	scanCmd.Flags().String("log-format", "", "Log format: text|json")
	return scanCmd
}

// addPatternFlags registers the predicate flags shared by scan and
// patterns check.
func addPatternFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("regexp", "r", nil, "Regular expression to filter on (repeatable)")
	cmd.Flags().StringArray("filter", nil, "CEL filter expression over text/size/num (repeatable)")
	cmd.Flags().StringArray("patterns-file", nil, "YAML pattern file (repeatable)")
}

// resolveConfig builds the effective configuration: defaults, then config
// file, then TRAWL_* environment, then explicitly set flags. Repeatable
// predicate flags append to configured predicates rather than replacing
// them.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()

	path, _ := f.GetString("config")
	if path == "" {
		path = os.Getenv("TRAWL_CONFIG")
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)

	if f.Changed("input") {
		cfg.Input, _ = f.GetString("input")
	}
	if f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if f.Changed("before") {
		cfg.Before, _ = f.GetInt("before")
	}
	if f.Changed("after") {
		cfg.After, _ = f.GetInt("after")
	}
	if f.Changed("max-line-bytes") {
		cfg.MaxLineBytes, _ = f.GetInt("max-line-bytes")
	}
	if f.Changed("gzip") {
		cfg.GzipAutoDetect, _ = f.GetBool("gzip")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("log-format") {
		cfg.LogFormat, _ = f.GetString("log-format")
	}
	if exprs, _ := f.GetStringArray("regexp"); len(exprs) > 0 {
		cfg.Patterns = append(cfg.Patterns, exprs...)
	}
	if filters, _ := f.GetStringArray("filter"); len(filters) > 0 {
		cfg.Filters = append(cfg.Filters, filters...)
	}
	if files, _ := f.GetStringArray("patterns-file"); len(files) > 0 {
		cfg.PatternFiles = append(cfg.PatternFiles, files...)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger from config. Diagnostics go to
// standard error so they never mix with emitted lines.
func newLogger(cfg config.Config) logpkg.Logger {
	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	).With(logpkg.Component("scan"))
}
