// Package log provides trawl's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context. Internally it is backed by Go's
// standard library slog via a custom handler that preserves the
// formatter/outputs pipeline, so code written against the facade and code
// written against slog share one destination and format.
//
// Entries go to standard error: trawl's standard output carries filtered
// data, and the two streams must never mix.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("scanner"))
//	l.Warn("skipping undecodable record", log.Int64("record", 7))
//
// # Interop
//
// To route the standard library's global logger through the facade, call
// RedirectStdLog once at startup.
package log
