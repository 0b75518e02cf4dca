// Package scanner implements the single-pass match-and-context engine.
//
// # Overview
//
// A Scanner reads records from a lineio.Source one at a time and decides,
// per line, whether to write it to the lineio.Sink. Three outcomes exist:
// the line is owed as trailing context for an earlier match and is emitted
// unconditionally; the line matches the pattern set, which flushes the
// buffered before-context, emits the line, and arms the trailing window; or
// the line is buffered as candidate before-context, displacing the oldest
// candidate when the buffer is full.
//
// The trailing window takes precedence over match evaluation: while it is
// open, incoming lines are emitted as context without being tested, so a
// match inside the window neither flushes the buffer nor restarts the
// window. The window is re-armed only when a match is recognized outside
// it.
//
// Candidate lines still buffered when the input ends belong to no match
// window and are discarded.
package scanner
