// Package scan wires the trawl CLI: the `scan` command that runs the
// single-pass filter and the `patterns` group for compiling predicate sets
// without scanning. Commands resolve their effective configuration in
// precedence order (built-in defaults, config file, TRAWL_* environment,
// explicit flags) and surface every configuration failure before any
// output is produced.
package scan
