// Package display renders resolver output for the terminal.
//
// It covers the three user-facing surfaces of the CLI: the match list on
// stdout (plain text for pipelines, or JSON/YAML envelopes), the diagnostic
// report on stderr when nothing matched, and per-strategy progress lines in
// verbose mode. ANSI colour is opt-in per call so callers can gate it on
// TTY detection.
package display
