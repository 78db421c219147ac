// Package main hosts the datasplit CLI entrypoint.
//
// The single Cobra command takes the input and target dataset directories,
// checks that both exist, and hands the run to internal/splitter. It owns
// flag parsing, logger construction, progress display, and result rendering
// (the summary line, the dry-run table, or JSON); the partitioning and copying
// live in the internal packages.
package main
