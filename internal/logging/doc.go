// Package logging assembles structured slog loggers for datasplit.
//
// It owns the console and JSON handlers, parses textual levels, and exposes
// attribute helpers plus the standard field keys (component, run_id, split) so
// every component emits records with the same shape. Loggers write to stderr by
// default because stdout carries command results.
package logging
