// Package splitter partitions paired input/target directories into train, val,
// and test subdirectories.
//
// A run validates ratios, checks directory access, locks both directories
// against concurrent runs, lists and pairs the top-level files, shuffles the
// sample indices with a generator seeded from the request, and copies each
// pair into <dir>/<split>/. Errors are tagged with ErrConfiguration,
// ErrPairing, or ErrFileSystem so callers can classify them with errors.Is.
//
// Split directories that already contain entries are refused unless
// Options.Force is set; nothing is ever deleted.
package splitter
