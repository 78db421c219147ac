// Package preflight provides readiness checks for the dataset directories a
// split run reads from and copies into.
//
// Checks run before any directory is created or file copied:
//   - CheckDirectoryAccess confirms the path is a directory with read, write,
//     and search permission.
//   - CheckFreeSpace confirms the filesystem can hold the planned copies.
//
// Each check returns a Result instead of an error so callers can report every
// failing path at once.
package preflight
