package splitter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrPairing       = errors.New("pairing error")
	ErrFileSystem    = errors.New("filesystem error")

	// ErrAlreadySplit and ErrLocked are filesystem errors; errors.Is matches
	// both the specific marker and ErrFileSystem.
	ErrAlreadySplit = fmt.Errorf("%w: split directories already contain entries", ErrFileSystem)
	ErrLocked       = fmt.Errorf("%w: another split is running on this directory", ErrFileSystem)
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrFileSystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "split failure"
	}
	return strings.Join(parts, ": ")
}
