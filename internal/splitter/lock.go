package splitter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"
)

// dirLock holds one advisory lock per dataset directory. Lock files live in
// lockDir, never inside the datasets, where they would be listed as samples.
type dirLock struct {
	locks []*flock.Flock
}

func lockPath(lockDir, dir string) string {
	sum := sha256.Sum256([]byte(dir))
	return filepath.Join(lockDir, "datasplit-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquireDirLocks takes a non-blocking exclusive lock for each distinct dir.
// On failure every lock already taken is released.
func acquireDirLocks(lockDir string, dirs ...string) (*dirLock, error) {
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	unique := slices.Clone(dirs)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	held := &dirLock{}
	for _, dir := range unique {
		lock := flock.New(lockPath(lockDir, dir))
		ok, err := lock.TryLock()
		if err != nil {
			held.release()
			return nil, Wrap(ErrFileSystem, "acquire lock", lock.Path(), err)
		}
		if !ok {
			held.release()
			return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
		}
		held.locks = append(held.locks, lock)
	}
	return held, nil
}

func (l *dirLock) release() error {
	if l == nil {
		return nil
	}
	var firstErr error
	for _, lock := range l.locks {
		if err := lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.locks = nil
	return firstErr
}
