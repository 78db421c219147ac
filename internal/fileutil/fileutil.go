package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// CopyFile duplicates src into dst, giving dst the permission bits of src.
// An existing dst is truncated. It returns the number of bytes written.
func CopyFile(src, dst string) (int64, error) {
	return copyFile(src, dst, false)
}

// CopyFileVerified copies like CopyFile, then reads dst back from disk and
// compares its size and SHA256 with the source bytes. Removes dst on mismatch
// or on a failed copy.
func CopyFileVerified(src, dst string) (int64, error) {
	return copyFile(src, dst, true)
}

func copyFile(src, dst string, verify bool) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("copy %s: not a regular file", src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = out.Close()
	}()
	// OpenFile only applies the mode on create.
	if err := out.Chmod(info.Mode().Perm()); err != nil {
		return 0, err
	}

	var reader io.Reader = in
	srcHasher := sha256.New()
	if verify {
		reader = io.TeeReader(in, srcHasher)
	}

	written, err := io.Copy(out, reader)
	if err != nil {
		if verify {
			_ = out.Close()
			_ = os.Remove(dst)
		}
		return written, err
	}
	if err := out.Close(); err != nil {
		return written, err
	}
	if !verify {
		return written, nil
	}
	if written != info.Size() {
		_ = os.Remove(dst)
		return written, fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", info.Size(), written)
	}
	return written, verifyDestination(dst, written, srcHasher.Sum(nil))
}

// verifyDestination re-reads dst from disk and compares it with the expected
// size and SHA256. A mismatching dst is removed.
func verifyDestination(dst string, size int64, want []byte) error {
	f, err := os.Open(dst)
	if err != nil {
		return fmt.Errorf("reopen destination: %w", err)
	}
	hasher := sha256.New()
	n, err := io.Copy(hasher, f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("read back destination: %w", err)
	}
	if n != size {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: expected %d bytes, destination has %d bytes", size, n)
	}
	if !bytes.Equal(hasher.Sum(nil), want) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: %s differs from its source", dst)
	}
	return nil
}
