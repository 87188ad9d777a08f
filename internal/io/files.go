package io

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// OpenSource opens the source image read-only.
func (i *Handler) OpenSource(path string) (*os.File, error) {
	f, err := i.osHandler.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("(io-open) %w: %w", ErrOpenSource, err)
	}

	return f, nil
}

// OpenTarget opens the target device write-only with synchronous writes, so
// that every write is committed to the device before it returns.
func (i *Handler) OpenTarget(path string) (*os.File, error) {
	f, err := i.osHandler.OpenFile(path, os.O_WRONLY|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("(io-open) %w: %w", ErrOpenTarget, err)
	}

	return f, nil
}

// Fingerprint returns the hex encoded BLAKE3 digest of the file at path. It
// reads through its own descriptor and leaves any opened source untouched.
func (i *Handler) Fingerprint(path string) (string, error) {
	f, err := i.osHandler.Open(path)
	if err != nil {
		return "", fmt.Errorf("(io-digest) failed to open: %w", err)
	}
	defer f.Close()

	hasher := blake3.New()

	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("(io-digest) failed to read: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
