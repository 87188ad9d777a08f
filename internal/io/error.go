package io

import (
	"errors"
	"fmt"
)

var (
	// ErrOpenFailed is the category of errors that occur when the source or
	// the target cannot be opened with the required access mode.
	ErrOpenFailed = errors.New("open failed")

	// ErrOpenSource occurs when the source image cannot be opened read-only.
	ErrOpenSource = fmt.Errorf("source: %w", ErrOpenFailed)

	// ErrOpenTarget occurs when the target device cannot be opened for
	// synchronous writing.
	ErrOpenTarget = fmt.Errorf("target: %w", ErrOpenFailed)

	// ErrTransfer occurs when a transfer call fails in the middle of a copy.
	// Its text is the name of the failing call, so that a wrapped error reads
	// like "sendfile: input/output error".
	ErrTransfer = errors.New("sendfile")
)
