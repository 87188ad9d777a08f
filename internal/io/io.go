// Package io implements the opening of the source image and the target device
// and the zero-copy transfer between both of them.
package io

import (
	"os"
)

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

type unixProvider interface {
	Sendfile(outfd int, infd int, offset *int64, count int) (int, error)
}

type progressReporter interface {
	Update(written uint64, total uint64)
}

// Handler is the principal implementation for the IO operations.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	reporter    progressReporter
}

// NewHandler returns a pointer to a new IO [Handler]. The reporter receives
// the running byte count after every chunk that moved data.
func NewHandler(osHandler osProvider, unixHandler unixProvider, reporter progressReporter) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
		reporter:    reporter,
	}
}
