// Package filesystem implements the resolution of filesystem metadata into a
// [Classification], which describes the type of a path and the access the
// current effective identity has to it.
package filesystem

import (
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
}

type identityProvider interface {
	Geteuid() int
	Getegid() int
}

// Identity is the effective user and group that permissions are evaluated
// against. It is passed explicitly into the [Handler], instead of being looked
// up from the process for every resolution.
type Identity struct {
	UID uint32
	GID uint32
}

// CurrentIdentity returns the effective [Identity] of the running process.
func CurrentIdentity(idHandler identityProvider) Identity {
	return Identity{
		UID: uint32(idHandler.Geteuid()), //nolint:gosec
		GID: uint32(idHandler.Getegid()), //nolint:gosec
	}
}

// Handler is the principal implementation for the filesystem metadata
// resolution.
type Handler struct {
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(unixHandler unixProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
	}
}
