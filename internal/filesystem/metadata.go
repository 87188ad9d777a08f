package filesystem

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sys/unix"
)

// Classification describes a path as resolved by [Handler.Resolve]. Apart
// from IsSymlink, all fields describe the resolved target of a symbolic link.
type Classification struct {
	Size          uint64
	IsFile        bool
	IsSymlink     bool
	IsCharDevice  bool
	IsBlockDevice bool
	IsDirectory   bool
	ExecAccess    bool
	ReadAccess    bool
	WriteAccess   bool
	ModifiedAt    time.Time
}

// Resolve classifies a path and evaluates the access of the given [Identity]
// to it. A symbolic link is followed for everything but IsSymlink, and is
// never reported as a plain file. [ErrNotFound] is returned when either the
// path or the target of a symbolic link cannot be stat'ed.
func (f *Handler) Resolve(path string, id Identity) (*Classification, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-resolve) failed to lstat: %w: %w", ErrNotFound, err)
	}

	isSymlink := (stat.Mode & unix.S_IFMT) == unix.S_IFLNK

	if isSymlink {
		if err := f.unixHandler.Stat(path, &stat); err != nil {
			return nil, fmt.Errorf("(fs-resolve) failed to stat symlink target: %w: %w", ErrNotFound, err)
		}
	}

	c := classify(&stat, id)
	if isSymlink {
		c.IsSymlink = true
		c.IsFile = false
	}

	slog.Debug("Resolved path:",
		"path", path,
		"file", c.IsFile,
		"symlink", c.IsSymlink,
		"dir", c.IsDirectory,
		"chr", c.IsCharDevice,
		"blk", c.IsBlockDevice,
		"r", c.ReadAccess,
		"w", c.WriteAccess,
		"x", c.ExecAccess,
		"size", c.Size,
	)

	return c, nil
}

func classify(stat *unix.Stat_t, id Identity) *Classification {
	c := &Classification{
		Size:       handleSize(stat.Size),
		IsFile:     true,
		ModifiedAt: time.Unix(stat.Mtim.Unix()),
	}

	switch stat.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		c.IsDirectory = true
		c.IsFile = false
	case unix.S_IFCHR:
		c.IsCharDevice = true
		c.IsFile = false
	case unix.S_IFBLK:
		c.IsBlockDevice = true
		c.IsFile = false
	}

	perms := permsOf(stat)

	c.ReadAccess = perms.canRead(id)
	c.WriteAccess = perms.canWrite(id)
	c.ExecAccess = perms.canExec(id)

	return c
}

func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}
