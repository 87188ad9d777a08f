package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Stat wraps around [unix.Stat].
func (*Unix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

// Sendfile wraps around [unix.Sendfile].
func (*Unix) Sendfile(outfd int, infd int, offset *int64, count int) (int, error) {
	return unix.Sendfile(outfd, infd, offset, count)
}

// Geteuid wraps around [unix.Geteuid].
func (*Unix) Geteuid() int {
	return unix.Geteuid()
}

// Getegid wraps around [unix.Getegid].
func (*Unix) Getegid() int {
	return unix.Getegid()
}
