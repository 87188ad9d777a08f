package filesystem

import "errors"

// ErrNotFound is an error that occurs when a path cannot be resolved, either
// because it does not exist, it is inaccessible or it is a symbolic link
// pointing to something that cannot be resolved.
var ErrNotFound = errors.New("path not found")
