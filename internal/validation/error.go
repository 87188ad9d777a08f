package validation

import (
	"errors"
	"fmt"

	"github.com/desertwitch/fiw/internal/filesystem"
)

var (
	// ErrPermissionDenied is the category of errors that occur when the
	// effective identity lacks a required access to a path.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWrongFileType is the category of errors that occur when a path is
	// not of the type required for its role.
	ErrWrongFileType = errors.New("wrong file type")
)

var (
	// ErrInvalidSource occurs when the source path could not be resolved.
	ErrInvalidSource = fmt.Errorf("invalid source: %w", filesystem.ErrNotFound)

	// ErrInvalidTarget occurs when the target path could not be resolved.
	ErrInvalidTarget = fmt.Errorf("invalid target: %w", filesystem.ErrNotFound)

	// ErrSourceNotReadable occurs when the source is not readable by the
	// effective identity.
	ErrSourceNotReadable = fmt.Errorf("source is not readable: %w", ErrPermissionDenied)

	// ErrSourceNotFile occurs when the source is not a plain regular file,
	// this includes symbolic links pointing to a regular file.
	ErrSourceNotFile = fmt.Errorf("source is not a file: %w", ErrWrongFileType)

	// ErrTargetNotDevice occurs when the target is neither a character nor a
	// block device. Regular files are never accepted as a target.
	ErrTargetNotDevice = fmt.Errorf("target is not a char or block device: %w", ErrWrongFileType)

	// ErrTargetNotWritable occurs when the target is not writable by the
	// effective identity.
	ErrTargetNotWritable = fmt.Errorf("target is not writable: %w", ErrPermissionDenied)
)
