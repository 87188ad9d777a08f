// Package validation implements the pre-flight checks that a source and a
// target [filesystem.Classification] need to pass before any data is written.
package validation

import (
	"github.com/desertwitch/fiw/internal/filesystem"
)

// Preflight validates the source and target classifications in a fixed order
// and returns the error of the first check that fails. A nil classification
// stands for a path that could not be resolved.
func Preflight(source, target *filesystem.Classification) error {
	if source == nil {
		return ErrInvalidSource
	}

	if target == nil {
		return ErrInvalidTarget
	}

	if !source.ReadAccess {
		return ErrSourceNotReadable
	}

	if !source.IsFile {
		return ErrSourceNotFile
	}

	if !target.IsBlockDevice && !target.IsCharDevice {
		return ErrTargetNotDevice
	}

	if !target.WriteAccess {
		return ErrTargetNotWritable
	}

	return nil
}
