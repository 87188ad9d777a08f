package configuration

import "errors"

// ErrInvalidLogLevel occurs when a configured log level is not one of the
// known [slog.Level] names.
var ErrInvalidLogLevel = errors.New("invalid log level")
