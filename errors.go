package semmeta

import (
	"github.com/simonhull/semmeta/internal/types"
)

// MissingHeaderError is an alias to types.MissingHeaderError.
// Re-exporting from internal/types to keep the public API in one place.
type MissingHeaderError = types.MissingHeaderError

// AmbiguousHeaderError is an alias to types.AmbiguousHeaderError.
// Re-exporting from internal/types to keep the public API in one place.
type AmbiguousHeaderError = types.AmbiguousHeaderError

// MalformedValueError is an alias to types.MalformedValueError.
// Re-exporting from internal/types to keep the public API in one place.
type MalformedValueError = types.MalformedValueError

// MissingFieldError is an alias to types.MissingFieldError.
// Re-exporting from internal/types to keep the public API in one place.
type MissingFieldError = types.MissingFieldError

// UnsupportedFileError is an alias to types.UnsupportedFileError.
// Re-exporting from internal/types to keep the public API in one place.
type UnsupportedFileError = types.UnsupportedFileError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to keep the public API in one place.
type Warning = types.Warning
