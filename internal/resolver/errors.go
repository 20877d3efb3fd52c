package resolver

import "errors"

// Sentinel errors returned by Resolve. Callers discriminate with errors.Is.
var (
	// ErrInvalidInput is returned for empty or whitespace-only input.
	ErrInvalidInput = errors.New("input path is empty")

	// ErrBadExtension is returned when the configured extension contains
	// path separators or glob metacharacters.
	ErrBadExtension = errors.New("invalid extension")

	// ErrAnchorNotFound is returned by the diagnostic phase when no
	// existing ancestor directory can be found for the input.
	ErrAnchorNotFound = errors.New("no existing ancestor directory")
)
