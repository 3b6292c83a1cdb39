package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// A missing ingredient section is not an error: extraction reports it
// with an empty block and callers choose a fallback.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available in this build.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates no text source handles a MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoContent indicates a screen capture produced no text at all.
	ErrNoContent = errors.New("no screen content")

	// ErrScreenUnavailable indicates no screen is bound to the scan session.
	ErrScreenUnavailable = errors.New("screen unavailable")

	// ErrScanInProgress indicates a scan is already being processed.
	ErrScanInProgress = errors.New("scan in progress")
)
