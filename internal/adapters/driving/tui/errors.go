package tui

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("tui: scan service is required")

// ErrMissingEventStream is returned when the event stream is not provided.
var ErrMissingEventStream = errors.New("tui: event stream is required")
