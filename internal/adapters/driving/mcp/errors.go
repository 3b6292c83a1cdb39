// Package mcp provides an MCP (Model Context Protocol) server adapter for eatwise.
// It lets AI assistants extract ingredient lists and drive scans.
package mcp

import "errors"

// ErrMissingExtractService is returned when the extract service is not provided.
var ErrMissingExtractService = errors.New("mcp: extract service is required")

// ErrScanUnavailable is returned by scan tools when no scan service is configured.
var ErrScanUnavailable = errors.New("mcp: scan service is not configured")
