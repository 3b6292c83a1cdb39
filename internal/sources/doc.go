// Package sources provides the text source registry and MIME detection.
// Each subpackage implements driven.TextSource for one family of formats
// and knows how to turn captured bytes into flat screen text.
//
// Sources are registered with the Registry at startup.
package sources
