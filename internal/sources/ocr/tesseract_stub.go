//go:build !tesseract

package ocr

import "github.com/custodia-labs/eatwise-cli/internal/core/domain"

// Available reports whether OCR is compiled in.
const Available = false

// recognize is a stub for builds without Tesseract.
func recognize(_ []byte, _ []string) (string, error) {
	return "", domain.ErrNotImplemented
}
