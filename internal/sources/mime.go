package sources

import (
	"net/http"
	"path/filepath"
	"strings"
)

// extensionTypes maps file extensions to the MIME types the sources handle.
var extensionTypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "application/xhtml+xml",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".png":      "image/png",
	".jpg":      "image/jpeg",
	".jpeg":     "image/jpeg",
	".gif":      "image/gif",
	".bmp":      "image/bmp",
	".tif":      "image/tiff",
	".tiff":     "image/tiff",
	".webp":     "image/webp",
}

// DetectMIMEType guesses the MIME type of a capture from its file name,
// falling back to content sniffing. Unknown content is treated as plain text.
func DetectMIMEType(name string, content []byte) string {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}

	if len(content) == 0 {
		return "text/plain"
	}

	detected := BaseMIMEType(http.DetectContentType(content))
	if detected == "application/octet-stream" {
		return "text/plain"
	}
	return detected
}
