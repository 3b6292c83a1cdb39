package logger

import (
	"bytes"
	"os"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		log     func(string, ...any)
		verbose bool
		want    string
	}{
		{name: "debug verbose", log: Debug, verbose: true, want: "[DEBUG] scan 1\n"},
		{name: "debug quiet", log: Debug, verbose: false, want: ""},
		{name: "info verbose", log: Info, verbose: true, want: "[INFO] scan 1\n"},
		{name: "info quiet", log: Info, verbose: false, want: ""},
		{name: "warn verbose", log: Warn, verbose: true, want: "[WARN] scan 1\n"},
		{name: "warn quiet", log: Warn, verbose: false, want: ""},
		{name: "error verbose", log: Error, verbose: true, want: "[ERROR] scan 1\n"},
		{name: "error quiet", log: Error, verbose: false, want: "[ERROR] scan 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer reset()

			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(tt.verbose)

			tt.log("scan %d", 1)

			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Section("Capture")
	if buf.Len() != 0 {
		t.Errorf("expected no output when not verbose, got %q", buf.String())
	}

	SetVerbose(true)
	Section("Capture")
	if got := buf.String(); got != "\n=== Capture ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "Ingredients: salt", n: 100, want: "Ingredients: salt"},
		{in: "Ingredients: salt", n: 11, want: "Ingredients..."},
		{in: "सामग्री", n: 3, want: "साम..."},
		{in: "abc", n: -1, want: "abc"},
	}

	for _, tt := range tests {
		if got := Preview(tt.in, tt.n); got != tt.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
