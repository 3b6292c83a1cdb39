// Package migrations holds the schema of the scan history database.
//
// Files are named NNN_description.up.sql and NNN_description.down.sql; NNN
// is the schema version recorded in schema_migrations once the up file has
// been applied. Files without a leading version are ignored.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// FS contains the scan_records schema, embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Step is one versioned up migration.
type Step struct {
	Version int
	Name    string
}

// Up lists the versioned up migrations in fsys, oldest first.
func Up(fsys fs.FS) ([]Step, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	var steps []Step
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		steps = append(steps, Step{Version: version, Name: name})
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].Version < steps[j].Version })

	return steps, nil
}

// Latest returns the history schema version this build migrates to.
func Latest() int {
	steps, err := Up(FS)
	if err != nil || len(steps) == 0 {
		return 0
	}
	return steps[len(steps)-1].Version
}
