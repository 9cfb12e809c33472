// Package csvfile implements the roster store interfaces over flat
// delimited text files, one file per collection.
//
// The format is deliberately byte-compatible with the legacy data files:
// fields are split on commas with NO quote handling, so field values must
// not contain the delimiter. Each file starts with a fixed header line.
// Days-of-week inside the courses file use '&' as their separator on both
// load and save (the legacy writer's comma-on-save broke the seven-field
// row format and is treated as a defect). A missing file loads as an empty
// collection. Malformed rows are skipped with a diagnostic; loading
// continues with the remaining rows.
//
// Every store caches its last parse in a read-through cache keyed by file
// path. Saves refresh the cache; Invalidate forces the next Load to re-read
// the file (used by watch mode when a file changes on disk).
package csvfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/zjrosen/registrar/internal/log"
)

const delimiter = ","

// readRows reads a delimited file and returns its data rows, skipping the
// header line. A missing file yields no rows and no error; the collection
// simply starts empty.
func readRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if i == 0 || line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, delimiter))
	}
	return rows, nil
}

// writeRows rewrites the whole file with the given header and rows. There
// is no partial-write guarantee; callers treat a failed write as a stale
// file, never as corrupted in-memory state.
func writeRows(path, header string, rows [][]string) error {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, delimiter))
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // G306: roster data files are plain user data
		log.ErrorErr(log.CatStore, "Failed to write data file", err, "path", path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Debug(log.CatStore, "Wrote data file", "path", path, "rows", len(rows))
	return nil
}
