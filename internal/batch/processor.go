// Package batch reads query files for non-interactive runs.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// QueryEntry is one query read from a batch file
type QueryEntry struct {
	Line  int // 1-based line number in the file
	Query string
}

// ReadBatchFile reads queries from a file, one per line.
// Supports:
// - "de: Hello" or "en -> de: Hello" per line
// - blank lines and lines starting with '#' are skipped
// Surrounding whitespace is trimmed; the query itself is not validated here.
func ReadBatchFile(filename string) ([]QueryEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseBatch(string(content)), nil
}

// ParseBatch splits batch file content into query entries
func ParseBatch(content string) []QueryEntry {
	var entries []QueryEntry

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, QueryEntry{Line: i + 1, Query: line})
	}

	return entries
}
