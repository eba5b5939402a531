package tuplespace

import (
	"os"
	"sort"
	"strings"
	"time"
)

// candidate is a matcher hit: enough information for the poll loop to
// attempt a read, and for ls to group by logical name.
type candidate struct {
	filename string
	name     string
}

// match enumerates dir for entries whose basename has the given prefix,
// excluding engine-private (dot-prefixed) files and anything whose encoded
// expiry is in the past. Results are sorted lexicographically ascending on
// filename, which — because seq is fixed-width and numeric — coincides with
// FIFO insertion order for tuples published with the same name under
// WithSeq.
//
// Grounded on internal/repository/file_repository.go's filter-then-sort
// shape (there: SQL ORDER BY; here: sort.Slice over os.ReadDir, since the
// engine keeps no database).
func match(dir, pattern string, now time.Time) ([]candidate, error) {
	prefix := strings.TrimSuffix(pattern, "*")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	nowUnix := now.Unix()
	var out []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		t, ok := parseTuple(name)
		if !ok {
			continue
		}
		if t.hasExp && nowUnix >= t.expiry {
			continue
		}
		out = append(out, candidate{filename: t.filename, name: t.name})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].filename < out[j].filename })
	return out, nil
}
