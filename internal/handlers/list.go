package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/models"
	"github.com/anddsdev/linda/internal/utils"
)

// List handles GET /v1/tuples?pattern=...: a census of distinct names
// matching pattern (default "*") and how many live tuples each has.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		pattern = "*"
	}

	lines, err := h.space.Ls(pattern)
	if err != nil {
		_, outcome := writeSpaceError(w, err)
		h.recordOp(audit.Entry{Op: "ls", PatternOrName: pattern, Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
		return
	}

	entries := make([]models.ListEntry, 0, len(lines))
	for _, line := range lines {
		count, name, ok := splitCountedName(line)
		if !ok {
			continue
		}
		entries = append(entries, models.ListEntry{Name: name, Count: count})
	}

	utils.WriteJSON(w, http.StatusOK, models.ListResponse{Entries: entries})
	h.recordOp(audit.Entry{
		Op:            "ls",
		PatternOrName: pattern,
		Outcome:       "ok",
		DurationMS:    time.Since(start).Milliseconds(),
	})
}

// splitCountedName parses one "<count> <name>" line from Space.Ls.
func splitCountedName(line string) (count int, name string, ok bool) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return 0, "", false
	}
	n, err := strconv.Atoi(line[:i])
	if err != nil {
		return 0, "", false
	}
	return n, line[i+1:], true
}
