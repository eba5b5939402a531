package handlers

import (
	"net/http"
	"time"

	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/tuplespace"
)

// Consume handles DELETE /v1/tuples/{pattern}?mode=once|wait|N: an inp that
// removes the matched tuple. Shape mirrors Read exactly; only the engine
// call and the audit op name differ.
func (h *Handlers) Consume(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	pattern := r.PathValue("pattern")
	rawMode := r.URL.Query().Get("mode")

	mode, ok := parseMode(rawMode)
	if !ok {
		_, outcome := writeSpaceError(w, tupleErr("inp", tuplespace.KindInvalidArgument, errBadMode))
		h.recordOp(audit.Entry{Op: "inp", PatternOrName: pattern, Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
		return
	}

	data, err := h.space.InpCtx(r.Context(), pattern, mode)
	if err != nil {
		_, outcome := writeSpaceError(w, err)
		h.recordOp(audit.Entry{Op: "inp", PatternOrName: pattern, Mode: modeLabel(rawMode), Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
	h.recordOp(audit.Entry{
		Op:            "inp",
		PatternOrName: pattern,
		Mode:          modeLabel(rawMode),
		Outcome:       "ok",
		Bytes:         int64(len(data)),
		DurationMS:    time.Since(start).Milliseconds(),
	})
}
