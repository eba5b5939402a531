package handlers

import (
	"net/http"
	"time"

	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/tuplespace"
)

// Read handles GET /v1/tuples/{pattern}?mode=once|wait|N: a non-consuming
// rd. The blocking/timeout modes ride on the request's own cancellation so
// a client disconnect aborts a long wait instead of leaking a goroutine.
func (h *Handlers) Read(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	pattern := r.PathValue("pattern")
	rawMode := r.URL.Query().Get("mode")

	mode, ok := parseMode(rawMode)
	if !ok {
		_, outcome := writeSpaceError(w, tupleErr("rd", tuplespace.KindInvalidArgument, errBadMode))
		h.recordOp(audit.Entry{Op: "rd", PatternOrName: pattern, Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
		return
	}

	data, err := h.space.RdCtx(r.Context(), pattern, mode)
	if err != nil {
		_, outcome := writeSpaceError(w, err)
		h.recordOp(audit.Entry{Op: "rd", PatternOrName: pattern, Mode: modeLabel(rawMode), Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
	h.recordOp(audit.Entry{
		Op:            "rd",
		PatternOrName: pattern,
		Mode:          modeLabel(rawMode),
		Outcome:       "ok",
		Bytes:         int64(len(data)),
		DurationMS:    time.Since(start).Milliseconds(),
	})
}
