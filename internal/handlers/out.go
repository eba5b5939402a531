package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/tuplespace"
)

// Out handles POST /v1/tuples/{name}: the request body becomes the tuple's
// payload, streamed straight into the atomic writer rather than buffered,
// mirroring the teacher's upload.go streaming-threshold idea.
func (h *Handlers) Out(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.PathValue("name")

	var opts []tuplespace.OutOption
	q := r.URL.Query()

	if ttlRaw := q.Get("ttl"); ttlRaw != "" {
		seconds, err := strconv.Atoi(ttlRaw)
		if err != nil || seconds < 0 {
			_, outcome := writeSpaceError(w, tupleErr("out", tuplespace.KindInvalidArgument, errBadTTL))
			h.recordOp(audit.Entry{Op: "out", PatternOrName: name, Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
			return
		}
		opts = append(opts, tuplespace.WithTTL(time.Duration(seconds)*time.Second))
	}
	if q.Has("seq") {
		opts = append(opts, tuplespace.WithSeq())
	}
	if q.Has("rep") {
		opts = append(opts, tuplespace.WithRep())
	}

	if err := h.space.OutStream(name, r.Body, opts...); err != nil {
		_, outcome := writeSpaceError(w, err)
		h.recordOp(audit.Entry{Op: "out", PatternOrName: name, Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
		return
	}

	w.WriteHeader(http.StatusCreated)
	h.recordOp(audit.Entry{
		Op:            "out",
		PatternOrName: name,
		Outcome:       "ok",
		Bytes:         r.ContentLength,
		DurationMS:    time.Since(start).Milliseconds(),
	})
}
