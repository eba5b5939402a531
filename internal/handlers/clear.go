package handlers

import (
	"net/http"
	"time"

	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/models"
	"github.com/anddsdev/linda/internal/utils"
)

// Clear handles POST /v1/clear: unconditionally empties the tuple space.
func (h *Handlers) Clear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := h.space.Clear(); err != nil {
		_, outcome := writeSpaceError(w, err)
		h.recordOp(audit.Entry{Op: "clear", Outcome: outcome, DurationMS: time.Since(start).Milliseconds()})
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.ClearResponse{Cleared: true})
	h.recordOp(audit.Entry{Op: "clear", Outcome: "ok", DurationMS: time.Since(start).Milliseconds()})
}
