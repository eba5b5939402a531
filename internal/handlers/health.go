package handlers

import (
	"net/http"

	"github.com/anddsdev/linda/internal/utils"
)

// HealthCheck reports whether the space directory is reachable, kept close
// to the teacher's bare {"status": "ok"} liveness probe.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if _, err := h.space.Ls("*"); err != nil {
		status = "degraded"
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": status,
		"dir":    h.space.Dir(),
	})
}
