package handlers

import (
	"time"

	"github.com/anddsdev/linda/config"
	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/rs/zerolog"
)

// Handlers holds everything an HTTP route needs to turn a request into a
// Space operation: the engine handle itself, config, the audit store for
// recording what happened, and a logger.
//
// Grounded on the teacher's Handlers{fileService, cfg} struct — fileService
// is replaced by the tuplespace.Space it orchestrated in spirit.
type Handlers struct {
	space *tuplespace.Space
	audit *audit.Store
	cfg   *config.Config
	log   zerolog.Logger
}

func NewHandlers(space *tuplespace.Space, store *audit.Store, cfg *config.Config, log zerolog.Logger) *Handlers {
	return &Handlers{space: space, audit: store, cfg: cfg, log: log}
}

// recordOp writes e to the audit store if one is configured, logging
// (never propagating) a write failure — see internal/audit's own doc
// comment for why this is best-effort.
func (h *Handlers) recordOp(e audit.Entry) {
	if h.audit == nil {
		return
	}
	e.CreatedAt = time.Now()
	if err := h.audit.Record(e); err != nil {
		h.log.Warn().Err(err).Str("op", e.Op).Msg("audit: failed to record operation")
	}
}
