package server

import (
	"net/http"

	"github.com/anddsdev/linda/config"
	"github.com/anddsdev/linda/internal/audit"
	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/rs/zerolog"
)

// Server wires a Space and an optional audit Store behind an http.Handler.
// Grounded on the teacher's Server{cfg, router, fileService}; fileService is
// replaced by the two things the HTTP frontend actually owns per
// SPEC_FULL.md §6 — the engine handle and the audit trail.
type Server struct {
	cfg    *config.Config
	router *Router
	space  *tuplespace.Space
	audit  *audit.Store
	log    zerolog.Logger
}

func NewServer(cfg *config.Config, space *tuplespace.Space, store *audit.Store, log zerolog.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		space: space,
		audit: store,
		log:   log,
	}

	s.router = NewRouter(s)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router.handler
}

func (s *Server) Config() *config.Config {
	return s.cfg
}

func (s *Server) Space() *tuplespace.Space {
	return s.space
}

func (s *Server) Audit() *audit.Store {
	return s.audit
}

func (s *Server) Logger() zerolog.Logger {
	return s.log
}
