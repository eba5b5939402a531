package server

import (
	"net/http"

	"github.com/anddsdev/linda/internal/handlers"
)

type Router struct {
	server  *Server
	handler http.Handler
}

func NewRouter(server *Server) *Router {
	r := &Router{
		server: server,
	}

	r.setupRoutes()

	return r
}

func (r *Router) setupRoutes() {
	mux := http.NewServeMux()

	h := handlers.NewHandlers(r.server.Space(), r.server.Audit(), r.server.Config(), r.server.Logger())

	mux.HandleFunc("GET /health", r.withMiddleware(h.HealthCheck))
	mux.HandleFunc("POST /v1/tuples/{name}", r.withMiddleware(h.Out))
	mux.HandleFunc("GET /v1/tuples/{pattern}", r.withMiddleware(h.Read))
	mux.HandleFunc("DELETE /v1/tuples/{pattern}", r.withMiddleware(h.Consume))
	mux.HandleFunc("GET /v1/tuples", r.withMiddleware(h.List))
	mux.HandleFunc("POST /v1/clear", r.withMiddleware(h.Clear))

	r.handler = mux
}

func (r *Router) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return r.cors(r.logging(r.recovery(next)))
}
