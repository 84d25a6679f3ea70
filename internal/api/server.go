// Package api wires the HTTP surface of the ledger: routing, request
// decoding, auth middleware and JSON responses.
package api

import (
	"net/http"

	"github.com/linoMlv/abacus/internal/auth"
	"github.com/linoMlv/abacus/internal/middleware"
	"github.com/linoMlv/abacus/internal/observability"
	"github.com/linoMlv/abacus/internal/service"
	"github.com/linoMlv/abacus/internal/storage"
)

// Server holds the services and cross-cutting pieces the handlers need.
type Server struct {
	authService   *service.AuthService
	ledgerService *service.LedgerService
	jwtManager    *auth.JWTManager
	store         storage.Store
	metrics       *observability.Metrics

	// StaticDir, when non-empty, serves a frontend build for non-API paths.
	StaticDir string

	// CORSOrigins are the browser origins allowed to call the API with
	// credentials.
	CORSOrigins []string
}

// NewServer creates the API server.
func NewServer(
	authService *service.AuthService,
	ledgerService *service.LedgerService,
	jwtManager *auth.JWTManager,
	store storage.Store,
	metrics *observability.Metrics,
) *Server {
	return &Server{
		authService:   authService,
		ledgerService: ledgerService,
		jwtManager:    jwtManager,
		store:         store,
		metrics:       metrics,
	}
}

// Handler builds the full middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(s.jwtManager, s.store, middleware.ErrorWriter(WriteError))
	authed := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.Handle("GET /api/me", authed(s.handleMe))
	mux.Handle("GET /api/associations/{id}", authed(s.handleGetAssociation))

	mux.Handle("POST /api/balances_add", authed(s.handleAddBalance))
	mux.Handle("PUT /api/balances/{id}", authed(s.handleUpdateBalance))
	mux.Handle("DELETE /api/balances/{id}", authed(s.handleDeleteBalance))

	mux.Handle("POST /api/operations", authed(s.handleCreateOperation))
	mux.Handle("PUT /api/operations/{id}", authed(s.handleUpdateOperation))
	mux.Handle("DELETE /api/operations/{id}", authed(s.handleDeleteOperation))

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	if s.StaticDir != "" {
		mux.Handle("/", s.staticHandler())
	}

	var handler http.Handler = mux
	handler = middleware.CORS(s.CORSOrigins, handler)
	handler = s.metrics.Instrument(handler)
	handler = middleware.Logging(handler)
	return handler
}

// handleHealth reports liveness; no auth required.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
