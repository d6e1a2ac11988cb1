// internal/httpserver/server.go
//
// HTTP surface for the arcade. A presentation layer creates a session, keeps
// the two seat tokens, and submits actions on behalf of whichever seat is
// playing locally or remotely.
//
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", "/games".
//   - Session endpoints under /sessions (see routes_sessions.go).
//   - Mapping engine errors onto status codes with {"error","kind"} bodies.
//
// Notes:
//   - CORS allows a single configured origin.
//   - Action, new-game, reset and delete routes require a seat token.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/duelarcade/internal/catalog"
	"github.com/robalobadob/duelarcade/internal/match"
	"github.com/robalobadob/duelarcade/internal/session"
)

type Options struct {
	// ClientOrigin is echoed in Access-Control-Allow-Origin.
	ClientOrigin string

	// SeatSecret signs seat tokens (HS256).
	SeatSecret string
}

// Server bundles the router and the session registry.
type Server struct {
	r      *chi.Mux
	reg    *session.Registry
	secret []byte
}

// New constructs a Server, installs middleware, and registers routes.
func New(reg *session.Registry, opt Options) *Server {
	s := &Server{r: chi.NewRouter(), reg: reg, secret: []byte(opt.SeatSecret)}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opt.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "duelarcade",
			"endpoints": []string{"/health", "/games", "POST /sessions", "/sessions/{id}"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.reg.Dictionary().Len()})
	})

	// --- catalog ---
	s.r.Get("/games", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.All())
	})
	s.r.Get("/games/{gameID}", func(w http.ResponseWriter, r *http.Request) {
		g, ok := catalog.Lookup(chi.URLParam(r, "gameID"))
		if !ok {
			writeError(w, http.StatusNotFound, "unknown game", "not_found")
			return
		}
		writeJSON(w, http.StatusOK, g)
	})

	s.mountSessions(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no route for "+r.URL.Path, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- replies -----------------------------------

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`

	// State is the unchanged state after a refused action.
	State any `json:"state,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	writeJSON(w, status, errorBody{Error: msg, Kind: kind})
}

// statusFor maps an error to a status code and kind.
//
//	invalid action        → 409
//	validation rejection  → 422
//	unknown session       → 404
//	malformed body/config → 400
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, session.ErrMalformedAction):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, session.ErrBadConfig):
		return http.StatusBadRequest, "bad_config"
	case errors.Is(err, session.ErrUnknownGame):
		return http.StatusBadRequest, "unknown_game"
	case match.IsRejected(err):
		return http.StatusUnprocessableEntity, match.ValidationRejection.String()
	case match.IsInvalid(err):
		return http.StatusConflict, match.InvalidAction.String()
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func fail(w http.ResponseWriter, err error, state any) {
	code, kind := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, code, errorBody{Error: err.Error(), Kind: kind, State: state})
}
