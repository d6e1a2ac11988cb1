// internal/httpserver/routes_sessions.go
//
// Session routes:
//   - POST   /sessions                    → create {game, config}; returns seats
//   - GET    /sessions                    → list
//   - GET    /sessions/{id}               → view (state, score, outcome)
//   - GET    /sessions/{id}/moves         → legal moves (?from=e2, ?seat=one)
//   - POST   /sessions/{id}/actions       → submit an action (seat token)
//   - POST   /sessions/{id}/new-game      → fresh board, scores kept (seat token)
//   - POST   /sessions/{id}/reset-scores  → scores cleared, board kept (seat token)
//   - DELETE /sessions/{id}               → discard, clock stopped (seat token)

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/duelarcade/internal/session"
)

type createReq struct {
	Game   string          `json:"game"`
	Config json.RawMessage `json:"config"`
}

type createRes struct {
	session.View
	Seats Seats `json:"seats"`
}

func (s *Server) mountSessions(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.withSession(s.handleView))
		r.Get("/{id}/moves", s.withSession(s.handleMoves))

		r.Group(func(r chi.Router) {
			r.Use(s.requireSeat)
			r.Post("/{id}/actions", s.withSession(s.handleAction))
			r.Post("/{id}/new-game", s.withSession(s.handleNewGame))
			r.Post("/{id}/reset-scores", s.withSession(s.handleResetScores))
			r.Delete("/{id}", s.handleDelete)
		})
	})
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// withSession resolves {id} or replies 404.
func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.reg.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			fail(w, err, nil)
			return
		}
		h(w, r, sess)
	}
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "bad_request")
		return
	}
	sess, err := s.reg.Create(r.Context(), req.Game, req.Config)
	if err != nil {
		// Anything the engines refuse at creation is a config problem.
		code, kind := statusFor(err)
		if code != http.StatusBadRequest {
			kind = "bad_config"
		}
		writeError(w, http.StatusBadRequest, err.Error(), kind)
		return
	}
	seats, err := s.signSeats(sess.ID)
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID).Msg("sign seats")
		_ = s.reg.Delete(r.Context(), sess.ID)
		writeError(w, http.StatusInternalServerError, "sign_failed", "internal")
		return
	}
	writeJSON(w, http.StatusCreated, createRes{View: sess.View(), Seats: seats})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	all, err := s.reg.List(r.Context())
	if err != nil {
		fail(w, err, nil)
		return
	}
	out := make([]session.View, len(all))
	for i, sess := range all {
		out[i] = sess.View()
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, sess.View())
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	q := r.URL.Query().Get("from")
	if q == "" {
		q = r.URL.Query().Get("seat")
	}
	moves, err := sess.Moves(q)
	if err != nil {
		kind := "bad_request"
		if errors.Is(err, session.ErrNoMoves) {
			kind = "no_moves"
		}
		writeError(w, http.StatusBadRequest, err.Error(), kind)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"moves": moves})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "bad_request")
		return
	}
	state, err := sess.Apply(seatFrom(r.Context()), raw)
	if err != nil {
		fail(w, err, state)
		return
	}
	writeJSON(w, http.StatusOK, sess.View())
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, sess.NewGame())
}

func (s *Server) handleResetScores(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, sess.ResetScores())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.reg.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Warn().Err(err).Msg("delete session")
		}
		fail(w, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
