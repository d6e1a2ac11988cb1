// internal/httpserver/seats.go
//
// Seat tokens. Creating a session returns one HS256 token per seat; the token
// binds a caller to {session, seat} and decides which player an action is
// submitted for.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/duelarcade/internal/match"
)

type seatClaims struct {
	Match string       `json:"match"`
	Seat  match.Player `json:"seat"`
	jwt.RegisteredClaims
}

// Seats carries both tokens of a session.
type Seats struct {
	One string `json:"one"`
	Two string `json:"two"`
}

func (s *Server) signSeat(sessionID string, seat match.Player) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, seatClaims{
		Match: sessionID,
		Seat:  seat,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})
	return t.SignedString(s.secret)
}

func (s *Server) signSeats(sessionID string) (Seats, error) {
	one, err := s.signSeat(sessionID, match.PlayerOne)
	if err != nil {
		return Seats{}, err
	}
	two, err := s.signSeat(sessionID, match.PlayerTwo)
	if err != nil {
		return Seats{}, err
	}
	return Seats{One: one, Two: two}, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

type ctxSeatKey struct{}

// requireSeat enforces a valid seat token for the session in the URL and
// injects the seat into the request context.
func (s *Server) requireSeat(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearer(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "seat token required", "unauthorized")
			return
		}
		claims := &seatClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || !claims.Seat.Valid() {
			writeError(w, http.StatusUnauthorized, "invalid seat token", "unauthorized")
			return
		}
		if claims.Match != chi.URLParam(r, "id") {
			writeError(w, http.StatusForbidden, "seat token belongs to another session", "forbidden")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSeatKey{}, claims.Seat)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func seatFrom(ctx context.Context) match.Player {
	p, _ := ctx.Value(ctxSeatKey{}).(match.Player)
	return p
}
