// internal/session/engine.go
//
// Engine erases the state and action types of a match so the registry and
// the HTTP layer can drive any game through one interface.

package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/robalobadob/duelarcade/internal/match"
)

var (
	// ErrMalformedAction wraps JSON decoding failures of an action body.
	ErrMalformedAction = errors.New("malformed action")
	ErrNoMoves         = errors.New("this game does not list legal moves")
)

// Engine is one running match seen from outside.
type Engine interface {
	// Apply decodes raw into the game's action for seat and submits it.
	// The returned state is current whether or not err is nil.
	Apply(seat match.Player, raw json.RawMessage) (any, error)
	// Tick advances a timed game by one second. ok is false when nothing
	// happened (untimed game or game over).
	Tick() (state any, ok bool)
	Timed() bool
	Snapshot() Snapshot
	NewGame() any
	ResetScores() match.Score
	// Moves lists legal moves. query narrows the request where the game
	// needs it (a chess origin square).
	Moves(query string) (any, error)
}

// Snapshot is a consistent read of a match.
type Snapshot struct {
	State   any           `json:"state"`
	Score   match.Score   `json:"score"`
	Outcome match.Outcome `json:"outcome"`
	Games   int           `json:"games"`
}

type decoder[A any] func(seat match.Player, raw json.RawMessage) (A, error)

type lister[S any] func(s S, query string) (any, error)

type adapter[S any, A any] struct {
	m      *match.Match[S, A]
	rules  match.Rules[S, A]
	decode decoder[A]
	moves  lister[S]
}

func adapt[S any, A any](rules match.Rules[S, A], newState func() S, decode decoder[A], moves lister[S]) *adapter[S, A] {
	return &adapter[S, A]{
		m:      match.New(rules, newState),
		rules:  rules,
		decode: decode,
		moves:  moves,
	}
}

func (a *adapter[S, A]) Apply(seat match.Player, raw json.RawMessage) (any, error) {
	act, err := a.decode(seat, raw)
	if err != nil {
		return a.m.State(), err
	}
	return a.m.Apply(act)
}

func (a *adapter[S, A]) Tick() (any, bool) { return a.m.Tick() }
func (a *adapter[S, A]) Timed() bool       { return a.m.Timed() }
func (a *adapter[S, A]) NewGame() any      { return a.m.NewGame() }

func (a *adapter[S, A]) ResetScores() match.Score { return a.m.ResetScores() }

func (a *adapter[S, A]) Snapshot() Snapshot {
	s, score, games := a.m.Snapshot()
	return Snapshot{State: s, Score: score, Outcome: a.rules.Outcome(s), Games: games}
}

func (a *adapter[S, A]) Moves(query string) (any, error) {
	if a.moves == nil {
		return nil, ErrNoMoves
	}
	return a.moves(a.m.State(), query)
}

// decodeAs unmarshals raw into A and stamps the seat onto it. Any player
// named in the body is ignored; the seat token decides who acts.
func decodeAs[A any](stamp func(*A, match.Player)) decoder[A] {
	return func(seat match.Player, raw json.RawMessage) (A, error) {
		var act A
		if err := json.Unmarshal(raw, &act); err != nil {
			return act, fmt.Errorf("%w: %v", ErrMalformedAction, err)
		}
		stamp(&act, seat)
		return act, nil
	}
}
