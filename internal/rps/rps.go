// Package rps is rock-paper-scissors played as first to Target round wins.
// Both players pick each round in any order; a pick stays hidden until the
// other side has picked too.
package rps

import (
	"slices"

	"github.com/robalobadob/duelarcade/internal/match"
)

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

// beats maps each choice to the one it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

func (c Choice) Valid() bool {
	_, ok := beats[c]
	return ok
}

// Beats reports whether c defeats other.
func (c Choice) Beats(other Choice) bool { return beats[c] == other }

// DefaultTarget is the number of round wins that takes the match.
const DefaultTarget = 3

var (
	ErrBadChoice     = match.Invalid("choice must be rock, paper or scissors")
	ErrAlreadyChosen = match.Invalid("already chose this round")
	ErrBadTarget     = match.Invalid("target must be between 1 and 99")
)

type Config struct {
	Target int `json:"target,omitempty"`
}

type Pick struct {
	Player match.Player `json:"player"`
	Choice Choice       `json:"choice"`
}

// Round is one resolved exchange. Winner is NoPlayer on a tie.
type Round struct {
	One    Choice       `json:"one"`
	Two    Choice       `json:"two"`
	Winner match.Player `json:"winner"`
}

// Resolve scores a single exchange.
func Resolve(one, two Choice) match.Player {
	switch {
	case one.Beats(two):
		return match.PlayerOne
	case two.Beats(one):
		return match.PlayerTwo
	default:
		return match.NoPlayer
	}
}

type State struct {
	Target int          `json:"target"`
	Wins   [2]int       `json:"wins"`
	Ties   int          `json:"ties"`
	Chosen [2]bool      `json:"chosen"`
	Rounds []Round      `json:"rounds"`
	Status match.Status `json:"status"`
	Winner match.Player `json:"winner"`

	pending [2]Choice
}

func New(cfg Config) (State, error) {
	target := cfg.Target
	if target == 0 {
		target = DefaultTarget
	}
	if target < 1 || target > 99 {
		return State{}, ErrBadTarget
	}
	return State{Target: target, Rounds: []Round{}, Status: match.InProgress}, nil
}

func Validate(s State, p Pick) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !p.Player.Valid():
		return match.ErrUnknownPlayer
	case !p.Choice.Valid():
		return ErrBadChoice
	case s.Chosen[p.Player.Index()]:
		return ErrAlreadyChosen
	}
	return nil
}

func Apply(s State, p Pick) (State, error) {
	if err := Validate(s, p); err != nil {
		return s, err
	}
	return pick(s, p), nil
}

func pick(s State, p Pick) State {
	i := p.Player.Index()
	s.pending[i] = p.Choice
	s.Chosen[i] = true
	if !s.Chosen[0] || !s.Chosen[1] {
		return s
	}

	r := Round{One: s.pending[0], Two: s.pending[1]}
	r.Winner = Resolve(r.One, r.Two)
	s.Rounds = append(slices.Clip(s.Rounds), r)
	s.pending = [2]Choice{}
	s.Chosen = [2]bool{}

	if !r.Winner.Valid() {
		s.Ties++
		return s
	}
	s.Wins[r.Winner.Index()]++
	if s.Wins[r.Winner.Index()] >= s.Target {
		s.Status, s.Winner = match.Won, r.Winner
	}
	return s
}

// LastRound returns the most recently resolved round, if any.
func (s State) LastRound() (Round, bool) {
	if len(s.Rounds) == 0 {
		return Round{}, false
	}
	return s.Rounds[len(s.Rounds)-1], true
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

type Rules struct{}

func (Rules) Validate(s State, p Pick) error { return Validate(s, p) }
func (Rules) Apply(s State, p Pick) State    { return pick(s, p) }
func (Rules) Outcome(s State) match.Outcome  { return s.Outcome() }
