// Package tictactoe is the 3×3 noughts-and-crosses engine. X is the first
// seat and always opens.
package tictactoe

import (
	"encoding/json"

	"github.com/robalobadob/duelarcade/internal/match"
)

// Mark is the occupant of a cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

func (m Mark) MarshalJSON() ([]byte, error) {
	if m == Empty {
		return []byte("null"), nil
	}
	return json.Marshal(m.String())
}

// MarkOf returns the mark placed by p.
func MarkOf(p match.Player) Mark {
	switch p {
	case match.PlayerOne:
		return X
	case match.PlayerTwo:
		return O
	default:
		return Empty
	}
}

func (m Mark) player() match.Player {
	switch m {
	case X:
		return match.PlayerOne
	case O:
		return match.PlayerTwo
	default:
		return match.NoPlayer
	}
}

// Lines are the eight winning index triples: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var (
	ErrCellOutOfRange = match.Invalid("cell must be between 0 and 8")
	ErrCellTaken      = match.Invalid("cell is already taken")
)

type Board [9]Mark

// Place puts the acting player's mark on Cell (row-major 0..8).
type Place struct {
	Player match.Player `json:"player"`
	Cell   int          `json:"cell"`
}

type State struct {
	Board  Board        `json:"board"`
	Turn   match.Player `json:"turn"`
	Status match.Status `json:"status"`
	Winner match.Player `json:"winner"`
	Line   []int        `json:"line,omitempty"`
}

func New() State {
	return State{Turn: match.PlayerOne, Status: match.InProgress}
}

// Classify looks for a completed line. It returns the winning mark and line,
// or Empty and whether the board is full.
func Classify(b Board) (winner Mark, line []int, full bool) {
	for _, l := range Lines {
		a := b[l[0]]
		if a != Empty && a == b[l[1]] && a == b[l[2]] {
			return a, []int{l[0], l[1], l[2]}, false
		}
	}
	for _, m := range b {
		if m == Empty {
			return Empty, nil, false
		}
	}
	return Empty, nil, true
}

func Validate(s State, a Place) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !a.Player.Valid():
		return match.ErrUnknownPlayer
	case a.Player != s.Turn:
		return match.ErrNotYourTurn
	case a.Cell < 0 || a.Cell >= len(s.Board):
		return ErrCellOutOfRange
	case s.Board[a.Cell] != Empty:
		return ErrCellTaken
	}
	return nil
}

func Apply(s State, a Place) (State, error) {
	if err := Validate(s, a); err != nil {
		return s, err
	}
	return place(s, a), nil
}

func place(s State, a Place) State {
	s.Board[a.Cell] = MarkOf(a.Player)
	winner, line, full := Classify(s.Board)
	switch {
	case winner != Empty:
		s.Status, s.Winner, s.Line = match.Won, winner.player(), line
	case full:
		s.Status = match.Draw
	default:
		s.Turn = s.Turn.Other()
	}
	return s
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

type Rules struct{}

func (Rules) Validate(s State, a Place) error { return Validate(s, a) }
func (Rules) Apply(s State, a Place) State    { return place(s, a) }
func (Rules) Outcome(s State) match.Outcome   { return s.Outcome() }
