// internal/connectfour/connectfour.go
//
// Connect-four on a 6×7 grid with gravity. After each drop the engine walks
// the four line axes forward and backward from the new disc; four in a row
// wins, a full board with no line is a draw.

package connectfour

import (
	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/match"
)

const (
	Rows   = 6
	Cols   = 7
	Needed = 4
)

var (
	ErrColumnOutOfRange = match.Invalid("column must be between 0 and 6")
	ErrColumnFull       = match.Invalid("column is full")
)

// Board is indexed [row][col]; row 0 is the top. Zero cells are empty.
type Board [Rows][Cols]match.Player

// Drop lets a disc fall into Column.
type Drop struct {
	Player match.Player `json:"player"`
	Column int          `json:"column"`
}

type State struct {
	Board        Board         `json:"board"`
	Turn         match.Player  `json:"turn"`
	Status       match.Status  `json:"status"`
	Winner       match.Player  `json:"winner"`
	WinningCells []grid.Square `json:"winningCells,omitempty"`
	LastDrop     *grid.Square  `json:"lastDrop,omitempty"`
}

func New() State {
	return State{Turn: match.PlayerOne, Status: match.InProgress}
}

// landing returns the row a disc dropped into col comes to rest on, or -1.
func (b *Board) landing(col int) int {
	for row := Rows - 1; row >= 0; row-- {
		if b[row][col] == match.NoPlayer {
			return row
		}
	}
	return -1
}

func (b *Board) full() bool {
	for col := 0; col < Cols; col++ {
		if b[0][col] == match.NoPlayer {
			return false
		}
	}
	return true
}

// WinningLine returns the first Needed cells of the longest-axis run through
// at, ordered from the backward end, or nil when no run is long enough.
func WinningLine(b Board, at grid.Square) []grid.Square {
	owner := b[at.Row][at.Col]
	if owner == match.NoPlayer {
		return nil
	}
	same := func(s grid.Square) bool { return b[s.Row][s.Col] == owner }
	for _, axis := range grid.LineAxes {
		line := grid.Line(at, axis, Rows, Cols, Needed-1, same)
		if len(line) >= Needed {
			return line[:Needed]
		}
	}
	return nil
}

func Validate(s State, d Drop) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !d.Player.Valid():
		return match.ErrUnknownPlayer
	case d.Player != s.Turn:
		return match.ErrNotYourTurn
	case d.Column < 0 || d.Column >= Cols:
		return ErrColumnOutOfRange
	case s.Board.landing(d.Column) < 0:
		return ErrColumnFull
	}
	return nil
}

func Apply(s State, d Drop) (State, error) {
	if err := Validate(s, d); err != nil {
		return s, err
	}
	return drop(s, d), nil
}

func drop(s State, d Drop) State {
	at := grid.At(s.Board.landing(d.Column), d.Column)
	s.Board[at.Row][at.Col] = d.Player
	s.LastDrop = &at

	if cells := WinningLine(s.Board, at); cells != nil {
		s.Status, s.Winner, s.WinningCells = match.Won, d.Player, cells
		return s
	}
	if s.Board.full() {
		s.Status = match.Draw
		return s
	}
	s.Turn = s.Turn.Other()
	return s
}

// LegalMoves returns the columns that can still take a disc.
func LegalMoves(s State) []int {
	cols := make([]int, 0, Cols)
	if s.Status.Terminal() {
		return cols
	}
	for col := 0; col < Cols; col++ {
		if s.Board.landing(col) >= 0 {
			cols = append(cols, col)
		}
	}
	return cols
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

type Rules struct{}

func (Rules) Validate(s State, d Drop) error { return Validate(s, d) }
func (Rules) Apply(s State, d Drop) State    { return drop(s, d) }
func (Rules) Outcome(s State) match.Outcome  { return s.Outcome() }
