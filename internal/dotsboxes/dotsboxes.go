// internal/dotsboxes/dotsboxes.go
//
// Dots-and-boxes on an N×N box grid ((N+1)×(N+1) dots).
//
// Responsibilities:
//   - Track drawn horizontal and vertical lines and box owners.
//   - Grant an extra turn when a line closes at least one box.
//   - Finish when every box is owned; the larger box count wins.

package dotsboxes

import (
	"fmt"
	"slices"

	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/match"
)

// DefaultSize is the number of boxes along each edge.
const DefaultSize = 4

type Orientation string

const (
	Horizontal Orientation = "h"
	Vertical   Orientation = "v"
)

// Line addresses one edge. Horizontal lines run Row 0..N, Col 0..N-1;
// vertical lines run Row 0..N-1, Col 0..N.
type Line struct {
	Orientation Orientation `json:"orientation"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
}

func (l Line) String() string { return fmt.Sprintf("%s(%d,%d)", l.Orientation, l.Row, l.Col) }

// Draw claims a line for Player.
type Draw struct {
	Player match.Player `json:"player"`
	Line   Line         `json:"line"`
}

type Config struct {
	Size int `json:"size,omitempty"`
}

var (
	ErrBadLine   = match.Invalid("no such line")
	ErrLineTaken = match.Invalid("line is already drawn")
	ErrBadSize   = match.Invalid("board size must be between 1 and 10")
)

type State struct {
	Size          int              `json:"size"`
	Horizontal    [][]bool         `json:"horizontal"`
	Vertical      [][]bool         `json:"vertical"`
	Boxes         [][]match.Player `json:"boxes"`
	Scores        [2]int           `json:"scores"`
	Turn          match.Player     `json:"turn"`
	Status        match.Status     `json:"status"`
	Winner        match.Player     `json:"winner"`
	LastCompleted []grid.Square    `json:"lastCompleted,omitempty"`
}

func New(cfg Config) (State, error) {
	n := cfg.Size
	if n == 0 {
		n = DefaultSize
	}
	if n < 1 || n > 10 {
		return State{}, ErrBadSize
	}
	return State{
		Size:       n,
		Horizontal: matrix[bool](n+1, n),
		Vertical:   matrix[bool](n, n+1),
		Boxes:      matrix[match.Player](n, n),
		Turn:       match.PlayerOne,
		Status:     match.InProgress,
	}, nil
}

func matrix[T any](rows, cols int) [][]T {
	m := make([][]T, rows)
	for i := range m {
		m[i] = make([]T, cols)
	}
	return m
}

func cloneMatrix[T any](m [][]T) [][]T {
	out := make([][]T, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}

func (s State) valid(l Line) bool {
	switch l.Orientation {
	case Horizontal:
		return l.Row >= 0 && l.Row <= s.Size && l.Col >= 0 && l.Col < s.Size
	case Vertical:
		return l.Row >= 0 && l.Row < s.Size && l.Col >= 0 && l.Col <= s.Size
	default:
		return false
	}
}

func (s State) drawn(l Line) bool {
	if l.Orientation == Horizontal {
		return s.Horizontal[l.Row][l.Col]
	}
	return s.Vertical[l.Row][l.Col]
}

// closed reports whether all four sides of box b are drawn.
func (s State) closed(b grid.Square) bool {
	return s.Horizontal[b.Row][b.Col] && s.Horizontal[b.Row+1][b.Col] &&
		s.Vertical[b.Row][b.Col] && s.Vertical[b.Row][b.Col+1]
}

// adjacent lists the boxes that line l borders.
func (s State) adjacent(l Line) []grid.Square {
	var boxes []grid.Square
	if l.Orientation == Horizontal {
		if l.Row > 0 {
			boxes = append(boxes, grid.At(l.Row-1, l.Col))
		}
		if l.Row < s.Size {
			boxes = append(boxes, grid.At(l.Row, l.Col))
		}
		return boxes
	}
	if l.Col > 0 {
		boxes = append(boxes, grid.At(l.Row, l.Col-1))
	}
	if l.Col < s.Size {
		boxes = append(boxes, grid.At(l.Row, l.Col))
	}
	return boxes
}

func Validate(s State, d Draw) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !d.Player.Valid():
		return match.ErrUnknownPlayer
	case d.Player != s.Turn:
		return match.ErrNotYourTurn
	case !s.valid(d.Line):
		return ErrBadLine
	case s.drawn(d.Line):
		return ErrLineTaken
	}
	return nil
}

func Apply(s State, d Draw) (State, error) {
	if err := Validate(s, d); err != nil {
		return s, err
	}
	return draw(s, d), nil
}

func draw(s State, d Draw) State {
	if d.Line.Orientation == Horizontal {
		s.Horizontal = cloneMatrix(s.Horizontal)
		s.Horizontal[d.Line.Row][d.Line.Col] = true
	} else {
		s.Vertical = cloneMatrix(s.Vertical)
		s.Vertical[d.Line.Row][d.Line.Col] = true
	}

	s.LastCompleted = nil
	for _, b := range s.adjacent(d.Line) {
		if s.Boxes[b.Row][b.Col] == match.NoPlayer && s.closed(b) {
			s.LastCompleted = append(s.LastCompleted, b)
		}
	}
	if len(s.LastCompleted) == 0 {
		s.Turn = s.Turn.Other()
		return s
	}

	s.Boxes = cloneMatrix(s.Boxes)
	for _, b := range s.LastCompleted {
		s.Boxes[b.Row][b.Col] = d.Player
	}
	s.Scores[d.Player.Index()] += len(s.LastCompleted)

	if s.Scores[0]+s.Scores[1] == s.Size*s.Size {
		o := match.Compare(s.Scores[0], s.Scores[1])
		s.Status, s.Winner = o.Status, o.Winner
	}
	return s
}

// LegalMoves lists every undrawn line.
func LegalMoves(s State) []Line {
	lines := []Line{}
	if s.Status.Terminal() {
		return lines
	}
	for r, row := range s.Horizontal {
		for c, done := range row {
			if !done {
				lines = append(lines, Line{Orientation: Horizontal, Row: r, Col: c})
			}
		}
	}
	for r, row := range s.Vertical {
		for c, done := range row {
			if !done {
				lines = append(lines, Line{Orientation: Vertical, Row: r, Col: c})
			}
		}
	}
	return lines
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

type Rules struct{}

func (Rules) Validate(s State, d Draw) error { return Validate(s, d) }
func (Rules) Apply(s State, d Draw) State    { return draw(s, d) }
func (Rules) Outcome(s State) match.Outcome  { return s.Outcome() }
