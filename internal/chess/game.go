// internal/chess/game.go
//
// Turn controller for chess.
//
// Responsibilities:
//   - Build the opening (or FEN-supplied) position.
//   - Validate a move against the precomputed legal set of its piece.
//   - Relocate, capture, promote, mark HasMoved, switch turn, reclassify.
//
// Not implemented: castling, en passant, repetition and fifty-move draws.

package chess

import (
	"errors"
	"slices"

	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/match"
)

var (
	ErrOffBoard        = match.Invalid("square is off the board")
	ErrNoPiece         = match.Invalid("no piece on that square")
	ErrWrongColor      = match.Invalid("that piece belongs to the other side")
	ErrIllegalMove     = match.Invalid("illegal move")
	ErrInvalidPosition = errors.New("invalid chess position")
)

// Config selects the starting position. An empty FEN means the standard one.
type Config struct {
	FEN string `json:"fen,omitempty"`
}

// Move relocates the piece on From to To on behalf of Player.
type Move struct {
	Player match.Player `json:"player"`
	From   grid.Square  `json:"from"`
	To     grid.Square  `json:"to"`
}

// Captured lists taken pieces keyed by the color they belonged to.
type Captured struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func (c Captured) with(p Piece) Captured {
	switch p.Color {
	case White:
		c.White = append(slices.Clip(c.White), p)
	case Black:
		c.Black = append(slices.Clip(c.Black), p)
	}
	return c
}

type State struct {
	Board    Board        `json:"board"`
	Turn     Color        `json:"turn"`
	Status   match.Status `json:"status"`
	Winner   Color        `json:"winner"`
	Captured Captured     `json:"captured"`
	History  []string     `json:"history"`
	LastMove *Move        `json:"lastMove,omitempty"`
}

// New returns the starting state for cfg.
func New(cfg Config) (State, error) {
	b, turn := Standard(), White
	if cfg.FEN != "" {
		var err error
		if b, turn, err = FromFEN(cfg.FEN); err != nil {
			return State{}, err
		}
	}
	s := State{
		Board:    b,
		Turn:     turn,
		Captured: Captured{White: []Piece{}, Black: []Piece{}},
		History:  []string{},
	}
	s.Status = Classify(b, turn)
	if s.Status == match.Checkmate {
		s.Winner = turn.Opposite()
	}
	return s, nil
}

// Outcome maps the chess status onto the shared outcome shape.
func (s State) Outcome() match.Outcome {
	if s.Status == match.Checkmate {
		return match.Outcome{Status: match.Checkmate, Winner: s.Winner.Player()}
	}
	return match.Outcome{Status: s.Status}
}

// Validate reports why m cannot be played in s, or nil.
func Validate(s State, m Move) error {
	if s.Status.Terminal() {
		return match.ErrGameOver
	}
	if !m.Player.Valid() {
		return match.ErrUnknownPlayer
	}
	if ColorOf(m.Player) != s.Turn {
		return match.ErrNotYourTurn
	}
	if !OnBoard(m.From) || !OnBoard(m.To) {
		return ErrOffBoard
	}
	pc := s.Board.At(m.From)
	if pc.Empty() {
		return ErrNoPiece
	}
	if pc.Color != s.Turn {
		return ErrWrongColor
	}
	if !containsSquare(Legal(s.Board, m.From), m.To) {
		return ErrIllegalMove
	}
	return nil
}

// Apply plays m. On error s is returned untouched.
func Apply(s State, m Move) (State, error) {
	if err := Validate(s, m); err != nil {
		return s, err
	}
	return advance(s, m), nil
}

func advance(s State, m Move) State {
	next := s
	b := s.Board

	pc := b.At(m.From)
	if victim := b.At(m.To); !victim.Empty() {
		next.Captured = s.Captured.with(victim)
	}
	pc.HasMoved = true
	if pc.Kind == Pawn && (m.To.Row == 0 || m.To.Row == Size-1) {
		pc.Kind = Queen
	}
	b.set(m.From, Piece{})
	b.set(m.To, pc)

	next.Board = b
	next.History = append(slices.Clip(s.History), SquareName(m.From)+"-"+SquareName(m.To))
	played := m
	next.LastMove = &played

	next.Turn = s.Turn.Opposite()
	next.Status = Classify(b, next.Turn)
	next.Winner = NoColor
	if next.Status == match.Checkmate {
		next.Winner = s.Turn
	}
	return next
}

// LegalMoves lists destinations for the piece on from. Only the side to move
// has any, and a finished game has none.
func LegalMoves(s State, from grid.Square) []grid.Square {
	if s.Status.Terminal() || !OnBoard(from) {
		return nil
	}
	if pc := s.Board.At(from); pc.Empty() || pc.Color != s.Turn {
		return nil
	}
	return Legal(s.Board, from)
}

// Rules plugs chess into match.Match.
type Rules struct{}

func (Rules) Validate(s State, m Move) error { return Validate(s, m) }
func (Rules) Apply(s State, m Move) State    { return advance(s, m) }
func (Rules) Outcome(s State) match.Outcome  { return s.Outcome() }
