// internal/chess/types.go
//
// Core value types for the chess engine: colors, piece kinds, pieces and the
// 8×8 board. The board is a plain array so copying it is a full clone; every
// transition builds a new Board instead of mutating the caller's.

package chess

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/match"
)

// Size is the board edge length.
const Size = 8

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

func (c Color) MarshalJSON() ([]byte, error) {
	if c == NoColor {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

// Player maps white to the first seat and black to the second.
func (c Color) Player() match.Player {
	switch c {
	case White:
		return match.PlayerOne
	case Black:
		return match.PlayerTwo
	default:
		return match.NoPlayer
	}
}

// ColorOf is the inverse of Color.Player.
func ColorOf(p match.Player) Color {
	switch p {
	case match.PlayerOne:
		return White
	case match.PlayerTwo:
		return Black
	default:
		return NoColor
	}
}

type Kind uint8

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Piece is an occupant of a square. The zero Piece is an empty square.
type Piece struct {
	Kind     Kind
	Color    Color
	HasMoved bool
}

func (p Piece) Empty() bool { return p.Kind == None }

type pieceJSON struct {
	Kind     string `json:"kind"`
	Color    Color  `json:"color"`
	HasMoved bool   `json:"hasMoved"`
}

func (p Piece) MarshalJSON() ([]byte, error) {
	if p.Empty() {
		return []byte("null"), nil
	}
	return json.Marshal(pieceJSON{Kind: p.Kind.String(), Color: p.Color, HasMoved: p.HasMoved})
}

// Board is indexed [row][col]; row 0 is rank 8, col 0 is file a.
type Board [Size][Size]Piece

// At returns the occupant of sq. Callers must pass an on-board square.
func (b *Board) At(sq grid.Square) Piece { return b[sq.Row][sq.Col] }

func (b *Board) set(sq grid.Square, p Piece) { b[sq.Row][sq.Col] = p }

// OnBoard reports whether sq is a valid chess coordinate.
func OnBoard(sq grid.Square) bool { return sq.In(Size, Size) }

// Standard returns the opening position: black on rows 0–1, white on rows 6–7.
func Standard() Board {
	var b Board
	order := [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < Size; col++ {
		b[0][col] = Piece{Kind: order[col], Color: Black}
		b[1][col] = Piece{Kind: Pawn, Color: Black}
		b[6][col] = Piece{Kind: Pawn, Color: White}
		b[7][col] = Piece{Kind: order[col], Color: White}
	}
	return b
}

// ParseSquare converts "e2" style coordinates into a grid square.
func ParseSquare(s string) (grid.Square, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return grid.Square{}, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return grid.Square{}, false
	}
	return grid.At(Size-int(rank-'0'), int(file-'a')), true
}

// SquareName is the inverse of ParseSquare.
func SquareName(sq grid.Square) string {
	if !OnBoard(sq) {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col, Size-sq.Row)
}

// String renders the board as eight lines of FEN-style letters, '.' for empty.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteByte(b[row][col].letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p Piece) letter() byte {
	var c byte
	switch p.Kind {
	case Pawn:
		c = 'p'
	case Knight:
		c = 'n'
	case Bishop:
		c = 'b'
	case Rook:
		c = 'r'
	case Queen:
		c = 'q'
	case King:
		c = 'k'
	default:
		return '.'
	}
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}
