package chess

import (
	"fmt"

	nchess "github.com/notnil/chess"

	"github.com/robalobadob/duelarcade/internal/grid"
)

// FromFEN reads piece placement and side to move from a FEN string. Castling,
// en passant and the move counters are parsed but not used. Each side must
// have exactly one king, no pawn may stand on a back rank, and the side not
// to move must not be in check.
func FromFEN(fen string) (Board, Color, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return Board{}, NoColor, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}
	pos := nchess.NewGame(opt).Position()

	var b Board
	kings := map[Color]int{}
	for sq, pc := range pos.Board().SquareMap() {
		kind, color := kindFrom(pc.Type()), colorFrom(pc.Color())
		if kind == None || color == NoColor {
			continue
		}
		at := grid.At(Size-1-int(sq.Rank()), int(sq.File()))
		piece := Piece{Kind: kind, Color: color}
		if kind == Pawn && at.Row != pawnStartRow(color) {
			piece.HasMoved = true
		}
		if kind == Pawn && (at.Row == 0 || at.Row == Size-1) {
			return Board{}, NoColor, fmt.Errorf("%w: pawn on %s", ErrInvalidPosition, SquareName(at))
		}
		if kind == King {
			kings[color]++
		}
		b.set(at, piece)
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return Board{}, NoColor, fmt.Errorf("%w: each side needs exactly one king", ErrInvalidPosition)
	}
	turn := colorFrom(pos.Turn())
	if IsInCheck(b, turn.Opposite()) {
		return Board{}, NoColor, fmt.Errorf("%w: %s to move can capture the king", ErrInvalidPosition, turn)
	}
	return b, turn, nil
}

func kindFrom(t nchess.PieceType) Kind {
	switch t {
	case nchess.Pawn:
		return Pawn
	case nchess.Knight:
		return Knight
	case nchess.Bishop:
		return Bishop
	case nchess.Rook:
		return Rook
	case nchess.Queen:
		return Queen
	case nchess.King:
		return King
	default:
		return None
	}
}

func colorFrom(c nchess.Color) Color {
	switch c {
	case nchess.White:
		return White
	case nchess.Black:
		return Black
	default:
		return NoColor
	}
}
