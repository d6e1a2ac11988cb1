package chess

import "github.com/robalobadob/duelarcade/internal/grid"

// relocate returns a copy of b with the occupant of from moved to to. It
// applies no promotion or bookkeeping; it is the "would this be legal" probe.
func relocate(b Board, from, to grid.Square) Board {
	pc := b.At(from)
	b.set(from, Piece{})
	b.set(to, pc)
	return b
}

// FilterLegal keeps the moves after which color's king is not in check.
func FilterLegal(b Board, from grid.Square, moves []grid.Square, color Color) []grid.Square {
	legal := make([]grid.Square, 0, len(moves))
	for _, to := range moves {
		if !IsInCheck(relocate(b, from, to), color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// Legal returns the legal destinations for the piece on from, judged for
// that piece's own color. Empty squares have none.
func Legal(b Board, from grid.Square) []grid.Square {
	if !OnBoard(from) {
		return nil
	}
	pc := b.At(from)
	if pc.Empty() {
		return nil
	}
	return FilterLegal(b, from, Generate(b, from), pc.Color)
}

func containsSquare(list []grid.Square, sq grid.Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}
