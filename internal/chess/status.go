package chess

import (
	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/match"
)

// KingSquare locates color's king.
func KingSquare(b Board, color Color) (grid.Square, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if pc := b[row][col]; pc.Kind == King && pc.Color == color {
				return grid.At(row, col), true
			}
		}
	}
	return grid.Square{}, false
}

// Attacked reports whether any piece of attacker has a raw move onto target.
func Attacked(b Board, target grid.Square, attacker Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pc := b[row][col]
			if pc.Empty() || pc.Color != attacker {
				continue
			}
			if containsSquare(Generate(b, grid.At(row, col)), target) {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether color's king is attacked. A board without that
// king is never in check.
func IsInCheck(b Board, color Color) bool {
	king, ok := KingSquare(b, color)
	if !ok {
		return false
	}
	return Attacked(b, king, color.Opposite())
}

// HasLegalMove reports whether color has at least one legal move anywhere.
func HasLegalMove(b Board, color Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if pc := b[row][col]; pc.Empty() || pc.Color != color {
				continue
			}
			if len(Legal(b, grid.At(row, col))) > 0 {
				return true
			}
		}
	}
	return false
}

// Classify reports the status of the position with toMove to play.
func Classify(b Board, toMove Color) match.Status {
	inCheck := IsInCheck(b, toMove)
	hasMove := HasLegalMove(b, toMove)
	switch {
	case inCheck && !hasMove:
		return match.Checkmate
	case inCheck:
		return match.Check
	case !hasMove:
		return match.Stalemate
	default:
		return match.InProgress
	}
}
