package chess

import "github.com/robalobadob/duelarcade/internal/grid"

var kingOffsets = grid.AllDirections

// Generate enumerates the raw destinations of the piece on from. It does not
// check whether the move leaves the mover's own king attacked; FilterLegal
// does that.
func Generate(b Board, from grid.Square) []grid.Square {
	if !OnBoard(from) {
		return nil
	}
	pc := b.At(from)
	switch pc.Kind {
	case Pawn:
		return pawnMoves(b, pc, from)
	case Knight:
		return offsetMoves(b, pc, from, grid.KnightJumps)
	case Bishop:
		return slidingMoves(b, pc, from, grid.Diagonal)
	case Rook:
		return slidingMoves(b, pc, from, grid.Orthogonal)
	case Queen:
		return slidingMoves(b, pc, from, grid.AllDirections)
	case King:
		return offsetMoves(b, pc, from, kingOffsets)
	default:
		return nil
	}
}

// pawnDirection is the row delta of a forward pawn step.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

func pawnMoves(b Board, pc Piece, from grid.Square) []grid.Square {
	var moves []grid.Square
	dir := pawnDirection(pc.Color)

	one := from.Add(grid.Vec{DR: dir})
	if OnBoard(one) && b.At(one).Empty() {
		moves = append(moves, one)
		two := one.Add(grid.Vec{DR: dir})
		if from.Row == pawnStartRow(pc.Color) && OnBoard(two) && b.At(two).Empty() {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		target := from.Add(grid.Vec{DR: dir, DC: dc})
		if !OnBoard(target) {
			continue
		}
		if victim := b.At(target); !victim.Empty() && victim.Color != pc.Color {
			moves = append(moves, target)
		}
	}
	return moves
}

func offsetMoves(b Board, pc Piece, from grid.Square, offsets []grid.Vec) []grid.Square {
	var moves []grid.Square
	for _, d := range offsets {
		target := from.Add(d)
		if !OnBoard(target) {
			continue
		}
		if occupant := b.At(target); occupant.Empty() || occupant.Color != pc.Color {
			moves = append(moves, target)
		}
	}
	return moves
}

func slidingMoves(b Board, pc Piece, from grid.Square, dirs []grid.Vec) []grid.Square {
	var moves []grid.Square
	for _, d := range dirs {
		grid.Ray(from, d, Size, Size, func(target grid.Square) bool {
			occupant := b.At(target)
			if occupant.Empty() {
				moves = append(moves, target)
				return true
			}
			if occupant.Color != pc.Color {
				moves = append(moves, target)
			}
			return false
		})
	}
	return moves
}
