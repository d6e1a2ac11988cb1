// Package grid holds the board geometry shared by the grid-based engines:
// bounds checks, direction vectors, ray stepping and contiguous-run walking.
package grid

import "fmt"

// Square is a (row, col) coordinate. Row 0 is the top of the board.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Vec is a row/col displacement.
type Vec struct {
	DR int
	DC int
}

// At is shorthand for Square{row, col}.
func At(row, col int) Square { return Square{Row: row, Col: col} }

// In reports whether s lies on a rows×cols board.
func (s Square) In(rows, cols int) bool {
	return s.Row >= 0 && s.Row < rows && s.Col >= 0 && s.Col < cols
}

// Add displaces s by v.
func (s Square) Add(v Vec) Square { return Square{Row: s.Row + v.DR, Col: s.Col + v.DC} }

// Index flattens s in row-major order for a board cols wide.
func (s Square) Index(cols int) int { return s.Row*cols + s.Col }

func (s Square) String() string { return fmt.Sprintf("(%d,%d)", s.Row, s.Col) }

// Neg reverses v.
func (v Vec) Neg() Vec { return Vec{DR: -v.DR, DC: -v.DC} }

var (
	Orthogonal = []Vec{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	Diagonal   = []Vec{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	// AllDirections is the union of Orthogonal and Diagonal.
	AllDirections = append(append([]Vec{}, Orthogonal...), Diagonal...)
	KnightJumps   = []Vec{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	// LineAxes are the four axes a straight line can run along; each is
	// walked forward and backward by Run.
	LineAxes = []Vec{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
)

// Ray steps from origin (exclusive) along dir until the board edge. Each
// visited square is passed to visit; returning false stops the ray after
// that square has been reported.
func Ray(origin Square, dir Vec, rows, cols int, visit func(Square) bool) {
	for sq := origin.Add(dir); sq.In(rows, cols); sq = sq.Add(dir) {
		if !visit(sq) {
			return
		}
	}
}

// Run collects the squares contiguous with origin along dir for which same
// returns true, stepping at most limit times (limit <= 0 means unbounded).
// Origin itself is not included.
func Run(origin Square, dir Vec, rows, cols, limit int, same func(Square) bool) []Square {
	var out []Square
	for sq := origin.Add(dir); sq.In(rows, cols); sq = sq.Add(dir) {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !same(sq) {
			break
		}
		out = append(out, sq)
	}
	return out
}

// Line returns the contiguous run through origin along axis, ordered from
// the far backward end to the far forward end, origin included.
func Line(origin Square, axis Vec, rows, cols, limit int, same func(Square) bool) []Square {
	back := Run(origin, axis.Neg(), rows, cols, limit, same)
	fwd := Run(origin, axis, rows, cols, limit, same)

	line := make([]Square, 0, len(back)+1+len(fwd))
	for i := len(back) - 1; i >= 0; i-- {
		line = append(line, back[i])
	}
	line = append(line, origin)
	return append(line, fwd...)
}
