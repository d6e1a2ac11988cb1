package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/match"
)

func dropAll(t *testing.T, s State, cols ...int) State {
	t.Helper()
	for _, c := range cols {
		var err error
		s, err = Apply(s, Drop{Player: s.Turn, Column: c})
		require.NoError(t, err, "column %d", c)
	}
	return s
}

func TestBottomRowWin(t *testing.T) {
	s := dropAll(t, New(), 0, 0, 1, 1, 2, 2, 3)

	assert.Equal(t, match.Won, s.Status)
	assert.Equal(t, match.PlayerOne, s.Winner)
	assert.Equal(t, []grid.Square{grid.At(5, 0), grid.At(5, 1), grid.At(5, 2), grid.At(5, 3)}, s.WinningCells)
	assert.Equal(t, []int{}, LegalMoves(s))
}

func TestVerticalAndDiagonalWins(t *testing.T) {
	s := dropAll(t, New(), 6, 0, 6, 0, 6, 0, 5, 0)
	assert.Equal(t, match.PlayerTwo, s.Winner)
	assert.Equal(t, []grid.Square{grid.At(2, 0), grid.At(3, 0), grid.At(4, 0), grid.At(5, 0)}, s.WinningCells)

	// One builds the rising diagonal (5,0) (4,1) (3,2) (2,3).
	s = dropAll(t, New(), 0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3)
	assert.Equal(t, match.PlayerOne, s.Winner)
	assert.Len(t, s.WinningCells, Needed)
	assert.Contains(t, s.WinningCells, grid.At(5, 0))
	assert.Contains(t, s.WinningCells, grid.At(2, 3))
}

func TestFullColumnIsRejected(t *testing.T) {
	s := dropAll(t, New(), 0, 0, 0, 0, 0, 0)
	before := s

	got, err := Apply(s, Drop{Player: s.Turn, Column: 0})
	assert.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, before, got)
	assert.NotContains(t, LegalMoves(s), 0)
}

func TestWrongTurnAndRange(t *testing.T) {
	s := New()
	_, err := Apply(s, Drop{Player: match.PlayerTwo, Column: 3})
	assert.ErrorIs(t, err, match.ErrNotYourTurn)

	_, err = Apply(s, Drop{Player: match.PlayerOne, Column: Cols})
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
}

func TestFullBoardIsDraw(t *testing.T) {
	// Column pairs filled in the order below never line up four.
	order := []int{
		0, 1, 0, 1, 0, 1,
		1, 0, 1, 0, 1, 0,
		2, 3, 2, 3, 2, 3,
		3, 2, 3, 2, 3, 2,
		4, 5, 4, 5, 4, 5,
		5, 4, 5, 4, 5, 4,
		6, 6, 6, 6, 6, 6,
	}
	s := dropAll(t, New(), order...)
	assert.Equal(t, match.Draw, s.Status)
	assert.Equal(t, match.NoPlayer, s.Winner)
}
