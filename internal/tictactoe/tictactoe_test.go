package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/duelarcade/internal/match"
)

func TestClassifyTopRow(t *testing.T) {
	b := Board{X, X, X, Empty, O, O, Empty, Empty, Empty}
	winner, line, full := Classify(b)
	assert.Equal(t, X, winner)
	assert.Equal(t, []int{0, 1, 2}, line)
	assert.False(t, full)
}

func TestClassifyFullBoardDraw(t *testing.T) {
	b := Board{
		X, O, X,
		X, O, O,
		O, X, X,
	}
	winner, line, full := Classify(b)
	assert.Equal(t, Empty, winner)
	assert.Nil(t, line)
	assert.True(t, full)
}

func TestPlayToWin(t *testing.T) {
	s := New()
	var err error
	for i, cell := range []int{0, 4, 1, 5, 2} {
		p := match.PlayerOne
		if i%2 == 1 {
			p = match.PlayerTwo
		}
		s, err = Apply(s, Place{Player: p, Cell: cell})
		require.NoError(t, err)
	}
	assert.Equal(t, match.Won, s.Status)
	assert.Equal(t, match.PlayerOne, s.Winner)
	assert.Equal(t, []int{0, 1, 2}, s.Line)

	_, err = Apply(s, Place{Player: match.PlayerTwo, Cell: 8})
	assert.ErrorIs(t, err, match.ErrGameOver)
}

func TestPlayToDraw(t *testing.T) {
	s := New()
	var err error
	for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		s, err = Apply(s, Place{Player: s.Turn, Cell: cell})
		require.NoError(t, err)
	}
	assert.Equal(t, match.Draw, s.Status)
	assert.Equal(t, match.NoPlayer, s.Winner)
}

func TestInvalidPlacementsAreNoOps(t *testing.T) {
	s, err := Apply(New(), Place{Player: match.PlayerOne, Cell: 4})
	require.NoError(t, err)
	before := s

	for _, a := range []Place{
		{Player: match.PlayerOne, Cell: 0},
		{Player: match.PlayerTwo, Cell: 4},
		{Player: match.PlayerTwo, Cell: 9},
		{Player: match.PlayerTwo, Cell: -1},
	} {
		got, err := Apply(s, a)
		assert.True(t, match.IsInvalid(err), "%+v", a)
		assert.Equal(t, before, got)
	}
}

func TestScoreSurvivesNewGame(t *testing.T) {
	m := match.New[State, Place](Rules{}, New)
	for _, cell := range []int{0, 4, 1, 5, 2} {
		_, err := m.Apply(Place{Player: m.State().Turn, Cell: cell})
		require.NoError(t, err)
	}
	m.NewGame()
	assert.Equal(t, match.Score{One: 1}, m.Score())
	assert.Equal(t, Board{}, m.State().Board)

	m.ResetScores()
	assert.Equal(t, match.Score{}, m.Score())
}
