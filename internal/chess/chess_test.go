package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/match"
)

func sq(t *testing.T, name string) grid.Square {
	t.Helper()
	s, ok := ParseSquare(name)
	require.True(t, ok, "bad square %q", name)
	return s
}

func play(t *testing.T, s State, moves ...string) State {
	t.Helper()
	for i := 0; i+1 < len(moves); i += 2 {
		var err error
		s, err = Apply(s, Move{Player: s.Turn.Player(), From: sq(t, moves[i]), To: sq(t, moves[i+1])})
		require.NoError(t, err, "move %s-%s", moves[i], moves[i+1])
	}
	return s
}

func newStandard(t *testing.T) State {
	t.Helper()
	s, err := New(Config{})
	require.NoError(t, err)
	return s
}

func TestParseSquare(t *testing.T) {
	assert.Equal(t, grid.At(6, 4), sq(t, "e2"))
	assert.Equal(t, grid.At(0, 0), sq(t, "a8"))
	assert.Equal(t, grid.At(7, 7), sq(t, "H1"))
	assert.Equal(t, "e2", SquareName(grid.At(6, 4)))

	for _, bad := range []string{"", "i1", "a9", "a0", "e22"} {
		_, ok := ParseSquare(bad)
		assert.False(t, ok, bad)
	}
}

func TestOpeningPosition(t *testing.T) {
	s := newStandard(t)
	assert.Equal(t, White, s.Turn)
	assert.Equal(t, match.InProgress, s.Status)

	assert.ElementsMatch(t, []grid.Square{sq(t, "e3"), sq(t, "e4")}, LegalMoves(s, sq(t, "e2")))
	assert.ElementsMatch(t, []grid.Square{sq(t, "a3"), sq(t, "c3")}, LegalMoves(s, sq(t, "b1")))
	assert.Empty(t, LegalMoves(s, sq(t, "d1")), "queen is boxed in")
	assert.Empty(t, LegalMoves(s, sq(t, "e7")), "black cannot move on white's turn")
}

func TestFoolsMate(t *testing.T) {
	s := play(t, newStandard(t), "f2", "f3", "e7", "e5", "g2", "g4", "d8", "h4")

	assert.Equal(t, match.Checkmate, s.Status)
	assert.Equal(t, Black, s.Winner)
	assert.True(t, IsInCheck(s.Board, White))
	assert.False(t, HasLegalMove(s.Board, White))
	assert.Equal(t, match.Outcome{Status: match.Checkmate, Winner: match.PlayerTwo}, s.Outcome())
	assert.Equal(t, []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4"}, s.History)

	_, err := Apply(s, Move{Player: match.PlayerOne, From: sq(t, "a2"), To: sq(t, "a3")})
	assert.ErrorIs(t, err, match.ErrGameOver)
}

func TestCheckIsNotTerminal(t *testing.T) {
	s := play(t, newStandard(t), "e2", "e4", "f7", "f6", "d1", "h5")
	assert.Equal(t, match.Check, s.Status)
	assert.False(t, s.Status.Terminal())

	// Only g7-g6 blocks; every other black move leaves the king attacked.
	var blockers []string
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			from := grid.At(row, col)
			for _, to := range LegalMoves(s, from) {
				blockers = append(blockers, SquareName(from)+"-"+SquareName(to))
			}
		}
	}
	assert.Equal(t, []string{"g7-g6"}, blockers)
}

func TestStalemateIsDetected(t *testing.T) {
	s, err := New(Config{FEN: "7k/8/6K1/8/8/8/8/5Q2 w - - 0 1"})
	require.NoError(t, err)
	require.Equal(t, match.InProgress, s.Status)

	s = play(t, s, "f1", "f7")
	assert.Equal(t, match.Stalemate, s.Status)
	assert.Equal(t, NoColor, s.Winner)
	assert.False(t, IsInCheck(s.Board, Black))
	assert.Equal(t, match.Outcome{Status: match.Stalemate}, s.Outcome())
}

func TestPromotionToQueen(t *testing.T) {
	s, err := New(Config{FEN: "k7/4P3/8/8/8/8/8/7K w - - 0 1"})
	require.NoError(t, err)

	s = play(t, s, "e7", "e8")
	pc := s.Board.At(sq(t, "e8"))
	assert.Equal(t, Queen, pc.Kind)
	assert.Equal(t, White, pc.Color)
	assert.True(t, pc.HasMoved)
	assert.Equal(t, match.Check, s.Status)
}

func TestCaptureIsRecorded(t *testing.T) {
	s := play(t, newStandard(t), "e2", "e4", "d7", "d5", "e4", "d5")
	require.Len(t, s.Captured.Black, 1)
	assert.Equal(t, Pawn, s.Captured.Black[0].Kind)
	assert.Empty(t, s.Captured.White)
	assert.Equal(t, White, s.Board.At(sq(t, "d5")).Color)
}

func TestRejectionsLeaveStateUnchanged(t *testing.T) {
	s := newStandard(t)
	before := s

	cases := []struct {
		name string
		move Move
		want error
	}{
		{"wrong seat", Move{Player: match.PlayerTwo, From: sq(t, "e7"), To: sq(t, "e5")}, match.ErrNotYourTurn},
		{"nobody", Move{From: sq(t, "e2"), To: sq(t, "e4")}, match.ErrUnknownPlayer},
		{"empty origin", Move{Player: match.PlayerOne, From: sq(t, "e4"), To: sq(t, "e5")}, ErrNoPiece},
		{"enemy piece", Move{Player: match.PlayerOne, From: sq(t, "e7"), To: sq(t, "e6")}, ErrWrongColor},
		{"too far", Move{Player: match.PlayerOne, From: sq(t, "e2"), To: sq(t, "e5")}, ErrIllegalMove},
		{"onto own piece", Move{Player: match.PlayerOne, From: sq(t, "a1"), To: sq(t, "a2")}, ErrIllegalMove},
		{"off board", Move{Player: match.PlayerOne, From: sq(t, "e2"), To: grid.At(8, 4)}, ErrOffBoard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(s, tc.move)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, match.IsInvalid(err))
			assert.Equal(t, before, got)
		})
	}
	assert.Equal(t, before, s)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := play(t, newStandard(t), "e2", "e4")
	snapshot := s
	historyLen := len(s.History)

	_ = play(t, s, "e7", "e5")
	assert.Equal(t, snapshot.Board, s.Board)
	assert.Len(t, s.History, historyLen)
}

func TestLegalMovesNeverLandOnOwnPiece(t *testing.T) {
	s := newStandard(t)
	for ply := 0; ply < 60 && !s.Status.Terminal(); ply++ {
		var all []Move
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				from := grid.At(row, col)
				for _, to := range LegalMoves(s, from) {
					target := s.Board.At(to)
					require.False(t, !target.Empty() && target.Color == s.Turn,
						"%s-%s lands on own piece", SquareName(from), SquareName(to))
					require.False(t, IsInCheck(relocate(s.Board, from, to), s.Turn))
					all = append(all, Move{Player: s.Turn.Player(), From: from, To: to})
				}
			}
		}
		require.NotEmpty(t, all)
		var err error
		s, err = Apply(s, all[(ply*7)%len(all)])
		require.NoError(t, err)
	}
}

func TestFromFENRejectsBadInput(t *testing.T) {
	_, err := New(Config{FEN: "not a position"})
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = New(Config{FEN: "8/8/8/8/8/8/8/K7 w - - 0 1"})
	assert.ErrorIs(t, err, ErrInvalidPosition)

	// Black is in check with white to move: the rook could take the king.
	_, err = New(Config{FEN: "4k3/8/8/8/8/8/8/K3R3 w - - 0 1"})
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = New(Config{FEN: "P3k3/8/8/8/8/8/8/K7 w - - 0 1"})
	assert.ErrorIs(t, err, ErrInvalidPosition)

	// The side to move may be in check.
	s, err := New(Config{FEN: "4k3/8/8/8/8/8/8/K3R3 b - - 0 1"})
	require.NoError(t, err)
	assert.Equal(t, match.Check, s.Status)
}

func TestFromFENMatchesStandard(t *testing.T) {
	b, turn, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, White, turn)
	assert.Equal(t, Standard().String(), b.String())
}

func TestRulesDriveAMatch(t *testing.T) {
	m := match.New[State, Move](Rules{}, func() State { s, _ := New(Config{}); return s })
	for _, mv := range [][2]string{{"f2", "f3"}, {"e7", "e5"}, {"g2", "g4"}, {"d8", "h4"}} {
		_, err := m.Apply(Move{Player: m.State().Turn.Player(), From: sq(t, mv[0]), To: sq(t, mv[1])})
		require.NoError(t, err)
	}
	assert.Equal(t, match.Score{Two: 1}, m.Score())

	fresh := m.NewGame()
	assert.Equal(t, match.InProgress, fresh.Status)
	assert.Equal(t, match.Score{Two: 1}, m.Score())
}
