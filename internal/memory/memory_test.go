package memory

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/duelarcade/internal/match"
)

// pairsOf groups card ids by symbol.
func pairsOf(s State) map[string][]int {
	out := map[string][]int{}
	for _, c := range s.Cards {
		out[c.Symbol] = append(out[c.Symbol], c.ID)
	}
	return out
}

func mustNew(t *testing.T, cfg Config) State {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func flipAll(t *testing.T, s State, cards ...int) State {
	t.Helper()
	for _, c := range cards {
		var err error
		s, err = Apply(s, Flip{Player: s.Turn, Card: c})
		require.NoError(t, err, "card %d", c)
	}
	return s
}

func TestDeckHasEightDistinctPairs(t *testing.T) {
	s := mustNew(t, Config{Seed: 7})
	require.Len(t, s.Cards, 16)
	pairs := pairsOf(s)
	assert.Len(t, pairs, 8)
	for sym, ids := range pairs {
		assert.Len(t, ids, 2, sym)
	}
	assert.Equal(t, s.Cards, mustNew(t, Config{Seed: 7}).Cards, "same seed deals the same deck")
}

func TestMatchKeepsTurn(t *testing.T) {
	s := mustNew(t, Config{Seed: 1})
	ids := pairsOf(s)[Symbols[0]]

	s = flipAll(t, s, ids[0], ids[1])
	assert.Equal(t, match.PlayerOne, s.Turn)
	assert.Equal(t, [2]int{1, 0}, s.Scores)
	assert.True(t, s.Cards[ids[0]].Matched)
	assert.Equal(t, match.PlayerOne, s.Cards[ids[1]].MatchedBy)
}

func TestMissSwitchesTurnAndHidesCards(t *testing.T) {
	s := mustNew(t, Config{Seed: 1})
	pairs := pairsOf(s)
	a, b := pairs[Symbols[0]][0], pairs[Symbols[1]][0]

	s = flipAll(t, s, a)
	require.NotNil(t, s.Selected)
	assert.True(t, s.Cards[a].FaceUp)

	s = flipAll(t, s, b)
	assert.Equal(t, match.PlayerTwo, s.Turn)
	assert.False(t, s.Cards[a].FaceUp)
	assert.False(t, s.Cards[b].FaceUp)
	assert.Nil(t, s.Selected)
	require.Len(t, s.LastMiss, 2)
	assert.Equal(t, Symbols[1], s.LastMiss[1].Symbol)
	assert.Equal(t, [2]int{0, 0}, s.Scores)
}

func TestClearingTheBoardEndsTheGame(t *testing.T) {
	s := mustNew(t, Config{Seed: 3})
	for _, sym := range Symbols {
		ids := pairsOf(s)[sym]
		s = flipAll(t, s, ids[0], ids[1])
	}
	assert.Equal(t, match.Won, s.Status)
	assert.Equal(t, match.PlayerOne, s.Winner)
	assert.Equal(t, 8, s.Scores[0])
}

func TestEvenSplitIsADraw(t *testing.T) {
	s := mustNew(t, Config{Pairs: 4, Seed: 5})
	p := pairsOf(s)
	a, b, c, d := p[Symbols[0]], p[Symbols[1]], p[Symbols[2]], p[Symbols[3]]

	s = flipAll(t, s, a[0], a[1], b[0], b[1], c[0], d[0])
	require.Equal(t, match.PlayerTwo, s.Turn)
	s = flipAll(t, s, c[0], c[1], d[0], d[1])

	assert.Equal(t, match.Draw, s.Status)
	assert.Equal(t, match.NoPlayer, s.Winner)
	assert.Equal(t, [2]int{2, 2}, s.Scores)
}

func TestRejectedFlips(t *testing.T) {
	s := mustNew(t, Config{Seed: 9})
	ids := pairsOf(s)[Symbols[2]]
	other := pairsOf(s)[Symbols[3]][0]
	s = flipAll(t, s, ids[0], ids[1], other)
	before := s

	for _, f := range []Flip{
		{Player: match.PlayerTwo, Card: other},
		{Player: s.Turn, Card: 16},
		{Player: s.Turn, Card: ids[0]},
		{Player: s.Turn, Card: *s.Selected},
	} {
		got, err := Apply(s, f)
		assert.True(t, match.IsInvalid(err), "%+v", f)
		assert.Equal(t, before, got)
	}
}

func TestFaceDownSymbolsAreHidden(t *testing.T) {
	s := mustNew(t, Config{Seed: 2})
	s = flipAll(t, s, 0)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, s.Cards[0].Symbol)
	for _, c := range s.Cards[1:] {
		if c.Symbol != s.Cards[0].Symbol {
			assert.False(t, strings.Contains(body, c.Symbol), "leaked %s", c.Symbol)
		}
	}
}
