package session

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/duelarcade/internal/catalog"
	"github.com/robalobadob/duelarcade/internal/match"
	"github.com/robalobadob/duelarcade/internal/memory"
	"github.com/robalobadob/duelarcade/internal/showdown"
	"github.com/robalobadob/duelarcade/internal/tictactoe"
	"github.com/robalobadob/duelarcade/internal/wordbattle"
	"github.com/robalobadob/duelarcade/internal/words"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	return registryWithClock(t, time.Hour)
}

func registryWithClock(t *testing.T, interval time.Duration) *Registry {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRegistry(ctx, Options{
		Secret:   "test",
		Interval: interval,
		Dict:     words.FromWords([]string{"cat", "act", "dog"}),
	})
	t.Cleanup(func() {
		cancel()
		r.Close()
	})
	return r
}

func create(t *testing.T, r *Registry, game, cfg string) *Session {
	t.Helper()
	var raw json.RawMessage
	if cfg != "" {
		raw = json.RawMessage(cfg)
	}
	s, err := r.Create(context.Background(), game, raw)
	require.NoError(t, err)
	return s
}

func act(t *testing.T, s *Session, seat match.Player, body string) {
	t.Helper()
	_, err := s.Apply(seat, json.RawMessage(body))
	require.NoError(t, err)
}

func TestEveryCatalogGameHasAFactory(t *testing.T) {
	r := newRegistry(t)
	for _, id := range catalog.IDs() {
		s := create(t, r, id, "")
		v := s.View()
		assert.Equal(t, id, v.Game)
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.Name)
		assert.Equal(t, 1, v.Games)
		assert.Equal(t, match.Score{}, v.Score)
		assert.False(t, v.Outcome.Status.Terminal(), id)

		g, _ := catalog.Lookup(id)
		assert.Equal(t, g.Timed, v.Timed, id)
	}
	_, err := r.Create(context.Background(), "checkers", nil)
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestSeatDecidesThePlayer(t *testing.T) {
	r := newRegistry(t)
	s := create(t, r, catalog.TicTacToe, "")

	// The body claims seat two; the caller's seat wins.
	act(t, s, match.PlayerOne, `{"player":"two","cell":0}`)
	state := s.View().State.(tictactoe.State)
	assert.Equal(t, tictactoe.X, state.Board[0])

	_, err := s.Apply(match.PlayerOne, json.RawMessage(`{"cell":1}`))
	assert.ErrorIs(t, err, match.ErrNotYourTurn)

	_, err = s.Apply(match.PlayerTwo, json.RawMessage(`{"cell":`))
	assert.ErrorIs(t, err, ErrMalformedAction)
}

func TestScoresSurviveNewGameUntilReset(t *testing.T) {
	r := newRegistry(t)
	s := create(t, r, catalog.TicTacToe, "")
	for i, cell := range []int{0, 3, 1, 4, 2} {
		seat := match.PlayerOne
		if i%2 == 1 {
			seat = match.PlayerTwo
		}
		act(t, s, seat, fmt.Sprintf(`{"cell":%d}`, cell))
	}
	v := s.View()
	require.Equal(t, match.Won, v.Outcome.Status)
	assert.Equal(t, 1, v.Score.One)

	_, err := s.Apply(match.PlayerTwo, json.RawMessage(`{"cell":5}`))
	assert.ErrorIs(t, err, match.ErrGameOver)

	v = s.NewGame()
	assert.Equal(t, 2, v.Games)
	assert.Equal(t, 1, v.Score.One)
	assert.Equal(t, match.InProgress, v.Outcome.Status)

	v = s.ResetScores()
	assert.Equal(t, match.Score{}, v.Score)
	assert.Equal(t, 2, v.Games)
}

func TestChessMovesAndAlgebraicInput(t *testing.T) {
	r := newRegistry(t)
	s := create(t, r, catalog.Chess, "")

	moves, err := s.Moves("e2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"e3", "e4"}, moves)

	all, err := s.Moves("")
	require.NoError(t, err)
	assert.Len(t, all, 10, "eight pawns and two knights can move")

	act(t, s, match.PlayerOne, `{"from":"e2","to":"e4"}`)
	_, err = s.Apply(match.PlayerTwo, json.RawMessage(`{"from":"z9","to":"e5"}`))
	assert.True(t, match.IsInvalid(err))

	_, err = s.Moves("k0")
	assert.Error(t, err)
}

func TestCustomChessPosition(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Create(context.Background(), catalog.Chess, json.RawMessage(`{"fen":"not a position"}`))
	assert.Error(t, err)

	s := create(t, r, catalog.Chess, `{"fen":"7k/8/6K1/8/8/8/8/5Q2 w - - 0 1"}`)
	act(t, s, match.PlayerOne, `{"from":"f1","to":"f7"}`)
	assert.Equal(t, match.Stalemate, s.View().Outcome.Status)
	assert.Equal(t, 1, s.View().Score.Draws)
}

func TestBadConfig(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Create(context.Background(), catalog.MemoryMatch, json.RawMessage(`{"pairs":`))
	assert.ErrorIs(t, err, ErrBadConfig)

	_, err = r.Create(context.Background(), catalog.DotsAndBoxes, json.RawMessage(`{"size":-1}`))
	assert.Error(t, err)
}

func TestExplicitSeedReplays(t *testing.T) {
	r := newRegistry(t)
	a := create(t, r, catalog.MemoryMatch, `{"seed":7}`)
	b := create(t, r, catalog.MemoryMatch, `{"seed":7}`)
	deck := func(s *Session) []memory.Card { return s.View().State.(memory.State).Cards }
	assert.Equal(t, deck(a), deck(b))

	first := deck(a)
	a.NewGame()
	b.NewGame()
	assert.Equal(t, deck(a), deck(b))
	assert.NotEqual(t, first, deck(a), "a new game deals a new deck")
}

func TestDerivedSeeds(t *testing.T) {
	assert.Equal(t, DeriveSeed("k", "id", 0), DeriveSeed("k", "id", 0))
	assert.NotEqual(t, DeriveSeed("k", "id", 0), DeriveSeed("k", "id", 1))
	assert.NotEqual(t, DeriveSeed("k", "id", 0), DeriveSeed("other", "id", 0))
}

func TestWordBattleUsesRegistryDictionary(t *testing.T) {
	r := newRegistry(t)
	s := create(t, r, catalog.WordBattle, `{"letters":"CATDOGXXXXXX"}`)
	act(t, s, match.PlayerOne, `{"word":"cat"}`)

	_, err := s.Apply(match.PlayerTwo, json.RawMessage(`{"word":"cog"}`))
	assert.ErrorIs(t, err, wordbattle.ErrNotAWord)
	assert.True(t, match.IsRejected(err))

	state := s.View().State.(wordbattle.State)
	assert.Equal(t, []string{"cat"}, state.Words[0])
}

func TestShowdownMoves(t *testing.T) {
	r := newRegistry(t)
	s := create(t, r, catalog.StrategyShowdown, "")
	moves, err := s.Moves("one")
	require.NoError(t, err)
	assert.Len(t, moves, 4)

	act(t, s, match.PlayerOne, `{"action":"special"}`)
	moves, _ = s.Moves("one")
	assert.Equal(t, []showdown.Action{}, moves, "already selected this round")

	_, err = s.Moves("three")
	assert.Error(t, err)
}

func TestMovesUnsupported(t *testing.T) {
	r := newRegistry(t)
	s := create(t, r, catalog.RockPaperScissors, "")
	_, err := s.Moves("")
	assert.ErrorIs(t, err, ErrNoMoves)
}

func TestClockRunsTimedGamesToTheEnd(t *testing.T) {
	r := registryWithClock(t, time.Millisecond)
	s := create(t, r, catalog.NumberDuel, `{"questions":1,"seconds":2}`)
	require.Eventually(t, func() bool {
		return s.View().Outcome.Status.Terminal()
	}, 2*time.Second, 2*time.Millisecond)
	assert.Equal(t, match.Draw, s.View().Outcome.Status)
	assert.Equal(t, 1, s.View().Score.Draws)

	require.NoError(t, r.Delete(context.Background(), s.ID))
	_, err := r.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(context.Background(), s.ID), ErrNotFound)
}

func TestList(t *testing.T) {
	r := newRegistry(t)
	create(t, r, catalog.TicTacToe, "")
	create(t, r, catalog.ConnectFour, "")
	all, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
