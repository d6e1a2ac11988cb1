package match

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// raceState is a toy game: players alternate adding 1 to a counter, and
// whoever reaches the target wins. A clock of N ticks ends it as a draw.
type raceState struct {
	Count    int
	Turn     Player
	Winner   Player
	TimeLeft int
}

type raceRules struct{ target int }

func (r raceRules) Validate(s raceState, p Player) error {
	if !p.Valid() {
		return ErrUnknownPlayer
	}
	if p != s.Turn {
		return ErrNotYourTurn
	}
	return nil
}

func (r raceRules) Apply(s raceState, p Player) raceState {
	s.Count++
	if s.Count >= r.target {
		s.Winner = p
		return s
	}
	s.Turn = s.Turn.Other()
	return s
}

func (r raceRules) Outcome(s raceState) Outcome {
	if s.Winner.Valid() {
		return Decisive(s.Winner)
	}
	if s.TimeLeft == 0 {
		return Tied()
	}
	return Ongoing
}

type timedRaceRules struct{ raceRules }

func (r timedRaceRules) Tick(s raceState) raceState {
	s.TimeLeft--
	return s
}

func newRace() raceState { return raceState{Turn: PlayerOne, TimeLeft: 3} }

func TestApplyRejectsWrongTurnWithoutMutation(t *testing.T) {
	m := New[raceState, Player](raceRules{target: 3}, newRace)
	before := m.State()

	got, err := m.Apply(PlayerTwo)
	require.ErrorIs(t, err, ErrNotYourTurn)
	assert.True(t, IsInvalid(err))
	assert.Equal(t, before, got)
	assert.Equal(t, before, m.State())
}

func TestScoreRecordedOnceAndSurvivesNewGame(t *testing.T) {
	m := New[raceState, Player](raceRules{target: 3}, newRace)
	for _, p := range []Player{PlayerOne, PlayerTwo, PlayerOne} {
		_, err := m.Apply(p)
		require.NoError(t, err)
	}
	assert.Equal(t, Decisive(PlayerOne), m.Outcome())

	_, err := m.Apply(PlayerTwo)
	require.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, Score{One: 1}, m.Score())

	fresh := m.NewGame()
	assert.Equal(t, newRace(), fresh)
	assert.Equal(t, Score{One: 1}, m.Score(), "score survives a board reset")
	assert.Equal(t, 2, m.Games())

	_, err = m.Apply(PlayerOne)
	require.NoError(t, err)
	m.ResetScores()
	assert.Equal(t, Score{}, m.Score())
	assert.Equal(t, 1, m.State().Count, "board survives a score reset")
}

func TestTickFunnelsIntoSameRecording(t *testing.T) {
	m := New[raceState, Player](timedRaceRules{raceRules{target: 10}}, newRace)
	require.True(t, m.Timed())

	for i := 0; i < 3; i++ {
		_, ok := m.Tick()
		require.True(t, ok)
	}
	assert.Equal(t, Tied(), m.Outcome())
	assert.Equal(t, Score{Draws: 1}, m.Score())

	_, ok := m.Tick()
	assert.False(t, ok, "no ticks after the game is over")
}

func TestTickWithoutClock(t *testing.T) {
	m := New[raceState, Player](raceRules{target: 3}, newRace)
	assert.False(t, m.Timed())
	_, ok := m.Tick()
	assert.False(t, ok)
}

func TestConcurrentAppliesKeepTurnOrder(t *testing.T) {
	m := New[raceState, Player](raceRules{target: 1000}, func() raceState {
		return raceState{Turn: PlayerOne, TimeLeft: -1}
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _, _ = m.Apply(PlayerOne) }()
		go func() { defer wg.Done(); _, _ = m.Apply(PlayerTwo) }()
	}
	wg.Wait()

	s := m.State()
	if s.Count%2 == 0 {
		assert.Equal(t, PlayerOne, s.Turn)
	} else {
		assert.Equal(t, PlayerTwo, s.Turn)
	}
}

func TestActionErrorKinds(t *testing.T) {
	rej := Rejected("too short")
	assert.True(t, IsRejected(rej))
	assert.False(t, IsInvalid(rej))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "validation_rejection", KindOf(rej).String())
}

func TestPlayerJSON(t *testing.T) {
	b, err := json.Marshal(struct{ P Player }{PlayerTwo})
	require.NoError(t, err)
	assert.JSONEq(t, `{"P":"two"}`, string(b))

	var v struct{ P Player }
	require.NoError(t, json.Unmarshal([]byte(`{"P":1}`), &v))
	assert.Equal(t, PlayerOne, v.P)
	require.NoError(t, json.Unmarshal([]byte(`{"P":"two"}`), &v))
	assert.Equal(t, PlayerTwo, v.P)
	assert.Error(t, json.Unmarshal([]byte(`{"P":"three"}`), &v))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Decisive(PlayerOne), Compare(3, 1))
	assert.Equal(t, Decisive(PlayerTwo), Compare(0, 1))
	assert.Equal(t, Tied(), Compare(2, 2))
}
