// internal/match/match.go
//
// Match drives any two-player rules engine through a small capability
// interface. It owns the current state, the match-level score, and the
// single-writer lock that keeps submit and timeout from interleaving.
//
// Responsibilities:
//   - Reject actions once the state is terminal.
//   - Validate, then apply, an action; the previous state is never mutated.
//   - Record a finished game into the Score exactly once.
//   - Keep "new game" and "reset scores" as independent entry points.

package match

import "sync"

// Rules is implemented by each game. Validate must not mutate state and Apply
// must return a fresh state; Apply is only called after Validate succeeds.
type Rules[S any, A any] interface {
	Validate(state S, action A) error
	Apply(state S, action A) S
	Outcome(state S) Outcome
}

// Ticker is implemented by time-boxed games. Tick advances the clock by one
// unit and performs any timeout transition.
type Ticker[S any] interface {
	Tick(state S) S
}

// Match is safe for concurrent use.
type Match[S any, A any] struct {
	mu       sync.Mutex
	rules    Rules[S, A]
	newState func() S
	state    S
	score    Score
	recorded bool
	games    int
}

// New starts a match with a fresh state from newState.
func New[S any, A any](rules Rules[S, A], newState func() S) *Match[S, A] {
	m := &Match[S, A]{rules: rules, newState: newState}
	m.state = newState()
	m.games = 1
	return m
}

// State returns the current state.
func (m *Match[S, A]) State() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Score returns the match-level counters.
func (m *Match[S, A]) Score() Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Outcome reports the outcome of the current state.
func (m *Match[S, A]) Outcome() Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rules.Outcome(m.state)
}

// Snapshot reads the state, score and game count under one lock.
func (m *Match[S, A]) Snapshot() (S, Score, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.score, m.games
}

// Games returns how many boards have been started in this match.
func (m *Match[S, A]) Games() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.games
}

// Apply validates and applies action. On error the state is unchanged and the
// unchanged state is returned alongside the error.
func (m *Match[S, A]) Apply(action A) (S, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rules.Outcome(m.state).Status.Terminal() {
		return m.state, ErrGameOver
	}
	if err := m.rules.Validate(m.state, action); err != nil {
		return m.state, err
	}
	m.commit(m.rules.Apply(m.state, action))
	return m.state, nil
}

// Tick advances a time-boxed game by one unit. The second result is false
// when the game has no clock or is already over.
func (m *Match[S, A]) Tick() (S, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := any(m.rules).(Ticker[S])
	if !ok || m.rules.Outcome(m.state).Status.Terminal() {
		return m.state, false
	}
	m.commit(t.Tick(m.state))
	return m.state, true
}

// Timed reports whether the underlying rules implement Ticker.
func (m *Match[S, A]) Timed() bool {
	_, ok := any(m.rules).(Ticker[S])
	return ok
}

// NewGame discards the board and starts over. The score is kept.
func (m *Match[S, A]) NewGame() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = m.newState()
	m.recorded = false
	m.games++
	return m.state
}

// ResetScores clears the score. The board is kept.
func (m *Match[S, A]) ResetScores() Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = Score{}
	return m.score
}

func (m *Match[S, A]) commit(next S) {
	m.state = next
	if m.recorded {
		return
	}
	if o := m.rules.Outcome(next); o.Status.Terminal() {
		m.score.Record(o)
		m.recorded = true
	}
}
