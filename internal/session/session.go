// internal/session/session.go
//
// Registry owns live sessions: one Engine per session plus, for timed games,
// a clock goroutine feeding it one tick per interval.
//
// Responsibilities:
//   - Create sessions from a catalog id and a JSON config.
//   - Name sessions (uuid id, petname display name).
//   - Start and stop per-session clocks.
//   - Log lifecycle events (created, finished, deleted).

package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/duelarcade/internal/clock"
	"github.com/robalobadob/duelarcade/internal/match"
	"github.com/robalobadob/duelarcade/internal/store"
	"github.com/robalobadob/duelarcade/internal/words"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrBadConfig   = errors.New("bad game config")
	ErrNotFound    = store.ErrNotFound
)

type Session struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Game    string    `json:"game"`
	Created time.Time `json:"created"`

	engine Engine
	ticker *clock.Ticker

	mu       sync.Mutex
	finished bool
}

// View is the JSON shape of a session.
type View struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Game    string    `json:"game"`
	Created time.Time `json:"created"`
	Timed   bool      `json:"timed"`
	Snapshot
}

func (s *Session) View() View {
	return View{
		ID:       s.ID,
		Name:     s.Name,
		Game:     s.Game,
		Created:  s.Created,
		Timed:    s.engine.Timed(),
		Snapshot: s.engine.Snapshot(),
	}
}

// Apply submits a raw action for seat.
func (s *Session) Apply(seat match.Player, raw json.RawMessage) (any, error) {
	st, err := s.engine.Apply(seat, raw)
	if err == nil {
		s.noteOutcome()
	}
	return st, err
}

// Tick advances the clock by one second.
func (s *Session) Tick() (any, bool) {
	st, ok := s.engine.Tick()
	if ok {
		s.noteOutcome()
	}
	return st, ok
}

func (s *Session) NewGame() View {
	s.engine.NewGame()
	s.mu.Lock()
	s.finished = false
	s.mu.Unlock()
	log.Info().Str("session", s.ID).Str("game", s.Game).Msg("new game")
	return s.View()
}

func (s *Session) ResetScores() View {
	s.engine.ResetScores()
	return s.View()
}

func (s *Session) Moves(query string) (any, error) { return s.engine.Moves(query) }

// noteOutcome logs the first time a board reaches a terminal status.
func (s *Session) noteOutcome() {
	snap := s.engine.Snapshot()
	if !snap.Outcome.Status.Terminal() {
		return
	}
	s.mu.Lock()
	already := s.finished
	s.finished = true
	s.mu.Unlock()
	if already {
		return
	}
	log.Info().
		Str("session", s.ID).
		Str("game", s.Game).
		Str("status", string(snap.Outcome.Status)).
		Str("winner", snap.Outcome.Winner.String()).
		Msg("game finished")
}

func (s *Session) stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

// Registry is safe for concurrent use.
type Registry struct {
	ctx      context.Context
	store    store.Store[*Session]
	dict     words.Dictionary
	secret   string
	interval time.Duration
	now      func() time.Time
}

type Options struct {
	Store    store.Store[*Session]
	Dict     words.Dictionary
	Secret   string
	Interval time.Duration
}

// NewRegistry builds a registry. Clocks stop when ctx is done.
func NewRegistry(ctx context.Context, opt Options) *Registry {
	if opt.Store == nil {
		opt.Store = store.NewMemoryStore[*Session]()
	}
	if opt.Dict == nil {
		opt.Dict = words.Embedded()
	}
	if opt.Interval <= 0 {
		opt.Interval = time.Second
	}
	return &Registry{
		ctx:      ctx,
		store:    opt.Store,
		dict:     opt.Dict,
		secret:   opt.Secret,
		interval: opt.Interval,
		now:      time.Now,
	}
}

// Dictionary exposes the word-battle dictionary for diagnostics.
func (r *Registry) Dictionary() words.Dictionary { return r.dict }

// Create starts a session for game with the given JSON config.
func (r *Registry) Create(ctx context.Context, game string, cfg json.RawMessage) (*Session, error) {
	f, ok := factories[game]
	if !ok {
		return nil, ErrUnknownGame
	}
	id := uuid.NewString()
	eng, err := f(params{id: id, secret: r.secret, raw: cfg, dict: r.dict})
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:      id,
		Name:    petname.Generate(2, "-"),
		Game:    game,
		Created: r.now().UTC(),
		engine:  eng,
	}
	if eng.Timed() {
		s.ticker = clock.Start(r.ctx, r.interval, func() { s.Tick() })
	}
	if err := r.store.Save(ctx, id, s); err != nil {
		s.stop()
		return nil, err
	}
	log.Info().Str("session", id).Str("name", s.Name).Str("game", game).Msg("session created")
	return s, nil
}

func (r *Registry) Get(ctx context.Context, id string) (*Session, error) {
	return r.store.Get(ctx, id)
}

func (r *Registry) List(ctx context.Context) ([]*Session, error) {
	return r.store.List(ctx)
}

// Delete discards a session and stops its clock.
func (r *Registry) Delete(ctx context.Context, id string) error {
	s, err := r.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.stop()
	log.Info().Str("session", id).Str("game", s.Game).Msg("session deleted")
	return nil
}

// Close stops every clock. Sessions stay readable.
func (r *Registry) Close() {
	all, _ := r.store.List(context.Background())
	for _, s := range all {
		s.stop()
	}
}
