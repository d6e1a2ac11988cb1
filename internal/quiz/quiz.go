// internal/quiz/quiz.go
//
// Quiz is a timed question-and-answer duel. Players alternate, one question
// each; a correct answer earns a point, plus a speed bonus when it comes in
// early enough. When a question's clock runs out the current player simply
// gets nothing, via the same settle path a submitted answer takes.

package quiz

import (
	"math/rand/v2"

	"github.com/robalobadob/duelarcade/internal/match"
)

// Generator draws one challenge.
type Generator func(rng *rand.Rand) Challenge

type Config struct {
	Questions  int    `json:"questions,omitempty"`
	Seconds    int    `json:"seconds,omitempty"`
	BonusUnder int    `json:"bonusUnder,omitempty"`
	Seed       uint64 `json:"seed,omitempty"`
}

var (
	ErrBadQuestions = match.Invalid("question count must be between 1 and 50")
	ErrBadSeconds   = match.Invalid("seconds per question must be positive")
)

type Verdict string

const (
	Correct   Verdict = "correct"
	Incorrect Verdict = "incorrect"
	Timeout   Verdict = "timeout"
)

// Result records how a question was settled.
type Result struct {
	Round    int          `json:"round"`
	Player   match.Player `json:"player"`
	Verdict  Verdict      `json:"verdict"`
	Points   int          `json:"points"`
	Solution string       `json:"solution"`
}

// Answer submits Value for the current question.
type Answer struct {
	Player match.Player `json:"player"`
	Value  string       `json:"value"`
}

type State struct {
	Round      int          `json:"round"`
	Total      int          `json:"total"`
	Seconds    int          `json:"seconds"`
	BonusUnder int          `json:"bonusUnder"`
	TimeLeft   int          `json:"timeLeft"`
	Turn       match.Player `json:"turn"`
	Scores     [2]int       `json:"scores"`
	Current    *View        `json:"current"`
	Last       *Result      `json:"last,omitempty"`
	Status     match.Status `json:"status"`
	Winner     match.Player `json:"winner"`

	challenges []Challenge
}

// New draws every question up front from cfg.Seed so the game is
// reproducible and the transitions stay pure.
func New(cfg Config, gen Generator) (State, error) {
	if cfg.Questions < 1 || cfg.Questions > 50 {
		return State{}, ErrBadQuestions
	}
	if cfg.Seconds < 1 {
		return State{}, ErrBadSeconds
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5eed))
	chs := make([]Challenge, cfg.Questions)
	for i := range chs {
		chs[i] = gen(rng)
	}

	s := State{
		Round:      1,
		Total:      cfg.Questions,
		Seconds:    cfg.Seconds,
		BonusUnder: cfg.BonusUnder,
		TimeLeft:   cfg.Seconds,
		Turn:       match.PlayerOne,
		Status:     match.InProgress,
		challenges: chs,
	}
	v := Describe(chs[0])
	s.Current = &v
	return s, nil
}

// Challenge returns the question currently being asked, or nil once the
// game is over.
func (s State) Challenge() Challenge {
	if s.Status.Terminal() || s.Round < 1 || s.Round > len(s.challenges) {
		return nil
	}
	return s.challenges[s.Round-1]
}

// Elapsed is how many whole seconds the current question has been open.
func (s State) Elapsed() int { return s.Seconds - s.TimeLeft }

func Validate(s State, a Answer) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !a.Player.Valid():
		return match.ErrUnknownPlayer
	case a.Player != s.Turn:
		return match.ErrNotYourTurn
	}
	return nil
}

func Apply(s State, a Answer) (State, error) {
	if err := Validate(s, a); err != nil {
		return s, err
	}
	return settle(s, &a.Value), nil
}

// Tick takes a second off the current question; at zero it is settled as a
// timeout.
func Tick(s State) State {
	if s.Status.Terminal() {
		return s
	}
	s.TimeLeft--
	if s.TimeLeft > 0 {
		return s
	}
	s.TimeLeft = 0
	return settle(s, nil)
}

// settle scores the current question for the current player and moves on.
// A nil answer means the clock ran out.
func settle(s State, answer *string) State {
	ch := s.Challenge()
	r := Result{Round: s.Round, Player: s.Turn, Solution: ch.Solution()}

	switch {
	case answer == nil:
		r.Verdict = Timeout
	case ch.Judge(*answer):
		r.Verdict = Correct
		r.Points = 1
		if s.BonusUnder > 0 && s.Elapsed() < s.BonusUnder {
			r.Points++
		}
	default:
		r.Verdict = Incorrect
	}

	s.Scores[s.Turn.Index()] += r.Points
	s.Last = &r
	s.Turn = s.Turn.Other()

	if s.Round >= s.Total {
		o := match.Compare(s.Scores[0], s.Scores[1])
		s.Status, s.Winner = o.Status, o.Winner
		s.Current = nil
		return s
	}
	s.Round++
	s.TimeLeft = s.Seconds
	v := Describe(s.challenges[s.Round-1])
	s.Current = &v
	return s
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

// Rules plugs any quiz preset into match.Match.
type Rules struct{}

func (Rules) Validate(s State, a Answer) error { return Validate(s, a) }
func (Rules) Apply(s State, a Answer) State    { return settle(s, &a.Value) }
func (Rules) Outcome(s State) match.Outcome    { return s.Outcome() }
func (Rules) Tick(s State) State               { return Tick(s) }
