// internal/wordbattle/wordbattle.go
//
// Word-battle: both players build words from one shared pool of twelve
// letters while a shared clock runs down. Accepted words score by length and
// pass the turn; rejected words change nothing.
//
// Validation order (first failure wins):
//   1. shorter than MinLength
//   2. not in the dictionary
//   3. not formable from the letter pool (each letter used once)
//   4. already played by the submitter
//   5. already played by the opponent

package wordbattle

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/robalobadob/duelarcade/internal/match"
)

// Dictionary answers whether a word is playable. Lookups are case-insensitive.
type Dictionary interface {
	Contains(word string) bool
}

const (
	DefaultDuration = 180
	LetterCount     = 12
	MinLength       = 3
	minVowels       = 3
	vowelOdds       = 0.3
)

const (
	vowels     = "AEIOU"
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
)

var (
	ErrTooShort       = match.Rejected("word must be at least 3 letters long")
	ErrNotAWord       = match.Rejected("not a valid English word")
	ErrNotFormable    = match.Rejected("cannot form this word with the available letters")
	ErrAlreadyUsed    = match.Rejected("word already used")
	ErrUsedByOpponent = match.Rejected("opponent already used this word")

	ErrBadDuration = match.Invalid("duration must be positive")
	ErrBadLetters  = match.Invalid("letters must be A-Z only")
)

type Config struct {
	Duration int    `json:"duration,omitempty"`
	Letters  string `json:"letters,omitempty"`
	Seed     uint64 `json:"seed,omitempty"`
}

type Submit struct {
	Player match.Player `json:"player"`
	Word   string       `json:"word"`
}

// Entry is one accepted word.
type Entry struct {
	Player match.Player `json:"player"`
	Word   string       `json:"word"`
	Points int          `json:"points"`
}

type State struct {
	Letters  []string     `json:"letters"`
	Duration int          `json:"duration"`
	TimeLeft int          `json:"timeLeft"`
	Turn     match.Player `json:"turn"`
	Scores   [2]int       `json:"scores"`
	Words    [2][]string  `json:"words"`
	Log      []Entry      `json:"log"`
	Status   match.Status `json:"status"`
	Winner   match.Player `json:"winner"`
}

func New(cfg Config) (State, error) {
	d := cfg.Duration
	if d == 0 {
		d = DefaultDuration
	}
	if d < 0 {
		return State{}, ErrBadDuration
	}

	var letters []string
	if cfg.Letters != "" {
		for _, r := range strings.ToUpper(cfg.Letters) {
			if r < 'A' || r > 'Z' {
				return State{}, ErrBadLetters
			}
			letters = append(letters, string(r))
		}
	} else {
		letters = GenerateLetters(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1)))
	}

	return State{
		Letters:  letters,
		Duration: d,
		TimeLeft: d,
		Turn:     match.PlayerOne,
		Words:    [2][]string{{}, {}},
		Log:      []Entry{},
		Status:   match.InProgress,
	}, nil
}

// GenerateLetters draws three vowels, then nine letters that are vowels with
// probability 0.3, and shuffles the lot.
func GenerateLetters(rng *rand.Rand) []string {
	out := make([]string, 0, LetterCount)
	pick := func(set string) string { return string(set[rng.IntN(len(set))]) }
	for i := 0; i < minVowels; i++ {
		out = append(out, pick(vowels))
	}
	for i := minVowels; i < LetterCount; i++ {
		if rng.Float64() < vowelOdds {
			out = append(out, pick(vowels))
		} else {
			out = append(out, pick(consonants))
		}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// CanForm reports whether word can be spelled from letters, each letter used
// at most once. Case is ignored.
func CanForm(word string, letters []string) bool {
	counts := map[rune]int{}
	for _, l := range letters {
		for _, r := range strings.ToUpper(l) {
			counts[r]++
		}
	}
	for _, r := range strings.ToUpper(word) {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

// Points is floor(len × multiplier): ×2 from six letters, ×1.5 from four.
func Points(word string) int {
	n := len([]rune(word))
	switch {
	case n >= 6:
		return n * 2
	case n >= 4:
		return n * 3 / 2
	default:
		return n
	}
}

func normalize(word string) string { return strings.ToLower(strings.TrimSpace(word)) }

// Validate checks a submission against s using dict.
func Validate(s State, a Submit, dict Dictionary) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !a.Player.Valid():
		return match.ErrUnknownPlayer
	case a.Player != s.Turn:
		return match.ErrNotYourTurn
	}

	w := normalize(a.Word)
	me, them := a.Player.Index(), a.Player.Other().Index()
	switch {
	case len([]rune(w)) < MinLength:
		return ErrTooShort
	case dict == nil || !dict.Contains(w):
		return ErrNotAWord
	case !CanForm(w, s.Letters):
		return ErrNotFormable
	case slices.Contains(s.Words[me], w):
		return ErrAlreadyUsed
	case slices.Contains(s.Words[them], w):
		return ErrUsedByOpponent
	}
	return nil
}

// Apply scores an accepted word and passes the turn.
func Apply(s State, a Submit, dict Dictionary) (State, error) {
	if err := Validate(s, a, dict); err != nil {
		return s, err
	}
	return accept(s, a), nil
}

func accept(s State, a Submit) State {
	w := normalize(a.Word)
	pts := Points(w)
	i := a.Player.Index()

	s.Scores[i] += pts
	s.Words[i] = append(slices.Clip(s.Words[i]), w)
	s.Log = append(slices.Clip(s.Log), Entry{Player: a.Player, Word: w, Points: pts})
	s.Turn = s.Turn.Other()
	return s
}

// Tick takes one second off the clock. At zero the game ends on points.
func Tick(s State) State {
	if s.Status.Terminal() {
		return s
	}
	s.TimeLeft--
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		o := match.Compare(s.Scores[0], s.Scores[1])
		s.Status, s.Winner = o.Status, o.Winner
	}
	return s
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

// Rules binds a dictionary to the engine for use with match.Match.
type Rules struct {
	Dict Dictionary
}

func (r Rules) Validate(s State, a Submit) error { return Validate(s, a, r.Dict) }
func (Rules) Apply(s State, a Submit) State      { return accept(s, a) }
func (Rules) Outcome(s State) match.Outcome      { return s.Outcome() }
func (Rules) Tick(s State) State                 { return Tick(s) }
