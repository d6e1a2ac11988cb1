// Package lightning is the mixed mini-challenge quiz preset: ten rounds,
// thirty seconds each, drawing from pattern, math, reaction, memory and
// letter-sequence challenges.
package lightning

import (
	"math/rand/v2"
	"strings"

	"github.com/robalobadob/duelarcade/internal/quiz"
)

const (
	DefaultRounds  = 10
	DefaultSeconds = 30
	BonusUnder     = 5
)

type Config struct {
	Rounds  int    `json:"rounds,omitempty"`
	Seconds int    `json:"seconds,omitempty"`
	Seed    uint64 `json:"seed,omitempty"`
}

func New(cfg Config) (quiz.State, error) {
	if cfg.Rounds == 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.Seconds == 0 {
		cfg.Seconds = DefaultSeconds
	}
	return quiz.New(quiz.Config{
		Questions:  cfg.Rounds,
		Seconds:    cfg.Seconds,
		BonusUnder: BonusUnder,
		Seed:       cfg.Seed,
	}, Generate)
}

var Colors = []string{"red", "blue", "green", "yellow", "purple"}

var patterns = []quiz.Challenge{
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{1, 2, 3, 4}, Next: 5},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{2, 4, 6, 8}, Next: 10},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{1, 4, 9, 16}, Next: 25},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{5, 10, 15, 20}, Next: 25},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{1, 1, 2, 3, 5}, Next: 8},
}

var letterRuns = []quiz.Challenge{
	quiz.LetterSequence{Letters: []string{"A", "B", "C", "D"}, Next: "E"},
	quiz.LetterSequence{Letters: []string{"Z", "Y", "X", "W"}, Next: "V"},
	quiz.LetterSequence{Letters: []string{"A", "C", "E", "G"}, Next: "I"},
	quiz.LetterSequence{Letters: []string{"B", "D", "F", "H"}, Next: "J"},
}

// Generate picks one of the five mini-challenges uniformly.
func Generate(rng *rand.Rand) quiz.Challenge {
	switch rng.IntN(5) {
	case 0:
		return patterns[rng.IntN(len(patterns))]
	case 1:
		return mathChallenge(rng)
	case 2:
		return reaction(rng)
	case 3:
		return recall(rng)
	default:
		return letterRuns[rng.IntN(len(letterRuns))]
	}
}

func between(rng *rand.Rand, lo, hi int) int { return lo + rng.IntN(hi-lo+1) }

func mathChallenge(rng *rand.Rand) quiz.Arithmetic {
	q := quiz.Arithmetic{Tag: quiz.KindMath}
	switch rng.IntN(3) {
	case 0:
		q.Op, q.A, q.B = quiz.Add, between(rng, 1, 50), between(rng, 1, 50)
	case 1:
		q.Op, q.A, q.B = quiz.Sub, between(rng, 25, 74), between(rng, 1, 25)
	default:
		q.Op, q.A, q.B = quiz.Mul, between(rng, 1, 12), between(rng, 1, 12)
	}
	return q
}

// reaction draws word and ink independently, so they sometimes agree.
func reaction(rng *rand.Rand) quiz.ColorWord {
	word := Colors[rng.IntN(len(Colors))]
	ink := Colors[rng.IntN(len(Colors))]
	return quiz.ColorWord{Word: strings.ToUpper(word), Ink: ink}
}

func recall(rng *rand.Rand) quiz.Recall {
	digits := make([]int, between(rng, 4, 6))
	for i := range digits {
		digits[i] = between(rng, 1, 9)
	}
	return quiz.Recall{Digits: digits}
}
