// Package numberduel is the numeric quiz preset: ten questions, fifteen
// seconds each, a bonus point for correct answers inside five seconds.
package numberduel

import (
	"math/rand/v2"

	"github.com/robalobadob/duelarcade/internal/quiz"
)

const (
	DefaultQuestions = 10
	DefaultSeconds   = 15
	BonusUnder       = 5
)

type Config struct {
	Questions int    `json:"questions,omitempty"`
	Seconds   int    `json:"seconds,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
}

func New(cfg Config) (quiz.State, error) {
	if cfg.Questions == 0 {
		cfg.Questions = DefaultQuestions
	}
	if cfg.Seconds == 0 {
		cfg.Seconds = DefaultSeconds
	}
	return quiz.New(quiz.Config{
		Questions:  cfg.Questions,
		Seconds:    cfg.Seconds,
		BonusUnder: BonusUnder,
		Seed:       cfg.Seed,
	}, Generate)
}

// Generate picks one of the five kinds uniformly.
func Generate(rng *rand.Rand) quiz.Challenge {
	switch rng.IntN(5) {
	case 0:
		return arithmetic(rng)
	case 1:
		return sequences[rng.IntN(len(sequences))]
	case 2:
		return logic[rng.IntN(len(logic))]
	case 3:
		return comparisons[rng.IntN(len(comparisons))]
	default:
		return patterns[rng.IntN(len(patterns))]
	}
}

func between(rng *rand.Rand, lo, hi int) int { return lo + rng.IntN(hi-lo+1) }

func arithmetic(rng *rand.Rand) quiz.Arithmetic {
	q := quiz.Arithmetic{Tag: quiz.KindArithmetic}
	switch rng.IntN(4) {
	case 0:
		q.Op, q.A, q.B = quiz.Add, between(rng, 1, 100), between(rng, 1, 100)
	case 1:
		q.Op, q.A, q.B = quiz.Sub, between(rng, 50, 149), between(rng, 1, 50)
	case 2:
		q.Op, q.A, q.B = quiz.Mul, between(rng, 1, 15), between(rng, 1, 15)
	default:
		answer, b := between(rng, 1, 20), between(rng, 2, 11)
		q.Op, q.A, q.B = quiz.Div, answer*b, b
	}
	return q
}

var sequences = []quiz.Challenge{
	quiz.NumberSequence{Tag: quiz.KindSequence, Terms: []int{2, 4, 6, 8}, Next: 10},
	quiz.NumberSequence{Tag: quiz.KindSequence, Terms: []int{1, 4, 9, 16}, Next: 25},
	quiz.NumberSequence{Tag: quiz.KindSequence, Terms: []int{3, 6, 12, 24}, Next: 48},
	quiz.NumberSequence{Tag: quiz.KindSequence, Terms: []int{1, 1, 2, 3, 5}, Next: 8},
	quiz.NumberSequence{Tag: quiz.KindSequence, Terms: []int{10, 20, 15, 25, 20}, Next: 30},
	quiz.NumberSequence{Tag: quiz.KindSequence, Terms: []int{100, 50, 25}, Next: 12},
	quiz.NumberSequence{Tag: quiz.KindSequence, Terms: []int{1, 3, 7, 15}, Next: 31},
}

var logic = []quiz.Challenge{
	quiz.Riddle{Tag: quiz.KindLogic, Question: "If 5 cats catch 5 mice in 5 minutes, how many cats catch 100 mice in 100 minutes?", Value: 5},
	quiz.Riddle{Tag: quiz.KindLogic, Question: "A farmer has 17 sheep. All but 9 die. How many are left?", Value: 9},
	quiz.Riddle{Tag: quiz.KindLogic, Question: "How many months have 28 days?", Value: 12},
	quiz.Riddle{Tag: quiz.KindLogic, Question: "If you have 3 apples and take away 2, how many do you have?", Value: 2},
	quiz.Riddle{Tag: quiz.KindLogic, Question: "What comes next: 1, 11, 21, 1211, 111221, ?", Value: 312211},
	quiz.Riddle{Tag: quiz.KindLogic, Question: "A clock shows 3:15. What is the angle between the hands? (in degrees, rounded down)", Value: 7},
	quiz.Riddle{Tag: quiz.KindLogic, Question: "How many triangles are in a pentagram (5-pointed star)?", Value: 35},
}

var comparisons = []quiz.Challenge{
	quiz.Riddle{Tag: quiz.KindComparison, Question: "Which is larger: 2^10 or 10^2?", Value: 1024},
	quiz.Riddle{Tag: quiz.KindComparison, Question: "How many seconds in 2 hours?", Value: 7200},
	quiz.Riddle{Tag: quiz.KindComparison, Question: "What is 15% of 200?", Value: 30},
	quiz.Riddle{Tag: quiz.KindComparison, Question: "How many minutes in a day?", Value: 1440},
	quiz.Riddle{Tag: quiz.KindComparison, Question: "What is the square root of 144?", Value: 12},
	quiz.Riddle{Tag: quiz.KindComparison, Question: "How many degrees in a circle?", Value: 360},
	quiz.Riddle{Tag: quiz.KindComparison, Question: "What is 7 factorial (7!)?", Value: 5040},
}

var patterns = []quiz.Challenge{
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{2, 6, 18, 54}, Next: 162},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{1, 4, 13, 40}, Next: 121},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{3, 8, 18, 33}, Next: 53},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{5, 11, 23, 47}, Next: 95},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{2, 5, 11, 23}, Next: 47},
	quiz.NumberSequence{Tag: quiz.KindPattern, Terms: []int{1, 2, 6, 24}, Next: 120},
}
