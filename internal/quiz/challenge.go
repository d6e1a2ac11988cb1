// internal/quiz/challenge.go
//
// Challenge is a closed set of question variants. Each variant carries its
// own data and its own judging rule; the set is sealed by an unexported
// method so only this package can add variants.

package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind labels a challenge for display.
type Kind string

const (
	KindArithmetic Kind = "arithmetic"
	KindMath       Kind = "math"
	KindSequence   Kind = "sequence"
	KindPattern    Kind = "pattern"
	KindLogic      Kind = "logic"
	KindComparison Kind = "comparison"
	KindReaction   Kind = "reaction"
	KindMemory     Kind = "memory"
	KindLetters    Kind = "letter_sequence"
)

type Challenge interface {
	Kind() Kind
	Prompt() string
	// Judge reports whether answer is correct. Answers are trimmed and
	// compared case-insensitively where that makes sense.
	Judge(answer string) bool
	// Solution is the expected answer as text.
	Solution() string

	challenge()
}

func numeric(answer string, want int) bool {
	got, err := strconv.Atoi(strings.TrimSpace(answer))
	return err == nil && got == want
}

func textual(answer, want string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), want)
}

// Op is an arithmetic operator.
type Op string

const (
	Add Op = "+"
	Sub Op = "-"
	Mul Op = "×"
	Div Op = "÷"
)

// Arithmetic is "A op B". Division is always exact.
type Arithmetic struct {
	Tag  Kind
	A, B int
	Op   Op
}

func (a Arithmetic) Kind() Kind          { return a.Tag }
func (a Arithmetic) Prompt() string      { return fmt.Sprintf("%d %s %d", a.A, a.Op, a.B) }
func (a Arithmetic) Solution() string    { return strconv.Itoa(a.Value()) }
func (a Arithmetic) Judge(s string) bool { return numeric(s, a.Value()) }
func (Arithmetic) challenge()            {}

func (a Arithmetic) Value() int {
	switch a.Op {
	case Add:
		return a.A + a.B
	case Sub:
		return a.A - a.B
	case Mul:
		return a.A * a.B
	case Div:
		if a.B == 0 {
			return 0
		}
		return a.A / a.B
	default:
		return 0
	}
}

// NumberSequence asks for the term after Terms.
type NumberSequence struct {
	Tag   Kind
	Terms []int
	Next  int
}

func (n NumberSequence) Kind() Kind { return n.Tag }
func (n NumberSequence) Prompt() string {
	parts := make([]string, 0, len(n.Terms)+1)
	for _, t := range n.Terms {
		parts = append(parts, strconv.Itoa(t))
	}
	return strings.Join(append(parts, "?"), ", ")
}
func (n NumberSequence) Solution() string    { return strconv.Itoa(n.Next) }
func (n NumberSequence) Judge(s string) bool { return numeric(s, n.Next) }
func (NumberSequence) challenge()            {}

// Riddle is a worded question with a whole-number answer.
type Riddle struct {
	Tag      Kind
	Question string
	Value    int
}

func (r Riddle) Kind() Kind          { return r.Tag }
func (r Riddle) Prompt() string      { return r.Question }
func (r Riddle) Solution() string    { return strconv.Itoa(r.Value) }
func (r Riddle) Judge(s string) bool { return numeric(s, r.Value) }
func (Riddle) challenge()            {}

// ColorWord shows a color name printed in a different ink. The answer is the
// ink, not the word.
type ColorWord struct {
	Word string
	Ink  string
}

func (ColorWord) Kind() Kind            { return KindReaction }
func (c ColorWord) Prompt() string      { return c.Word }
func (c ColorWord) Solution() string    { return c.Ink }
func (c ColorWord) Judge(s string) bool { return textual(s, c.Ink) }
func (ColorWord) challenge()            {}

// Recall flashes a digit string that must be typed back.
type Recall struct {
	Digits []int
}

func (Recall) Kind() Kind { return KindMemory }
func (r Recall) Prompt() string {
	parts := make([]string, len(r.Digits))
	for i, d := range r.Digits {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, " ")
}
func (r Recall) Solution() string {
	var sb strings.Builder
	for _, d := range r.Digits {
		sb.WriteString(strconv.Itoa(d))
	}
	return sb.String()
}
func (r Recall) Judge(s string) bool { return textual(s, r.Solution()) }
func (Recall) challenge()            {}

// LetterSequence asks for the letter after Letters.
type LetterSequence struct {
	Letters []string
	Next    string
}

func (LetterSequence) Kind() Kind            { return KindLetters }
func (l LetterSequence) Prompt() string      { return strings.Join(append(append([]string{}, l.Letters...), "?"), ", ") }
func (l LetterSequence) Solution() string    { return l.Next }
func (l LetterSequence) Judge(s string) bool { return textual(s, l.Next) }
func (LetterSequence) challenge()            {}

// View is what a player is shown of a challenge. For a ColorWord the ink
// has to be shown, so it is carried separately from the prompt.
type View struct {
	Kind   Kind   `json:"kind"`
	Prompt string `json:"prompt"`
	Ink    string `json:"ink,omitempty"`
}

// Describe builds the public view of c.
func Describe(c Challenge) View {
	v := View{Kind: c.Kind(), Prompt: c.Prompt()}
	if cw, ok := c.(ColorWord); ok {
		v.Ink = cw.Ink
	}
	return v
}
