// internal/memory/memory.go
//
// Memory-match: sixteen face-down cards hiding eight pairs. A turn is two
// flips. A matching pair scores a point and the same player goes again; a
// miss turns both cards back over and passes the turn.

package memory

import (
	"encoding/json"
	"math/rand/v2"
	"slices"

	"github.com/robalobadob/duelarcade/internal/match"
)

// Symbols are the pair faces, one per pair.
var Symbols = []string{"🎮", "🎯", "🎲", "🎪", "🎨", "🎭", "🎺", "🎸"}

var (
	ErrNoSuchCard   = match.Invalid("no such card")
	ErrCardFaceUp   = match.Invalid("card is already face up")
	ErrCardMatched  = match.Invalid("card is already matched")
	ErrBadPairCount = match.Invalid("pairs must be between 1 and 8")
)

type Config struct {
	Pairs int    `json:"pairs,omitempty"`
	Seed  uint64 `json:"seed,omitempty"`
}

type Card struct {
	ID        int
	Symbol    string
	FaceUp    bool
	Matched   bool
	MatchedBy match.Player
}

// MarshalJSON hides the symbol of a face-down card.
func (c Card) MarshalJSON() ([]byte, error) {
	out := struct {
		ID        int          `json:"id"`
		Symbol    string       `json:"symbol,omitempty"`
		FaceUp    bool         `json:"faceUp"`
		Matched   bool         `json:"matched"`
		MatchedBy match.Player `json:"matchedBy"`
	}{ID: c.ID, FaceUp: c.FaceUp, Matched: c.Matched, MatchedBy: c.MatchedBy}
	if c.FaceUp || c.Matched {
		out.Symbol = c.Symbol
	}
	return json.Marshal(out)
}

// Flip turns Card face up.
type Flip struct {
	Player match.Player `json:"player"`
	Card   int          `json:"card"`
}

type State struct {
	Cards    []Card       `json:"cards"`
	Selected *int         `json:"selected"`
	LastMiss []Card       `json:"lastMiss,omitempty"`
	Scores   [2]int       `json:"scores"`
	Turns    int          `json:"turns"`
	Turn     match.Player `json:"turn"`
	Status   match.Status `json:"status"`
	Winner   match.Player `json:"winner"`
}

// New deals a shuffled deck. The same seed always deals the same deck.
func New(cfg Config) (State, error) {
	pairs := cfg.Pairs
	if pairs == 0 {
		pairs = len(Symbols)
	}
	if pairs < 1 || pairs > len(Symbols) {
		return State{}, ErrBadPairCount
	}

	faces := make([]string, 0, pairs*2)
	faces = append(faces, Symbols[:pairs]...)
	faces = append(faces, Symbols[:pairs]...)
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(faces), func(i, j int) { faces[i], faces[j] = faces[j], faces[i] })

	cards := make([]Card, len(faces))
	for i, f := range faces {
		cards[i] = Card{ID: i, Symbol: f}
	}
	return State{Cards: cards, Turn: match.PlayerOne, Status: match.InProgress}, nil
}

func Validate(s State, f Flip) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !f.Player.Valid():
		return match.ErrUnknownPlayer
	case f.Player != s.Turn:
		return match.ErrNotYourTurn
	case f.Card < 0 || f.Card >= len(s.Cards):
		return ErrNoSuchCard
	case s.Cards[f.Card].Matched:
		return ErrCardMatched
	case s.Cards[f.Card].FaceUp:
		return ErrCardFaceUp
	}
	return nil
}

func Apply(s State, f Flip) (State, error) {
	if err := Validate(s, f); err != nil {
		return s, err
	}
	return flip(s, f), nil
}

func flip(s State, f Flip) State {
	s.Cards = slices.Clone(s.Cards)
	s.LastMiss = nil

	if s.Selected == nil {
		s.Cards[f.Card].FaceUp = true
		first := f.Card
		s.Selected = &first
		return s
	}

	a, b := *s.Selected, f.Card
	s.Selected = nil
	s.Turns++

	if s.Cards[a].Symbol != s.Cards[b].Symbol {
		// The missed pair is shown once through LastMiss, then hidden again.
		s.Cards[a].FaceUp = false
		shown := []Card{s.Cards[a], s.Cards[b]}
		shown[0].FaceUp, shown[1].FaceUp = true, true
		s.LastMiss = shown
		s.Turn = s.Turn.Other()
		return s
	}

	for _, i := range []int{a, b} {
		s.Cards[i].FaceUp = true
		s.Cards[i].Matched = true
		s.Cards[i].MatchedBy = f.Player
	}
	s.Scores[f.Player.Index()]++

	if s.Scores[0]+s.Scores[1] == len(s.Cards)/2 {
		o := match.Compare(s.Scores[0], s.Scores[1])
		s.Status, s.Winner = o.Status, o.Winner
	}
	return s
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

type Rules struct{}

func (Rules) Validate(s State, f Flip) error { return Validate(s, f) }
func (Rules) Apply(s State, f Flip) State    { return flip(s, f) }
func (Rules) Outcome(s State) match.Outcome  { return s.Outcome() }
