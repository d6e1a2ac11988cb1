// internal/match/player.go
//
// Shared vocabulary for two-player turn-based games:
//   - Player: one of exactly two seats.
//   - Status: in-progress / check / terminal classifications.
//   - Outcome: status plus optional winner.
//   - Score: match-level counters that outlive a single board.

package match

import (
	"encoding/json"
	"fmt"
)

// Player identifies one of the two seats. The zero value means "nobody".
type Player uint8

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

// Other returns the opposing seat. NoPlayer maps to itself.
func (p Player) Other() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return NoPlayer
	}
}

// Index maps PlayerOne/PlayerTwo to 0/1 for per-player arrays.
// Callers must check Valid first.
func (p Player) Index() int { return int(p) - 1 }

// Valid reports whether p is one of the two seats.
func (p Player) Valid() bool { return p == PlayerOne || p == PlayerTwo }

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	default:
		return "none"
	}
}

// ParsePlayer accepts "one"/"two" and "1"/"2".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "one", "1", "player1":
		return PlayerOne, nil
	case "two", "2", "player2":
		return PlayerTwo, nil
	}
	return NoPlayer, fmt.Errorf("unknown player %q", s)
}

func (p Player) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(p.String())
}

func (p *Player) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = NoPlayer
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		parsed, err := ParsePlayer(fmt.Sprint(n))
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParsePlayer(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Status classifies a game state.
type Status string

const (
	InProgress Status = "in_progress"
	Check      Status = "check"
	Checkmate  Status = "checkmate"
	Stalemate  Status = "stalemate"
	Draw       Status = "draw"
	Won        Status = "won"
)

// Terminal reports whether no further actions are accepted in this status.
func (s Status) Terminal() bool {
	switch s {
	case Checkmate, Stalemate, Draw, Won:
		return true
	default:
		return false
	}
}

// Outcome is what a rules object reports about a state.
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner"`
}

// Ongoing is the outcome of every non-terminal, non-check state.
var Ongoing = Outcome{Status: InProgress}

// Decisive builds a won outcome for p.
func Decisive(p Player) Outcome { return Outcome{Status: Won, Winner: p} }

// Tied builds a drawn outcome.
func Tied() Outcome { return Outcome{Status: Draw} }

// Compare returns the decisive outcome for whichever side has more points,
// or a draw when they are equal.
func Compare(one, two int) Outcome {
	switch {
	case one > two:
		return Decisive(PlayerOne)
	case two > one:
		return Decisive(PlayerTwo)
	default:
		return Tied()
	}
}

// Score holds match-level counters. It survives NewGame and clears only on
// ResetScores.
type Score struct {
	One   int `json:"one"`
	Two   int `json:"two"`
	Draws int `json:"draws"`
}

// Record folds a terminal outcome into the counters. Checkmate counts as a
// win for its winner; stalemate counts as a draw.
func (s *Score) Record(o Outcome) {
	switch {
	case o.Winner.Valid():
		s.Award(o.Winner)
	case o.Status.Terminal():
		s.Draw()
	}
}

// Award credits one win to p.
func (s *Score) Award(p Player) {
	switch p {
	case PlayerOne:
		s.One++
	case PlayerTwo:
		s.Two++
	}
}

// Draw counts one drawn game.
func (s *Score) Draw() { s.Draws++ }
