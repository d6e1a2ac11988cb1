// internal/showdown/showdown.go
//
// Strategy-showdown: each round both fighters secretly pick an action, then
// both actions resolve together.
//
// Responsibilities:
//   - Refuse actions the fighter cannot afford (energy would go negative).
//   - Resolve energy, shield, charge and damage in a fixed order.
//   - End on a knockout or at the round cap; auto-pick charge on timeout.

package showdown

import (
	"fmt"
	"slices"

	"github.com/robalobadob/duelarcade/internal/match"
)

type Action string

const (
	Attack  Action = "attack"
	Defend  Action = "defend"
	Charge  Action = "charge"
	Special Action = "special"
)

// Profile is the fixed effect of an action.
type Profile struct {
	Damage  int `json:"damage"`
	Defense int `json:"defense"`
	Energy  int `json:"energy"`
}

var Profiles = map[Action]Profile{
	Attack:  {Damage: 25, Energy: -1},
	Defend:  {Defense: 20},
	Charge:  {Energy: 2},
	Special: {Damage: 40, Energy: -3},
}

const (
	StartHealth      = 100
	StartEnergy      = 3
	MaxEnergy        = 5
	ChargeBonus      = 10
	DefaultMaxRounds = 10
	DefaultSeconds   = 30
)

var (
	ErrBadAction       = match.Invalid("action must be attack, defend, charge or special")
	ErrAlreadySelected = match.Invalid("already selected an action this round")
	ErrNotEnoughEnergy = match.Invalid("not enough energy")
	ErrBadRounds       = match.Invalid("rounds must be between 1 and 100")
	ErrBadSeconds      = match.Invalid("seconds per round must be positive")
)

type Config struct {
	MaxRounds int `json:"maxRounds,omitempty"`
	Seconds   int `json:"seconds,omitempty"`
}

type Fighter struct {
	Health      int    `json:"health"`
	Energy      int    `json:"energy"`
	Shield      int    `json:"shield"`
	ChargeCount int    `json:"chargeCount"`
	LastAction  Action `json:"lastAction,omitempty"`
}

// CanAfford reports whether f has the energy for a.
func (f Fighter) CanAfford(a Action) bool {
	return f.Energy+Profiles[a].Energy >= 0
}

type Select struct {
	Player match.Player `json:"player"`
	Action Action       `json:"action"`
}

// Exchange summarises one resolved round. Raw is damage before shields,
// Dealt is what actually came off health; both are indexed by attacker.
type Exchange struct {
	Round   int       `json:"round"`
	Actions [2]Action `json:"actions"`
	Raw     [2]int    `json:"raw"`
	Dealt   [2]int    `json:"dealt"`
}

type State struct {
	Fighters  [2]Fighter   `json:"fighters"`
	Round     int          `json:"round"`
	MaxRounds int          `json:"maxRounds"`
	Seconds   int          `json:"seconds"`
	TimeLeft  int          `json:"timeLeft"`
	Selected  [2]bool      `json:"selected"`
	Last      *Exchange    `json:"last,omitempty"`
	Log       []string     `json:"log"`
	Status    match.Status `json:"status"`
	Winner    match.Player `json:"winner"`

	pending [2]Action
}

func New(cfg Config) (State, error) {
	rounds, secs := cfg.MaxRounds, cfg.Seconds
	if rounds == 0 {
		rounds = DefaultMaxRounds
	}
	if secs == 0 {
		secs = DefaultSeconds
	}
	if rounds < 1 || rounds > 100 {
		return State{}, ErrBadRounds
	}
	if secs < 1 {
		return State{}, ErrBadSeconds
	}
	fresh := Fighter{Health: StartHealth, Energy: StartEnergy}
	return State{
		Fighters:  [2]Fighter{fresh, fresh},
		Round:     1,
		MaxRounds: rounds,
		Seconds:   secs,
		TimeLeft:  secs,
		Log:       []string{},
		Status:    match.InProgress,
	}, nil
}

// Resolve plays one exchange between a (seat one) and b (seat two).
func Resolve(a, b Fighter, actA, actB Action) (Fighter, Fighter, Exchange) {
	f := [2]Fighter{a, b}
	acts := [2]Action{actA, actB}
	var ex Exchange
	ex.Actions = acts

	for i := range f {
		p := Profiles[acts[i]]
		f[i].Energy = min(MaxEnergy, f[i].Energy+p.Energy)
		f[i].Shield += p.Defense
		if acts[i] == Charge {
			f[i].ChargeCount++
		}
	}
	for i := range f {
		ex.Raw[i] = Profiles[acts[i]].Damage
		if acts[i] == Special && f[i].ChargeCount > 0 {
			ex.Raw[i] += f[i].ChargeCount * ChargeBonus
			f[i].ChargeCount = 0
		}
	}
	for i := range f {
		def := &f[1-i]
		ex.Dealt[i] = max(0, ex.Raw[i]-def.Shield)
		def.Health = max(0, def.Health-ex.Dealt[i])
	}
	for i := range f {
		f[i].Shield = max(0, f[i].Shield-ex.Raw[1-i])
		f[i].LastAction = acts[i]
	}
	return f[0], f[1], ex
}

func Validate(s State, sel Select) error {
	switch {
	case s.Status.Terminal():
		return match.ErrGameOver
	case !sel.Player.Valid():
		return match.ErrUnknownPlayer
	}
	if _, ok := Profiles[sel.Action]; !ok {
		return ErrBadAction
	}
	i := sel.Player.Index()
	switch {
	case s.Selected[i]:
		return ErrAlreadySelected
	case !s.Fighters[i].CanAfford(sel.Action):
		return ErrNotEnoughEnergy
	}
	return nil
}

func Apply(s State, sel Select) (State, error) {
	if err := Validate(s, sel); err != nil {
		return s, err
	}
	return choose(s, sel), nil
}

func choose(s State, sel Select) State {
	i := sel.Player.Index()
	s.pending[i] = sel.Action
	s.Selected[i] = true
	if s.Selected[0] && s.Selected[1] {
		return resolveRound(s)
	}
	return s
}

// Tick counts down the selection timer. At zero every fighter who has not
// chosen charges, and the round resolves like any other.
func Tick(s State) State {
	if s.Status.Terminal() {
		return s
	}
	s.TimeLeft--
	if s.TimeLeft > 0 {
		return s
	}
	for _, p := range []match.Player{match.PlayerOne, match.PlayerTwo} {
		if !s.Selected[p.Index()] {
			s = choose(s, Select{Player: p, Action: Charge})
		}
	}
	return s
}

func resolveRound(s State) State {
	one, two, ex := Resolve(s.Fighters[0], s.Fighters[1], s.pending[0], s.pending[1])
	ex.Round = s.Round
	s.Fighters = [2]Fighter{one, two}
	s.Last = &ex
	s.pending = [2]Action{}
	s.Selected = [2]bool{}
	s.Log = append(slices.Clip(s.Log), describe(ex)...)

	switch {
	case one.Health == 0 && two.Health == 0:
		s.Status = match.Draw
	case one.Health == 0:
		s.Status, s.Winner = match.Won, match.PlayerTwo
	case two.Health == 0:
		s.Status, s.Winner = match.Won, match.PlayerOne
	case s.Round >= s.MaxRounds:
		o := match.Compare(one.Health, two.Health)
		s.Status, s.Winner = o.Status, o.Winner
	default:
		s.Round++
		s.TimeLeft = s.Seconds
	}
	return s
}

func describe(ex Exchange) []string {
	lines := []string{
		fmt.Sprintf("Round %d: player one %s, player two %s", ex.Round, ex.Actions[0], ex.Actions[1]),
	}
	names := [2]string{"one", "two"}
	for i := range names {
		switch {
		case ex.Dealt[i] > 0:
			lines = append(lines, fmt.Sprintf("player %s deals %d damage", names[i], ex.Dealt[i]))
		case ex.Raw[i] > 0:
			lines = append(lines, fmt.Sprintf("player %s's shield blocks the hit", names[1-i]))
		}
	}
	return lines
}

func (s State) Outcome() match.Outcome {
	return match.Outcome{Status: s.Status, Winner: s.Winner}
}

type Rules struct{}

func (Rules) Validate(s State, sel Select) error { return Validate(s, sel) }
func (Rules) Apply(s State, sel Select) State    { return choose(s, sel) }
func (Rules) Outcome(s State) match.Outcome      { return s.Outcome() }
func (Rules) Tick(s State) State                 { return Tick(s) }
