// internal/session/games.go
//
// One factory per catalog id. A factory decodes the game's JSON config,
// validates it by building the first state, and wraps the engine's Rules in
// an adapter with the matching action decoder and move lister.

package session

import (
	"encoding/json"
	"fmt"

	"github.com/robalobadob/duelarcade/internal/catalog"
	"github.com/robalobadob/duelarcade/internal/chess"
	"github.com/robalobadob/duelarcade/internal/connectfour"
	"github.com/robalobadob/duelarcade/internal/dotsboxes"
	"github.com/robalobadob/duelarcade/internal/grid"
	"github.com/robalobadob/duelarcade/internal/lightning"
	"github.com/robalobadob/duelarcade/internal/match"
	"github.com/robalobadob/duelarcade/internal/memory"
	"github.com/robalobadob/duelarcade/internal/numberduel"
	"github.com/robalobadob/duelarcade/internal/quiz"
	"github.com/robalobadob/duelarcade/internal/rps"
	"github.com/robalobadob/duelarcade/internal/showdown"
	"github.com/robalobadob/duelarcade/internal/tictactoe"
	"github.com/robalobadob/duelarcade/internal/wordbattle"
	"github.com/robalobadob/duelarcade/internal/words"
)

// params is everything a factory may need.
type params struct {
	id     string
	secret string
	raw    json.RawMessage
	dict   words.Dictionary
}

// config decodes the raw config into dst. An absent body keeps defaults.
func (p params) config(dst any) error {
	if len(p.raw) == 0 || string(p.raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(p.raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return nil
}

func (p params) seeds(explicit uint64) func(int) uint64 {
	return seeder(p.secret, p.id, explicit)
}

type factory func(p params) (Engine, error)

var factories = map[string]factory{
	catalog.Chess:             newChess,
	catalog.TicTacToe:         newTicTacToe,
	catalog.ConnectFour:       newConnectFour,
	catalog.DotsAndBoxes:      newDotsAndBoxes,
	catalog.MemoryMatch:       newMemory,
	catalog.RockPaperScissors: newRPS,
	catalog.WordBattle:        newWordBattle,
	catalog.NumberDuel:        newNumberDuel,
	catalog.LightningRounds:   newLightning,
	catalog.StrategyShowdown:  newShowdown,
}

// unseeded adapts a config-only constructor to sequence.
func unseeded[S any](build func() (S, error)) func(uint64) (S, error) {
	return func(uint64) (S, error) { return build() }
}

func newChess(p params) (Engine, error) {
	var cfg chess.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(0), unseeded(func() (chess.State, error) { return chess.New(cfg) }))
	if err != nil {
		return nil, err
	}
	return adapt[chess.State, chess.Move](chess.Rules{}, next, decodeChessMove, chessMoves), nil
}

// decodeChessMove accepts squares in algebraic form: {"from":"e2","to":"e4"}.
func decodeChessMove(seat match.Player, raw json.RawMessage) (chess.Move, error) {
	var in struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return chess.Move{}, fmt.Errorf("%w: %v", ErrMalformedAction, err)
	}
	from, okFrom := chess.ParseSquare(in.From)
	to, okTo := chess.ParseSquare(in.To)
	if !okFrom || !okTo {
		return chess.Move{}, chess.ErrOffBoard
	}
	return chess.Move{Player: seat, From: from, To: to}, nil
}

// chessMoves lists destinations for the piece on query, or, with an empty
// query, every movable piece of the side to move keyed by its square.
func chessMoves(s chess.State, query string) (any, error) {
	if query != "" {
		from, ok := chess.ParseSquare(query)
		if !ok {
			return nil, chess.ErrOffBoard
		}
		return squareNames(chess.LegalMoves(s, from)), nil
	}
	out := map[string][]string{}
	for r := 0; r < chess.Size; r++ {
		for c := 0; c < chess.Size; c++ {
			sq := grid.At(r, c)
			if s.Board.At(sq).Color != s.Turn {
				continue
			}
			if to := chess.LegalMoves(s, sq); len(to) > 0 {
				out[chess.SquareName(sq)] = squareNames(to)
			}
		}
	}
	return out, nil
}

func squareNames(sqs []grid.Square) []string {
	out := make([]string, len(sqs))
	for i, sq := range sqs {
		out[i] = chess.SquareName(sq)
	}
	return out
}

func newTicTacToe(p params) (Engine, error) {
	return adapt[tictactoe.State, tictactoe.Place](tictactoe.Rules{}, tictactoe.New,
		decodeAs(func(a *tictactoe.Place, seat match.Player) { a.Player = seat }),
		func(s tictactoe.State, _ string) (any, error) {
			cells := []int{}
			if s.Status.Terminal() {
				return cells, nil
			}
			for i, m := range s.Board {
				if m == tictactoe.Empty {
					cells = append(cells, i)
				}
			}
			return cells, nil
		}), nil
}

func newConnectFour(p params) (Engine, error) {
	return adapt[connectfour.State, connectfour.Drop](connectfour.Rules{}, connectfour.New,
		decodeAs(func(a *connectfour.Drop, seat match.Player) { a.Player = seat }),
		func(s connectfour.State, _ string) (any, error) { return connectfour.LegalMoves(s), nil }), nil
}

func newDotsAndBoxes(p params) (Engine, error) {
	var cfg dotsboxes.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(0), unseeded(func() (dotsboxes.State, error) { return dotsboxes.New(cfg) }))
	if err != nil {
		return nil, err
	}
	return adapt[dotsboxes.State, dotsboxes.Draw](dotsboxes.Rules{}, next,
		decodeAs(func(a *dotsboxes.Draw, seat match.Player) { a.Player = seat }),
		func(s dotsboxes.State, _ string) (any, error) { return dotsboxes.LegalMoves(s), nil }), nil
}

func newMemory(p params) (Engine, error) {
	var cfg memory.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(cfg.Seed), func(seed uint64) (memory.State, error) {
		c := cfg
		c.Seed = seed
		return memory.New(c)
	})
	if err != nil {
		return nil, err
	}
	return adapt[memory.State, memory.Flip](memory.Rules{}, next,
		decodeAs(func(a *memory.Flip, seat match.Player) { a.Player = seat }),
		func(s memory.State, _ string) (any, error) {
			ids := []int{}
			for _, c := range s.Cards {
				if !c.Matched && !c.FaceUp {
					ids = append(ids, c.ID)
				}
			}
			return ids, nil
		}), nil
}

func newRPS(p params) (Engine, error) {
	var cfg rps.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(0), unseeded(func() (rps.State, error) { return rps.New(cfg) }))
	if err != nil {
		return nil, err
	}
	return adapt[rps.State, rps.Pick](rps.Rules{}, next,
		decodeAs(func(a *rps.Pick, seat match.Player) { a.Player = seat }), nil), nil
}

func newWordBattle(p params) (Engine, error) {
	var cfg wordbattle.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(cfg.Seed), func(seed uint64) (wordbattle.State, error) {
		c := cfg
		c.Seed = seed
		return wordbattle.New(c)
	})
	if err != nil {
		return nil, err
	}
	return adapt[wordbattle.State, wordbattle.Submit](wordbattle.Rules{Dict: p.dict}, next,
		decodeAs(func(a *wordbattle.Submit, seat match.Player) { a.Player = seat }), nil), nil
}

func decodeAnswer(a *quiz.Answer, seat match.Player) { a.Player = seat }

func newNumberDuel(p params) (Engine, error) {
	var cfg numberduel.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(cfg.Seed), func(seed uint64) (quiz.State, error) {
		c := cfg
		c.Seed = seed
		return numberduel.New(c)
	})
	if err != nil {
		return nil, err
	}
	return adapt[quiz.State, quiz.Answer](quiz.Rules{}, next, decodeAs(decodeAnswer), nil), nil
}

func newLightning(p params) (Engine, error) {
	var cfg lightning.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(cfg.Seed), func(seed uint64) (quiz.State, error) {
		c := cfg
		c.Seed = seed
		return lightning.New(c)
	})
	if err != nil {
		return nil, err
	}
	return adapt[quiz.State, quiz.Answer](quiz.Rules{}, next, decodeAs(decodeAnswer), nil), nil
}

func newShowdown(p params) (Engine, error) {
	var cfg showdown.Config
	if err := p.config(&cfg); err != nil {
		return nil, err
	}
	next, err := sequence(p.seeds(0), unseeded(func() (showdown.State, error) { return showdown.New(cfg) }))
	if err != nil {
		return nil, err
	}
	return adapt[showdown.State, showdown.Select](showdown.Rules{}, next,
		decodeAs(func(a *showdown.Select, seat match.Player) { a.Player = seat }),
		showdownMoves), nil
}

// showdownMoves lists the actions the fighter in seat query can afford.
func showdownMoves(s showdown.State, query string) (any, error) {
	seat, err := match.ParsePlayer(query)
	if err != nil {
		return nil, err
	}
	acts := []showdown.Action{}
	if s.Status.Terminal() || s.Selected[seat.Index()] {
		return acts, nil
	}
	f := s.Fighters[seat.Index()]
	for _, a := range []showdown.Action{showdown.Attack, showdown.Defend, showdown.Charge, showdown.Special} {
		if f.CanAfford(a) {
			acts = append(acts, a)
		}
	}
	return acts, nil
}
