// Package catalog lists the games the arcade can host, with the player-facing
// copy shown before a session starts.
package catalog

import "slices"

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Catalog ids. Session factories are keyed by these.
const (
	TicTacToe         = "tic-tac-toe"
	ConnectFour       = "connect-four"
	Chess             = "chess"
	RockPaperScissors = "rock-paper-scissors"
	DotsAndBoxes      = "dots-and-boxes"
	LightningRounds   = "lightning-rounds"
	MemoryMatch       = "memory-match"
	WordBattle        = "word-battle"
	NumberDuel        = "number-duel"
	StrategyShowdown  = "strategy-showdown"
)

type Game struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime string     `json:"estimatedTime"`
	Players       int        `json:"players"`
	Timed         bool       `json:"timed"`
	Rules         []string   `json:"rules"`
	HowToPlay     string     `json:"howToPlay"`
}

var games = []Game{
	{
		ID:            TicTacToe,
		Title:         "Tic Tac Toe",
		Description:   "Classic 3x3 grid game. Get three in a row to win!",
		Difficulty:    Easy,
		EstimatedTime: "2-5 min",
		Players:       2,
		Rules: []string{
			"Players take turns placing X or O on a 3x3 grid",
			"First player to get 3 in a row (horizontal, vertical, or diagonal) wins",
			"If all 9 squares are filled without a winner, it's a tie",
		},
		HowToPlay: "Pick any empty square to place your mark. Try to get three of your marks in a row while blocking your opponent!",
	},
	{
		ID:            ConnectFour,
		Title:         "Connect Four",
		Description:   "Drop discs and connect four in a row to claim victory!",
		Difficulty:    Medium,
		EstimatedTime: "5-10 min",
		Players:       2,
		Rules: []string{
			"Players take turns dropping colored discs into a 7x6 grid",
			"Discs fall to the lowest available space in the chosen column",
			"First player to connect four discs in a row wins",
			"Connections can be horizontal, vertical, or diagonal",
			"A full board with no four in a row is a draw",
		},
		HowToPlay: "Choose a column to drop your disc. Plan ahead and try to connect four while blocking your opponent!",
	},
	{
		ID:            Chess,
		Title:         "Chess",
		Description:   "The ultimate strategy game on the classic 8x8 board.",
		Difficulty:    Hard,
		EstimatedTime: "15-45 min",
		Players:       2,
		Rules: []string{
			"Each piece moves according to standard chess rules",
			"You may never leave your own king in check",
			"Put the opponent's King in checkmate to win",
			"A side with no legal move that is not in check is stalemated: the game is drawn",
			"Pawns automatically promote to Queens on the last rank",
			"Castling and en passant are not available",
		},
		HowToPlay: "Select a piece to see its legal moves, then pick a destination. Protect your king and capture the opponent's pieces!",
	},
	{
		ID:            RockPaperScissors,
		Title:         "Rock Paper Scissors",
		Description:   "The timeless hand game. First to three round wins takes the match!",
		Difficulty:    Easy,
		EstimatedTime: "1-3 min",
		Players:       2,
		Rules: []string{
			"Rock beats Scissors",
			"Scissors beats Paper",
			"Paper beats Rock",
			"Both players choose in secret; identical choices tie the round",
			"First to 3 round wins takes the match",
		},
		HowToPlay: "Choose Rock, Paper, or Scissors. Your pick stays hidden until your opponent has chosen too.",
	},
	{
		ID:            DotsAndBoxes,
		Title:         "Dots and Boxes",
		Description:   "Connect dots to form boxes and claim territory!",
		Difficulty:    Medium,
		EstimatedTime: "10-15 min",
		Players:       2,
		Rules: []string{
			"Players take turns drawing lines between dots",
			"When a player completes a box, they claim it and get another turn",
			"Player with the most boxes when all lines are drawn wins",
		},
		HowToPlay: "Draw a line between two adjacent dots. Complete boxes to score points!",
	},
	{
		ID:            LightningRounds,
		Title:         "Lightning Rounds",
		Description:   "Quick-fire mini-games with time pressure!",
		Difficulty:    Medium,
		EstimatedTime: "3-7 min",
		Players:       2,
		Timed:         true,
		Rules: []string{
			"Series of quick mini-games with 30-second time limits",
			"Games include pattern matching, quick math, reaction, memory and letter sequences",
			"Correct answers score 1 point, 2 if answered within 5 seconds",
			"Player with the most points across all rounds is the champion",
		},
		HowToPlay: "React quickly to each challenge. Speed and accuracy are key to victory!",
	},
	{
		ID:            MemoryMatch,
		Title:         "Memory Match",
		Description:   "Flip cards and find matching pairs. Test your memory!",
		Difficulty:    Easy,
		EstimatedTime: "5-8 min",
		Players:       2,
		Rules: []string{
			"Cards are placed face down in a grid",
			"Players take turns flipping two cards",
			"If cards match, player keeps them and goes again",
			"Player with the most pairs when all cards are matched wins",
		},
		HowToPlay: "Flip two cards. Remember where cards are located to make matches!",
	},
	{
		ID:            WordBattle,
		Title:         "Word Battle",
		Description:   "Create words from letters and outscore your opponent!",
		Difficulty:    Medium,
		EstimatedTime: "8-12 min",
		Players:       2,
		Timed:         true,
		Rules: []string{
			"Players are given the same set of random letters",
			"Create as many valid words as possible within the time limit",
			"Longer words score more points",
			"A word can only be played once by either player",
			"Player with the highest total score wins",
		},
		HowToPlay: "Type words using the available letters. Longer words give higher scores!",
	},
	{
		ID:            NumberDuel,
		Title:         "Number Duel",
		Description:   "Mathematical challenges and number puzzles await!",
		Difficulty:    Medium,
		EstimatedTime: "6-10 min",
		Players:       2,
		Timed:         true,
		Rules: []string{
			"Solve math problems and number puzzles faster than your opponent",
			"Questions range from basic arithmetic to logic puzzles",
			"Correct answers score 1 point, 2 if answered within 5 seconds",
			"Best of 10 questions wins",
		},
		HowToPlay: "Read each question carefully and enter your answer quickly. Accuracy and speed both matter!",
	},
	{
		ID:            StrategyShowdown,
		Title:         "Strategy Showdown",
		Description:   "Ultimate test of tactical thinking and planning!",
		Difficulty:    Hard,
		EstimatedTime: "15-25 min",
		Players:       2,
		Timed:         true,
		Rules: []string{
			"Both players secretly choose Attack, Defend, Charge or Special each round",
			"Attacks and Specials cost energy; Charge restores it and powers up your next Special",
			"Defending raises a shield that absorbs incoming damage",
			"Knock your opponent out, or have more health after the last round, to win",
		},
		HowToPlay: "Plan your moves carefully. Manage your energy, read your opponent, and strike when they least expect it!",
	},
}

// All returns every game in display order. The slice is a copy.
func All() []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		g.Rules = slices.Clone(g.Rules)
		out[i] = g
	}
	return out
}

// Lookup finds a game by id.
func Lookup(id string) (Game, bool) {
	i := slices.IndexFunc(games, func(g Game) bool { return g.ID == id })
	if i < 0 {
		return Game{}, false
	}
	g := games[i]
	g.Rules = slices.Clone(g.Rules)
	return g, true
}

// IDs returns the catalog ids in display order.
func IDs() []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}
