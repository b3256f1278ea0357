package player

import "github.com/ZygmuntJakub/hearts/internal/engine"

// Strategy decides for a single seat.
type Strategy interface {
	Name() string
	// ChoosePass returns engine.PassSize cards of hand to give to receiver.
	ChoosePass(hand []engine.Card, receiver engine.PlayerView) ([]engine.Card, error)
	// ChooseCard returns one of legal. The trick holds the cards already played.
	ChooseCard(legal []engine.Card, trick engine.Trick, hearts engine.HeartsPlayed) (engine.Card, error)
}

type StrategyFactory func(name string) Strategy

// NameAsker is implemented by strategies that ask for their name when
// the game starts instead of using the configured one.
type NameAsker interface {
	AskName(seat int) (string, error)
}

// Prompter asks the person at the terminal.
type Prompter interface {
	Text(label, def string) (string, error)
	MultiSelect(label string, options []string) ([]string, error)
	Select(label string, options []string) (string, error)
}

// Display receives the engine's notifications.
type Display interface {
	PassingOrder(order engine.PassingOrder)
	RoundStart(round int)
	TrickWinner(p engine.PlayerView, card engine.Card, points int)
	Scores(players []engine.PlayerView)
}
