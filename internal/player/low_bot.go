package player

import (
	"cmp"
	"slices"

	"github.com/ZygmuntJakub/hearts/internal/engine"
)

// LowBot ducks tricks. It passes its most dangerous cards, follows with the
// highest card that still loses, and dumps penalty cards when void.
// It is deterministic.
type LowBot struct {
	BotName string
}

func NewLowBot(name string) Strategy {
	return &LowBot{BotName: name}
}

func (b *LowBot) Name() string {
	if b.BotName == "" {
		b.BotName = "LowBot"
	}
	return b.BotName
}

// danger ranks how much a card hurts to keep.
func danger(c engine.Card) int {
	d := c.Points()*20 + int(c.Rank)
	if c.Suit == engine.Spades && c.Rank > engine.Queen {
		d += 15
	}
	return d
}

func byDangerDesc(a, b engine.Card) int { return cmp.Compare(danger(b), danger(a)) }

func (b *LowBot) ChoosePass(hand []engine.Card, _ engine.PlayerView) ([]engine.Card, error) {
	if len(hand) < engine.PassSize {
		return nil, engine.ErrController
	}
	sorted := slices.Clone(hand)
	slices.SortStableFunc(sorted, byDangerDesc)
	return sorted[:engine.PassSize], nil
}

func (b *LowBot) ChooseCard(legal []engine.Card, trick engine.Trick, _ engine.HeartsPlayed) (engine.Card, error) {
	if len(legal) == 0 {
		return engine.Card{}, engine.ErrController
	}
	led, following := trick.LedSuit()
	if !following {
		return slices.MinFunc(legal, engine.Card.Compare), nil
	}
	if legal[0].Suit != led {
		// void in the led suit
		return slices.MinFunc(legal, byDangerDesc), nil
	}
	best := trick.Winner().Card
	var under []engine.Card
	for _, c := range legal {
		if c.Compare(best) < 0 {
			under = append(under, c)
		}
	}
	if len(under) > 0 {
		return slices.MaxFunc(under, engine.Card.Compare), nil
	}
	return slices.MinFunc(legal, engine.Card.Compare), nil
}
