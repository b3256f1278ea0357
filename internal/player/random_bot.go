package player

import (
	"math/rand/v2"
	"strconv"

	"github.com/ZygmuntJakub/hearts/internal/engine"
)

// RandomBot passes and plays uniformly at random among legal choices.
type RandomBot struct {
	BotName string
	rng     *rand.Rand
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + strconv.Itoa(b.rand().IntN(100))
	}
	return b.BotName
}

func (b *RandomBot) rand() *rand.Rand {
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return b.rng
}

func (b *RandomBot) ChoosePass(hand []engine.Card, _ engine.PlayerView) ([]engine.Card, error) {
	if len(hand) < engine.PassSize {
		return nil, engine.ErrController
	}
	perm := b.rand().Perm(len(hand))
	out := make([]engine.Card, engine.PassSize)
	for i := range out {
		out[i] = hand[perm[i]]
	}
	return out, nil
}

func (b *RandomBot) ChooseCard(legal []engine.Card, _ engine.Trick, _ engine.HeartsPlayed) (engine.Card, error) {
	if len(legal) == 0 {
		return engine.Card{}, engine.ErrController
	}
	return legal[b.rand().IntN(len(legal))], nil
}

func NewRandomBot(name string) Strategy {
	return &RandomBot{BotName: name}
}

// NewSeededRandomBot returns a RandomBot whose choices are reproducible.
func NewSeededRandomBot(name string, seed uint64) Strategy {
	return &RandomBot{BotName: name, rng: rand.New(rand.NewPCG(seed, seed))}
}
