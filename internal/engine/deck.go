package engine

import (
	"crypto/cipher"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffler permutes n elements through swap. *rand.Rand from math/rand/v2
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// SecureShuffler draws a Fisher-Yates permutation from a cryptographic stream.
type SecureShuffler struct {
	stream cipher.Stream
}

func NewSecureShuffler() *SecureShuffler {
	return &SecureShuffler{stream: random.New()}
}

func (s *SecureShuffler) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), s.stream).Int64())
		swap(i, j)
	}
}

// Deck is the 52-card Hearts deck. It is reshuffled on every deal, so one
// deck serves a whole game.
type Deck struct {
	cards    []Card
	shuffler Shuffler
}

// NewDeck returns the unshuffled deck, one card per rank and suit.
func NewDeck(shuffler Shuffler) *Deck {
	cards := make([]Card, 0, NumPlayers*HandSize)
	for r := Two; r <= Ace; r++ {
		for s := Hearts; s <= Spades; s++ {
			cards = append(cards, NewCard(r, s))
		}
	}
	return &Deck{cards: cards, shuffler: shuffler}
}

// Cards returns a copy of the deck in its current order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d *Deck) shuffle() {
	d.shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal shuffles the deck and gives the i-th block of 13 cards to player i.
func (d *Deck) Deal(players []*Player) error {
	if len(players) != NumPlayers {
		return fmt.Errorf("%w: got %d", ErrPlayerCount, len(players))
	}
	d.shuffle()
	for i, p := range players {
		p.Take(d.cards[i*HandSize : (i+1)*HandSize]...)
	}
	return nil
}
