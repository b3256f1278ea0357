package engine

import (
	"cmp"
	"slices"
)

// NewCard returns the card of the given rank and suit.
func NewCard(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

// Points returns the penalty value of the card.
func (c Card) Points() int {
	switch {
	case c.Rank == Queen && c.Suit == Spades:
		return 13
	case c.Suit == Hearts:
		return 1
	default:
		return 0
	}
}

func (c Card) IsTwoOfClubs() bool { return c.Rank == Two && c.Suit == Clubs }

func (c Card) IsHearts() bool { return c.Suit == Hearts }

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Short renders the card compactly, e.g. "Q♠".
func (c Card) Short() string {
	if c.Rank < Two || c.Rank > Ace {
		return "?" + c.Suit.Symbol()
	}
	return rankShort[c.Rank] + c.Suit.Symbol()
}

// Compare orders cards by rank only. Cards of equal rank compare equal
// whatever their suit, so callers only compare cards of one suit.
func (c Card) Compare(o Card) int {
	return cmp.Compare(c.Rank, o.Rank)
}

// SortCards orders cards by suit, then rank, for display.
func SortCards(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		if a.Suit != b.Suit {
			return cmp.Compare(a.Suit, b.Suit)
		}
		return a.Compare(b)
	})
}

func hasSuit(cards []Card, s Suit) bool {
	for _, c := range cards {
		if c.Suit == s {
			return true
		}
	}
	return false
}

func onlyHearts(cards []Card) bool {
	for _, c := range cards {
		if !c.IsHearts() {
			return false
		}
	}
	return len(cards) > 0
}
