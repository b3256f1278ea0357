package engine

import "slices"

// LedSuit returns the suit of the first card of the trick.
func (t Trick) LedSuit() (Suit, bool) {
	if len(t.Plays) == 0 {
		return 0, false
	}
	return t.Plays[0].Card.Suit, true
}

// Winner returns the highest card of the led suit. Other suits never win.
func (t Trick) Winner() Play {
	led, ok := t.LedSuit()
	if !ok {
		return Play{Seat: -1}
	}
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Suit == led && p.Card.Compare(best.Card) > 0 {
			best = p
		}
	}
	return best
}

// Points sums the penalty points on the table.
func (t Trick) Points() int {
	pts := 0
	for _, p := range t.Plays {
		pts += p.Card.Points()
	}
	return pts
}

func (t Trick) HasHearts() bool {
	for _, p := range t.Plays {
		if p.Card.IsHearts() {
			return true
		}
	}
	return false
}

func (t Trick) clone() Trick {
	return Trick{Leader: t.Leader, Plays: append([]Play(nil), t.Plays...)}
}

// Broken reports whether a heart has been played this round.
func (h HeartsPlayed) Broken() bool { return h.State != NoHeartsPlayed }

// Record advances the flag after a trick containing hearts was won by seat.
func (h HeartsPlayed) Record(seat int) HeartsPlayed {
	switch {
	case h.State == NoHeartsPlayed:
		return HeartsPlayed{State: HeartsPlayedOne, Seat: seat}
	case h.State == HeartsPlayedOne && h.Seat == seat:
		return h
	default:
		return HeartsPlayed{State: HeartsPlayedMany}
	}
}

// Shooter returns the seat that took every heart of the round, if any.
func (h HeartsPlayed) Shooter() (int, bool) {
	if h.State != HeartsPlayedOne {
		return -1, false
	}
	return h.Seat, true
}

func (h HeartsPlayed) String() string {
	switch h.State {
	case NoHeartsPlayed:
		return "no hearts"
	case HeartsPlayedOne:
		return "hearts taken by one"
	default:
		return "hearts taken by many"
	}
}

// LegalPlays returns the cards of hand that may be put on the trick.
// On the first move of a round only the two of clubs is allowed; followers
// must follow the led suit if they can; hearts cannot be led until broken
// unless the hand holds nothing else. If nothing survives the filters the
// whole hand is legal.
func LegalPlays(hand []Card, trick Trick, firstMove bool, hearts HeartsPlayed) []Card {
	led, following := trick.LedSuit()
	mustFollow := following && hasSuit(hand, led)
	heartsOnly := onlyHearts(hand)

	var out []Card
	for _, c := range hand {
		if firstMove && !c.IsTwoOfClubs() {
			continue
		}
		if mustFollow && c.Suit != led {
			continue
		}
		if !following && !hearts.Broken() && c.IsHearts() && !heartsOnly {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return append([]Card(nil), hand...)
	}
	return out
}

// passingPairs returns the (giver, receiver) seats of a rotation, nil on Hold.
func passingPairs(order PassingOrder) [][2]int {
	switch order {
	case PassRight:
		return [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	case PassAcross:
		return [][2]int{{0, 2}, {1, 3}, {2, 0}, {3, 1}}
	case PassLeft:
		return [][2]int{{0, 3}, {1, 0}, {2, 1}, {3, 2}}
	default:
		return nil
	}
}

// playOrder returns the seats in play order starting with leader.
func playOrder(leader int) [NumPlayers]int {
	var out [NumPlayers]int
	for i := range out {
		out[i] = (leader + i) % NumPlayers
	}
	return out
}

// validPass checks that choices are PassSize distinct cards of hand.
func validPass(hand, choices []Card) bool {
	if len(choices) != PassSize {
		return false
	}
	for i, c := range choices {
		if slices.Contains(choices[:i], c) {
			return false
		}
		if !slices.Contains(hand, c) {
			return false
		}
	}
	return true
}
