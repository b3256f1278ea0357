package engine

import (
	"cmp"
	"slices"
	"sync"
)

// Player is a seat at the table: its hand and its score across rounds.
// Each mutation holds the player's lock for its read and its write.
type Player struct {
	Seat int
	Name string

	mu    sync.Mutex
	hand  []Card
	score int
}

func NewPlayer(seat int, name string) *Player {
	return &Player{Seat: seat, Name: name}
}

func (p *Player) String() string { return p.Name }

// Hand returns a copy of the cards held.
func (p *Player) Hand() []Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Card(nil), p.hand...)
}

func (p *Player) Score() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.score
}

func (p *Player) AddScore(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.score += delta
}

// Take adds cards to the hand.
func (p *Player) Take(cards ...Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hand = append(p.hand, cards...)
}

// Has reports whether the card is in the hand.
func (p *Player) Has(c Card) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Contains(p.hand, c)
}

// Place removes the card from the hand and returns it.
func (p *Player) Place(c Card) (Card, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := slices.Index(p.hand, c)
	if idx < 0 {
		return Card{}, ErrCardNotInHand
	}
	p.hand = slices.Delete(p.hand, idx, idx+1)
	return c, nil
}

// Pass keeps the cards not in choices and returns the ones that are.
// Delivering them to the receiver is up to the caller.
func (p *Player) Pass(choices []Card) []Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out, keep []Card
	for _, c := range p.hand {
		if slices.Contains(choices, c) {
			out = append(out, c)
		} else {
			keep = append(keep, c)
		}
	}
	p.hand = keep
	return out
}

func (p *Player) HasTwoOfClubs() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.ContainsFunc(p.hand, Card.IsTwoOfClubs)
}

func (p *Player) clearHand() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hand = nil
}

// View snapshots the player for a controller.
func (p *Player) View() PlayerView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PlayerView{
		Seat:  p.Seat,
		Name:  p.Name,
		Hand:  append([]Card(nil), p.hand...),
		Score: p.score,
	}
}

// Standings orders views by ascending score; ties keep seat order.
func Standings(views []PlayerView) []PlayerView {
	out := append([]PlayerView(nil), views...)
	slices.SortStableFunc(out, func(a, b PlayerView) int {
		return cmp.Compare(a.Score, b.Score)
	})
	return out
}
