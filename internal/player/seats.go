package player

import (
	"fmt"

	"github.com/ZygmuntJakub/hearts/internal/engine"
)

// Seats drives a game with one Strategy per seat and forwards
// notifications to a Display. It implements engine.Controller.
type Seats struct {
	strategies []Strategy
	display    Display
}

var _ engine.Controller = (*Seats)(nil)

func NewSeats(display Display, strategies ...Strategy) *Seats {
	return &Seats{strategies: strategies, display: display}
}

func (s *Seats) Names() ([]string, error) {
	if len(s.strategies) < engine.NumPlayers {
		return nil, fmt.Errorf("%w: %d of %d seats filled", engine.ErrController, len(s.strategies), engine.NumPlayers)
	}
	names := make([]string, engine.NumPlayers)
	for i := range names {
		st := s.strategies[i]
		if a, ok := st.(NameAsker); ok {
			name, err := a.AskName(i)
			if err != nil {
				return nil, err
			}
			names[i] = name
			continue
		}
		names[i] = st.Name()
	}
	return names, nil
}

func (s *Seats) seat(i int) (Strategy, error) {
	if i < 0 || i >= len(s.strategies) {
		return nil, fmt.Errorf("%w: no strategy for seat %d", engine.ErrController, i)
	}
	return s.strategies[i], nil
}

func (s *Seats) CardsToPass(from, to engine.PlayerView) ([]engine.Card, error) {
	st, err := s.seat(from.Seat)
	if err != nil {
		return nil, err
	}
	return st.ChoosePass(from.Hand, to)
}

func (s *Seats) CardToPlay(p engine.PlayerView, trick engine.Trick, firstMove bool, hearts engine.HeartsPlayed) (engine.Card, error) {
	st, err := s.seat(p.Seat)
	if err != nil {
		return engine.Card{}, err
	}
	return st.ChooseCard(engine.LegalPlays(p.Hand, trick, firstMove, hearts), trick, hearts)
}

func (s *Seats) DisplayPassingOrder(order engine.PassingOrder) {
	if s.display != nil {
		s.display.PassingOrder(order)
	}
}

func (s *Seats) DisplayRoundStart(round int) {
	if s.display != nil {
		s.display.RoundStart(round)
	}
}

func (s *Seats) DisplayWinner(p engine.PlayerView, card engine.Card, points int) {
	if s.display != nil {
		s.display.TrickWinner(p, card, points)
	}
}

func (s *Seats) DisplayScores(players []engine.PlayerView) {
	if s.display != nil {
		s.display.Scores(players)
	}
}
