package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GameParams parameterizes a game. Zero values get defaults.
type GameParams struct {
	TargetScore int
	Shuffler    Shuffler
	Logger      logrus.FieldLogger
}

// Game is the Hearts state machine. It owns the four players; controllers
// only ever see views of them.
type Game struct {
	ID      uuid.UUID
	Params  GameParams
	Phase   Phase
	Players [NumPlayers]*Player

	round  int // rounds started so far
	deck   *Deck
	ctrl   Controller
	log    logrus.FieldLogger
	hearts HeartsPlayed
	taken  [NumPlayers]int
	tricks []Trick
}

// NewGame asks the controller for the player names and seats them.
func NewGame(ctrl Controller, params GameParams) (*Game, error) {
	if params.TargetScore <= 0 {
		params.TargetScore = DefaultTargetScore
	}
	if params.Shuffler == nil {
		params.Shuffler = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if params.Logger == nil {
		params.Logger = logrus.StandardLogger()
	}
	g := &Game{
		ID:     uuid.New(),
		Params: params,
		Phase:  PhaseInit,
		deck:   NewDeck(params.Shuffler),
		ctrl:   ctrl,
	}
	g.log = params.Logger.WithField("game", g.ID.String())

	names, err := ctrl.Names()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStart, err)
	}
	if len(names) != NumPlayers {
		return nil, fmt.Errorf("%w: %w: got %d names", ErrStart, ErrPlayerCount, len(names))
	}
	for i, name := range names {
		g.Players[i] = NewPlayer(i, name)
	}
	g.log.WithField("players", names).Info("game created")
	return g, nil
}

// Round plays one full round and returns the highest score afterwards.
func (g *Game) Round() (int, error) {
	order := g.startRound()
	log := g.log.WithFields(logrus.Fields{"round": g.round, "passing": order.String()})
	log.Info("round started")

	if err := g.deck.Deal(g.Players[:]); err != nil {
		return 0, err
	}

	g.ctrl.DisplayPassingOrder(order)
	g.Phase = PhasePass
	if err := g.PassCards(order); err != nil {
		log.WithError(err).Error("passing aborted")
		return 0, err
	}

	g.ctrl.DisplayRoundStart(g.round)
	g.Phase = PhasePlay
	leader, err := g.openingLeader()
	if err != nil {
		return 0, err
	}
	for i := 0; i < TricksPerRound; i++ {
		res, err := g.PlayTrick(leader, i == 0)
		if err != nil {
			log.WithError(err).WithField("trick", i+1).Error("trick aborted")
			return 0, err
		}
		leader = res.Winner
	}

	g.Phase = PhaseScoring
	top, err := g.SettleRound()
	if err != nil {
		return 0, err
	}
	log.WithField("max", top).Info("round finished")
	return top, nil
}

// Play runs rounds until a player reaches the target score and returns the
// final standings, best first.
func (g *Game) Play() ([]PlayerView, error) {
	for {
		top, err := g.Round()
		if err != nil {
			return nil, err
		}
		if top >= g.Params.TargetScore {
			standings := g.Standings()
			g.log.WithFields(logrus.Fields{
				"rounds": g.round,
				"winner": standings[0].Name,
			}).Info("game over")
			return standings, nil
		}
	}
}

func (g *Game) startRound() PassingOrder {
	order := PassingOrderFor(g.round)
	g.round++
	g.Phase = PhaseDeal
	g.hearts = HeartsPlayed{}
	g.taken = [NumPlayers]int{}
	g.tricks = nil
	for _, p := range g.Players {
		p.clearHand()
	}
	return order
}

func (g *Game) openingLeader() (int, error) {
	for i, p := range g.Players {
		if p.HasTwoOfClubs() {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %w", ErrTurn, ErrNoOpeningLead)
}

// PassCards runs the passing phase. Every selection is collected and
// checked before any hand changes, so a failure leaves all hands intact.
func (g *Game) PassCards(order PassingOrder) error {
	if g.Phase != PhasePass {
		return PhaseError("not in pass phase")
	}
	type transfer struct {
		from, to int
		cards    []Card
	}
	var transfers []transfer
	for _, pair := range passingPairs(order) {
		from, to := g.Players[pair[0]], g.Players[pair[1]]
		fromView := from.View()
		cards, err := g.ctrl.CardsToPass(fromView, to.View())
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPass, from.Name, err)
		}
		if !validPass(fromView.Hand, cards) {
			return fmt.Errorf("%w: %s: %w: %v", ErrPass, from.Name, ErrInvalidPass, cards)
		}
		transfers = append(transfers, transfer{from: pair[0], to: pair[1], cards: cards})
	}

	passed := make([][]Card, len(transfers))
	for i, t := range transfers {
		passed[i] = g.Players[t.from].Pass(t.cards)
	}
	for i, t := range transfers {
		g.Players[t.to].Take(passed[i]...)
		g.log.WithFields(logrus.Fields{
			"from": g.Players[t.from].Name,
			"to":   g.Players[t.to].Name,
		}).Debug("cards passed")
	}
	g.Phase = PhasePlay
	return nil
}

// PlayTrick asks each player in turn for a card, starting with leader,
// and resolves the trick. firstTrick marks the opening trick of the round.
func (g *Game) PlayTrick(leader int, firstTrick bool) (TrickResult, error) {
	if g.Phase != PhasePlay {
		return TrickResult{}, PhaseError("not in play phase")
	}
	trick := Trick{Leader: leader}
	for i, seat := range playOrder(leader) {
		p := g.Players[seat]
		view := p.View()
		firstMove := firstTrick && i == 0
		choice, err := g.ctrl.CardToPlay(view, trick.clone(), firstMove, g.hearts)
		if err != nil {
			return TrickResult{}, fmt.Errorf("%w: %s: %w", ErrTurn, p.Name, err)
		}
		if !p.Has(choice) {
			return TrickResult{}, fmt.Errorf("%w: %s: %w: %v", ErrTurn, p.Name, ErrCardNotInHand, choice)
		}
		if !slices.Contains(LegalPlays(view.Hand, trick, firstMove, g.hearts), choice) {
			return TrickResult{}, fmt.Errorf("%w: %s: %w: %v", ErrTurn, p.Name, ErrIllegalCard, choice)
		}
		card, err := p.Place(choice)
		if err != nil {
			return TrickResult{}, fmt.Errorf("%w: %s: %w", ErrTurn, p.Name, err)
		}
		trick.Plays = append(trick.Plays, Play{Seat: seat, Card: card})
	}
	return g.resolveTrick(trick), nil
}

func (g *Game) resolveTrick(trick Trick) TrickResult {
	win := trick.Winner()
	res := TrickResult{Winner: win.Seat, Card: win.Card, Points: trick.Points()}
	if trick.HasHearts() {
		g.hearts = g.hearts.Record(win.Seat)
	}
	g.taken[win.Seat] += res.Points
	g.tricks = append(g.tricks, trick)
	g.log.WithFields(logrus.Fields{
		"trick":  len(g.tricks),
		"winner": g.Players[win.Seat].Name,
		"card":   win.Card.Short(),
		"points": res.Points,
	}).Debug("trick won")
	g.ctrl.DisplayWinner(g.Players[win.Seat].View(), win.Card, res.Points)
	return res
}

// SettleRound adds the round's points to the players' scores, applying
// the moon rule, and returns the highest score.
func (g *Game) SettleRound() (int, error) {
	if g.Phase != PhaseScoring {
		return 0, PhaseError("not in scoring phase")
	}
	if shooter, ok := g.hearts.Shooter(); ok {
		for i, p := range g.Players {
			if i != shooter {
				p.AddScore(MoonPenalty)
			}
		}
		g.log.WithField("shooter", g.Players[shooter].Name).Info("shot the moon")
	} else {
		for i, p := range g.Players {
			p.AddScore(g.taken[i])
		}
	}
	g.ctrl.DisplayScores(g.views())
	g.Phase = PhaseRoundEnd
	return g.MaxScore(), nil
}

// MaxScore returns the highest accumulated score.
func (g *Game) MaxScore() int {
	top := 0
	for _, p := range g.Players {
		top = max(top, p.Score())
	}
	return top
}

// IsOver reports whether the target score was reached, and who leads.
func (g *Game) IsOver() (bool, PlayerView) {
	return g.MaxScore() >= g.Params.TargetScore, g.Standings()[0]
}

// Standings returns the players ordered by ascending score.
func (g *Game) Standings() []PlayerView {
	return Standings(g.views())
}

// PassingOrder returns the rotation the next round will use.
func (g *Game) PassingOrder() PassingOrder { return PassingOrderFor(g.round) }

// RoundNumber returns how many rounds have been started.
func (g *Game) RoundNumber() int { return g.round }

// HeartsPlayed returns the hearts flag of the current round.
func (g *Game) HeartsPlayed() HeartsPlayed { return g.hearts }

// RoundPoints returns the points each seat took so far this round.
func (g *Game) RoundPoints() [NumPlayers]int { return g.taken }

// Tricks returns the tricks completed this round.
func (g *Game) Tricks() []Trick {
	out := make([]Trick, len(g.tricks))
	for i, t := range g.tricks {
		out[i] = t.clone()
	}
	return out
}

func (g *Game) views() []PlayerView {
	out := make([]PlayerView, 0, NumPlayers)
	for _, p := range g.Players {
		out = append(out, p.View())
	}
	return out
}
