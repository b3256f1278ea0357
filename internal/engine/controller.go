package engine

import "errors"

// PhaseError reports an operation called outside its phase.
type PhaseError string

func (e PhaseError) Error() string { return string(e) }

// GameError is the kind of failure that aborts a game or a round.
type GameError string

func (e GameError) Error() string { return string(e) }

const (
	ErrStart GameError = "could not start game"
	ErrPass  GameError = "could not pass cards"
	ErrTurn  GameError = "could not complete turn"
)

var (
	// ErrController is returned by controllers that cannot produce a decision.
	ErrController    = errors.New("controller failure")
	ErrCardNotInHand = errors.New("card not in hand")
	ErrIllegalCard   = errors.New("card may not be played now")
	ErrInvalidPass   = errors.New("invalid pass selection")
	ErrNoOpeningLead = errors.New("no player holds the two of clubs")
	ErrPlayerCount   = errors.New("hearts needs exactly four players")
)

// Controller makes every decision on behalf of the players and receives
// display notifications. Calls block the engine until they return.
type Controller interface {
	// Names returns the four player names in seat order.
	Names() ([]string, error)
	// CardsToPass returns the three cards from passes to to.
	CardsToPass(from, to PlayerView) ([]Card, error)
	// CardToPlay returns the card p puts on the trick.
	CardToPlay(p PlayerView, trick Trick, firstMove bool, hearts HeartsPlayed) (Card, error)

	DisplayPassingOrder(order PassingOrder)
	DisplayRoundStart(round int)
	DisplayWinner(p PlayerView, card Card, points int)
	DisplayScores(players []PlayerView)
}
