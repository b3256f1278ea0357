//go:generate stringer -type=Phase,Suit,Rank,PassingOrder -linecomment

package engine

// Suit represents a card suit. Suits carry no ranking.
type Suit int

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

var suitSymbols = [...]string{"♥", "♣", "♦", "♠"}

// Symbol returns the unicode pip of the suit.
func (s Suit) Symbol() string {
	if s < Hearts || s > Spades {
		return "?"
	}
	return suitSymbols[s]
}

// Rank represents a card rank, Two lowest and Ace highest.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankShort = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Card represents a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

const (
	NumPlayers     = 4
	HandSize       = 13
	TricksPerRound = 13
	PassSize       = 3
	// MoonPenalty is what every other player takes when one player shoots the moon.
	MoonPenalty = 26
	// DefaultTargetScore ends the game once any player reaches it.
	DefaultTargetScore = 100
)

// Phase represents the round phase.
type Phase int

const (
	PhaseInit     Phase = iota // init
	PhaseDeal                  // deal
	PhasePass                  // pass
	PhasePlay                  // play
	PhaseScoring               // scoring
	PhaseRoundEnd              // round end
)

// PassingOrder is the passing direction of a round. It cycles
// Right, Across, Left, Hold.
type PassingOrder int

const (
	PassRight  PassingOrder = iota // right
	PassAcross                     // across
	PassLeft                       // left
	PassHold                       // hold
)

// Diagram describes who passes to whom, using 1-based seat labels.
func (o PassingOrder) Diagram() string {
	switch o {
	case PassRight:
		return "P1 -> P2 -> P3 -> P4 -> P1"
	case PassAcross:
		return "P1 <-> P3, P2 <-> P4"
	case PassLeft:
		return "P1 <- P2 <- P3 <- P4 <- P1"
	default:
		return "Hold"
	}
}

// PassingOrderFor maps a zero-based round number onto the passing cycle.
func PassingOrderFor(round int) PassingOrder {
	return PassingOrder(round % 4)
}

// HeartsState tracks who has taken hearts during a round.
type HeartsState int

const (
	NoHeartsPlayed HeartsState = iota
	HeartsPlayedOne
	HeartsPlayedMany
)

// HeartsPlayed is the per-round hearts flag. Seat is only meaningful for
// HeartsPlayedOne and names the single player who took every heart so far.
type HeartsPlayed struct {
	State HeartsState
	Seat  int
}

// Play is a single card put on the table.
type Play struct {
	Seat int
	Card Card
}

// Trick holds the cards of the trick in play order.
type Trick struct {
	Leader int
	Plays  []Play
}

// TrickResult summarizes a resolved trick.
type TrickResult struct {
	Winner int
	Card   Card
	Points int
}

// PlayerView is a read-only snapshot of a player handed to controllers.
type PlayerView struct {
	Seat  int
	Name  string
	Hand  []Card
	Score int
}

func (v PlayerView) String() string { return v.Name }
