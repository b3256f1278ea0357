package engine

import "testing"

func TestCardPoints(t *testing.T) {
	cases := []struct {
		card Card
		want int
	}{
		{NewCard(Queen, Spades), 13},
		{NewCard(Two, Hearts), 1},
		{NewCard(Ace, Hearts), 1},
		{NewCard(Queen, Hearts), 1},
		{NewCard(King, Spades), 0},
		{NewCard(Queen, Clubs), 0},
		{NewCard(Two, Clubs), 0},
	}
	for _, c := range cases {
		t.Run(c.card.String(), func(t *testing.T) {
			if got := c.card.Points(); got != c.want {
				t.Fatalf("Points() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestDeckPointsTotal26(t *testing.T) {
	total := 0
	for _, c := range NewDeck(nil).Cards() {
		total += c.Points()
	}
	if total != 26 {
		t.Fatalf("deck holds %d points, want 26", total)
	}
}

func TestCardPredicates(t *testing.T) {
	if !NewCard(Two, Clubs).IsTwoOfClubs() {
		t.Fatalf("two of clubs not recognized")
	}
	if NewCard(Two, Diamonds).IsTwoOfClubs() || NewCard(Three, Clubs).IsTwoOfClubs() {
		t.Fatalf("only the two of clubs is the two of clubs")
	}
	if !NewCard(Nine, Hearts).IsHearts() {
		t.Fatalf("nine of hearts is a heart")
	}
	if NewCard(Queen, Spades).IsHearts() {
		t.Fatalf("queen of spades is not a heart")
	}
}

func TestCardString(t *testing.T) {
	cases := []struct {
		card        Card
		long, short string
	}{
		{NewCard(Queen, Spades), "Queen of Spades", "Q♠"},
		{NewCard(Two, Clubs), "Two of Clubs", "2♣"},
		{NewCard(Ten, Hearts), "Ten of Hearts", "10♥"},
		{NewCard(Ace, Diamonds), "Ace of Diamonds", "A♦"},
	}
	for _, c := range cases {
		if got := c.card.String(); got != c.long {
			t.Fatalf("String() = %q, want %q", got, c.long)
		}
		if got := c.card.Short(); got != c.short {
			t.Fatalf("Short() = %q, want %q", got, c.short)
		}
	}
}

func TestCardCompareIgnoresSuit(t *testing.T) {
	if NewCard(Nine, Hearts).Compare(NewCard(Nine, Spades)) != 0 {
		t.Fatalf("equal ranks of different suits must compare equal")
	}
	if NewCard(Ace, Clubs).Compare(NewCard(King, Clubs)) <= 0 {
		t.Fatalf("ace must beat king")
	}
	if NewCard(Two, Spades).Compare(NewCard(Three, Hearts)) >= 0 {
		t.Fatalf("two must lose to three whatever the suit")
	}
}

func TestSortCards(t *testing.T) {
	cards := []Card{
		NewCard(Ace, Spades),
		NewCard(Two, Hearts),
		NewCard(King, Hearts),
		NewCard(Two, Clubs),
	}
	SortCards(cards)
	want := []Card{
		NewCard(Two, Hearts),
		NewCard(King, Hearts),
		NewCard(Two, Clubs),
		NewCard(Ace, Spades),
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, cards[i], want[i])
		}
	}
}

func TestEnumLabels(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{PhaseRoundEnd.String(), "round end"},
		{PhasePass.String(), "pass"},
		{PassAcross.String(), "across"},
		{PassHold.String(), "hold"},
		{Diamonds.String(), "Diamonds"},
		{Jack.String(), "Jack"},
		{Rank(13).String(), "Rank(13)"},
		{Suit(-1).String(), "Suit(-1)"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("got %q, want %q", c.got, c.want)
		}
	}
}
