package player

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func c(r engine.Rank, s engine.Suit) engine.Card { return engine.NewCard(r, s) }

func TestBotsPlayFullGames(t *testing.T) {
	kinds := [][]string{
		{"low", "low", "low", "low"},
		{"random", "random", "random", "random"},
		{"low", "random", "low", "random"},
	}
	for i, seatKinds := range kinds {
		t.Run(seatKinds[0]+"-"+seatKinds[1], func(t *testing.T) {
			var strategies []Strategy
			for seat, kind := range seatKinds {
				st, err := NewSeeded(kind, kind+string(rune('1'+seat)), uint64(10*i+seat))
				if err != nil {
					t.Fatalf("strategy: %v", err)
				}
				strategies = append(strategies, st)
			}
			logger, _ := test.NewNullLogger()
			seats := NewSeats(NewLogDisplay(logger), strategies...)
			g, err := engine.NewGame(seats, engine.GameParams{
				Shuffler: rand.New(rand.NewPCG(uint64(i), 99)),
				Logger:   logger,
			})
			if err != nil {
				t.Fatalf("NewGame: %v", err)
			}
			standings, err := g.Play()
			if err != nil {
				t.Fatalf("Play: %v", err)
			}
			if standings[engine.NumPlayers-1].Score < engine.DefaultTargetScore {
				t.Fatalf("game stopped early: %+v", standings)
			}
		})
	}
}

func TestSeatsNeedFourStrategies(t *testing.T) {
	seats := NewSeats(nil, NewLowBot("a"), NewLowBot("b"))
	if _, err := seats.Names(); !errors.Is(err, engine.ErrController) {
		t.Fatalf("expected ErrController, got %v", err)
	}
	_, err := engine.NewGame(seats, engine.GameParams{})
	if !errors.Is(err, engine.ErrStart) {
		t.Fatalf("expected ErrStart, got %v", err)
	}
}

func TestSeatsOffersOnlyLegalCards(t *testing.T) {
	var got []engine.Card
	spy := &spyStrategy{onCard: func(legal []engine.Card) { got = legal }}
	seats := NewSeats(nil, spy, spy, spy, spy)
	hand := []engine.Card{c(engine.Two, engine.Clubs), c(engine.Ace, engine.Hearts), c(engine.Nine, engine.Spades)}
	if _, err := seats.CardToPlay(engine.PlayerView{Seat: 1, Hand: hand}, engine.Trick{Leader: 1}, true, engine.HeartsPlayed{}); err != nil {
		t.Fatalf("CardToPlay: %v", err)
	}
	if len(got) != 1 || got[0] != c(engine.Two, engine.Clubs) {
		t.Fatalf("expected only the two of clubs, got %v", got)
	}
}

type spyStrategy struct {
	onCard func([]engine.Card)
}

func (s *spyStrategy) Name() string { return "spy" }
func (s *spyStrategy) ChoosePass(hand []engine.Card, _ engine.PlayerView) ([]engine.Card, error) {
	return hand[:engine.PassSize], nil
}
func (s *spyStrategy) ChooseCard(legal []engine.Card, _ engine.Trick, _ engine.HeartsPlayed) (engine.Card, error) {
	s.onCard(legal)
	return legal[0], nil
}

func TestLowBotChooseCard(t *testing.T) {
	bot := NewLowBot("low")
	cases := []struct {
		name  string
		legal []engine.Card
		trick engine.Trick
		want  engine.Card
	}{
		{
			name:  "leads lowest",
			legal: []engine.Card{c(engine.King, engine.Diamonds), c(engine.Four, engine.Clubs), c(engine.Nine, engine.Spades)},
			want:  c(engine.Four, engine.Clubs),
		},
		{
			name:  "ducks under the winner",
			legal: []engine.Card{c(engine.Two, engine.Diamonds), c(engine.Jack, engine.Diamonds), c(engine.Ace, engine.Diamonds)},
			trick: engine.Trick{Plays: []engine.Play{{Seat: 0, Card: c(engine.Queen, engine.Diamonds)}}},
			want:  c(engine.Jack, engine.Diamonds),
		},
		{
			name:  "plays low when forced over",
			legal: []engine.Card{c(engine.King, engine.Diamonds), c(engine.Ace, engine.Diamonds)},
			trick: engine.Trick{Plays: []engine.Play{{Seat: 0, Card: c(engine.Three, engine.Diamonds)}}},
			want:  c(engine.King, engine.Diamonds),
		},
		{
			name:  "dumps the queen of spades when void",
			legal: []engine.Card{c(engine.Ace, engine.Hearts), c(engine.Queen, engine.Spades), c(engine.Two, engine.Clubs)},
			trick: engine.Trick{Plays: []engine.Play{{Seat: 0, Card: c(engine.Three, engine.Diamonds)}}},
			want:  c(engine.Queen, engine.Spades),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bot.ChooseCard(tc.legal, tc.trick, engine.HeartsPlayed{})
			if err != nil {
				t.Fatalf("ChooseCard: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLowBotPassesDangerousCards(t *testing.T) {
	hand := []engine.Card{
		c(engine.Two, engine.Clubs),
		c(engine.Queen, engine.Spades),
		c(engine.Three, engine.Diamonds),
		c(engine.Ace, engine.Hearts),
		c(engine.Ace, engine.Spades),
		c(engine.Four, engine.Clubs),
	}
	got, err := NewLowBot("low").ChoosePass(hand, engine.PlayerView{})
	if err != nil {
		t.Fatalf("ChoosePass: %v", err)
	}
	want := []engine.Card{c(engine.Queen, engine.Spades), c(engine.Ace, engine.Hearts), c(engine.Ace, engine.Spades)}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pass %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRandomBotPassesDistinctHeldCards(t *testing.T) {
	bot := NewSeededRandomBot("r", 5)
	hand := []engine.Card{
		c(engine.Two, engine.Clubs), c(engine.Three, engine.Clubs), c(engine.Four, engine.Clubs),
		c(engine.Five, engine.Clubs), c(engine.Six, engine.Clubs),
	}
	got, err := bot.ChoosePass(hand, engine.PlayerView{})
	if err != nil {
		t.Fatalf("ChoosePass: %v", err)
	}
	seen := map[engine.Card]bool{}
	for _, card := range got {
		if seen[card] {
			t.Fatalf("duplicate pass %v", card)
		}
		seen[card] = true
	}
	if len(seen) != engine.PassSize {
		t.Fatalf("expected %d cards, got %v", engine.PassSize, got)
	}
	if _, err := bot.ChoosePass(hand[:2], engine.PlayerView{}); !errors.Is(err, engine.ErrController) {
		t.Fatalf("expected ErrController on short hand, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	if got := Strategies(); len(got) != 3 || got[0] != KindHuman || got[1] != "low" || got[2] != "random" {
		t.Fatalf("unexpected strategies %v", got)
	}
	st, err := New("low", "Lou")
	if err != nil || st.Name() != "Lou" {
		t.Fatalf("New(low): %v, %v", st, err)
	}
	if st, err := New(KindHuman, "Ann"); err != nil || st.Name() != "Ann" {
		t.Fatalf("New(human): %v, %v", st, err)
	}
	if _, err := New("greedy", "x"); err == nil {
		t.Fatalf("expected unknown strategy error")
	}
}

func TestLogDisplay(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d := NewLogDisplay(logger)
	d.PassingOrder(engine.PassLeft)
	d.TrickWinner(engine.PlayerView{Name: "Ann"}, c(engine.Ace, engine.Clubs), 3)
	d.Scores([]engine.PlayerView{{Name: "A", Score: 9}, {Name: "B", Score: 2}})
	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[1].Message != "Ann wins this trick with the Ace of Clubs for 3 points" {
		t.Fatalf("unexpected message %q", entries[1].Message)
	}
	if entries[2].Data["player"] != "B" || entries[2].Level != logrus.InfoLevel {
		t.Fatalf("scores should list the lowest first, got %+v", entries[2].Data)
	}
}
