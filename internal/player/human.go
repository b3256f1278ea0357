package player

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/pterm/pterm"
)

// PtermPrompter prompts with pterm's interactive printers.
type PtermPrompter struct{}

func (PtermPrompter) Text(label, def string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(label).WithDefaultValue(def).Show()
}

func (PtermPrompter) MultiSelect(label string, options []string) ([]string, error) {
	return pterm.DefaultInteractiveMultiselect.
		WithDefaultText(label).
		WithOptions(options).
		WithMaxHeight(engine.HandSize).
		Show()
}

func (PtermPrompter) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(label).
		WithOptions(options).
		WithMaxHeight(engine.HandSize).
		Show()
}

// Human is a seat played by a person at the terminal. Hands are shown
// sorted by suit then rank.
type Human struct {
	DefaultName string
	Prompt      Prompter

	name string
}

func NewHuman(name string) Strategy {
	return NewHumanWithPrompter(name, PtermPrompter{})
}

func NewHumanWithPrompter(name string, p Prompter) *Human {
	return &Human{DefaultName: name, Prompt: p}
}

func (h *Human) Name() string {
	if h.name != "" {
		return h.name
	}
	return h.DefaultName
}

// AskName asks the person in seat for a name. A blank answer keeps the
// configured one.
func (h *Human) AskName(seat int) (string, error) {
	answer, err := h.Prompt.Text(fmt.Sprintf("Player %d, enter your name:", seat+1), h.DefaultName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", engine.ErrController, err)
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		answer = h.DefaultName
	}
	h.name = answer
	return answer, nil
}

func (h *Human) ChoosePass(hand []engine.Card, receiver engine.PlayerView) ([]engine.Card, error) {
	if len(hand) < engine.PassSize {
		return nil, engine.ErrController
	}
	options := sortedCards(hand)
	label := fmt.Sprintf("%s, select %d cards to pass to %s.", h.Name(), engine.PassSize, receiver.Name)
	for {
		picked, err := h.Prompt.MultiSelect(label, cardLabels(options))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", engine.ErrController, err)
		}
		if len(picked) == engine.PassSize {
			return cardsFor(options, picked)
		}
		label = fmt.Sprintf("%s, select exactly %d cards to pass to %s (you picked %d).",
			h.Name(), engine.PassSize, receiver.Name, len(picked))
	}
}

func (h *Human) ChooseCard(legal []engine.Card, trick engine.Trick, _ engine.HeartsPlayed) (engine.Card, error) {
	if len(legal) == 0 {
		return engine.Card{}, engine.ErrController
	}
	options := sortedCards(legal)
	label := fmt.Sprintf("%s, select a card.", h.Name())
	if len(trick.Plays) > 0 {
		label = fmt.Sprintf("%s, select a card. On the table: %s", h.Name(), tableLine(trick))
	}
	picked, err := h.Prompt.Select(label, cardLabels(options))
	if err != nil {
		return engine.Card{}, fmt.Errorf("%w: %w", engine.ErrController, err)
	}
	cards, err := cardsFor(options, []string{picked})
	if err != nil {
		return engine.Card{}, err
	}
	return cards[0], nil
}

func sortedCards(cards []engine.Card) []engine.Card {
	out := slices.Clone(cards)
	engine.SortCards(out)
	return out
}

func cardLabels(cards []engine.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// cardsFor maps prompt answers back onto cards.
func cardsFor(cards []engine.Card, labels []string) ([]engine.Card, error) {
	out := make([]engine.Card, 0, len(labels))
	for _, l := range labels {
		i := slices.IndexFunc(cards, func(c engine.Card) bool { return c.String() == l })
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown card %q", engine.ErrController, l)
		}
		out = append(out, cards[i])
	}
	return out, nil
}

func tableLine(trick engine.Trick) string {
	parts := make([]string, len(trick.Plays))
	for i, p := range trick.Plays {
		parts[i] = p.Card.Short()
	}
	return strings.Join(parts, " ")
}
