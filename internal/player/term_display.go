package player

import (
	"fmt"
	"io"
	"os"

	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/pterm/pterm"
)

// TermDisplay prints notifications for people sharing the terminal.
type TermDisplay struct {
	Out io.Writer
}

func NewTermDisplay(out io.Writer) *TermDisplay {
	if out == nil {
		out = os.Stdout
	}
	return &TermDisplay{Out: out}
}

func (d *TermDisplay) PassingOrder(order engine.PassingOrder) {
	pterm.Fprintln(d.Out, pterm.Info.Sprintf("Passing order: %s", order.Diagram()))
}

func (d *TermDisplay) RoundStart(round int) {
	pterm.Fprintln(d.Out, pterm.DefaultSection.Sprintf("Round %d", round))
}

func (d *TermDisplay) TrickWinner(p engine.PlayerView, card engine.Card, points int) {
	pterm.Fprintln(d.Out, pterm.Success.Sprintf("%s wins this trick with the %s for %d points.", p.Name, card, points))
}

func (d *TermDisplay) Scores(players []engine.PlayerView) {
	pterm.Fprintln(d.Out, pterm.DefaultSection.Sprint("Scores"))
	for _, p := range engine.Standings(players) {
		pterm.Fprintln(d.Out, fmt.Sprintf("%s: %d points", p.Name, p.Score))
	}
}
