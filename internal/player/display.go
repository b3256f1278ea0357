package player

import (
	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/sirupsen/logrus"
)

// LogDisplay writes engine notifications to a logger.
type LogDisplay struct {
	Log logrus.FieldLogger
}

func NewLogDisplay(log logrus.FieldLogger) *LogDisplay {
	return &LogDisplay{Log: log}
}

func (d *LogDisplay) PassingOrder(order engine.PassingOrder) {
	d.Log.WithField("order", order.String()).Infof("passing: %s", order.Diagram())
}

func (d *LogDisplay) RoundStart(round int) {
	d.Log.WithField("round", round).Info("play starts")
}

func (d *LogDisplay) TrickWinner(p engine.PlayerView, card engine.Card, points int) {
	d.Log.WithFields(logrus.Fields{
		"player": p.Name,
		"card":   card.Short(),
		"points": points,
	}).Infof("%s wins this trick with the %s for %d points", p.Name, card, points)
}

func (d *LogDisplay) Scores(players []engine.PlayerView) {
	for _, p := range engine.Standings(players) {
		d.Log.WithField("player", p.Name).Infof("%s: %d points", p.Name, p.Score)
	}
}
