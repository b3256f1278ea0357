package main

import (
	"math/rand/v2"

	"github.com/ZygmuntJakub/hearts/internal/config"
	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/ZygmuntJakub/hearts/internal/player"
	"github.com/sirupsen/logrus"
)

func newLogger(conf *config.Config) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if conf.Log.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return log
}

// newGame seats the configured bots. display may be nil.
func newGame(conf *config.Config, seed uint64, log logrus.FieldLogger, display player.Display) (*engine.Game, error) {
	var shuffler engine.Shuffler = rand.New(rand.NewPCG(seed, seed))
	if conf.SecureShuffle {
		shuffler = engine.NewSecureShuffler()
	}
	strategies := make([]player.Strategy, 0, len(conf.Players))
	for i, pc := range conf.Players {
		st, err := player.NewSeeded(pc.Strategy, pc.Name, seed+uint64(i)+1)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, st)
	}
	return engine.NewGame(player.NewSeats(display, strategies...), engine.GameParams{
		TargetScore: conf.TargetScore,
		Shuffler:    shuffler,
		Logger:      log,
	})
}

func pickSeed(conf *config.Config) uint64 {
	if conf.Seed != 0 {
		return conf.Seed
	}
	return rand.Uint64()
}
