package main

import (
	"fmt"

	"github.com/ZygmuntJakub/hearts/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simulateGames int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many games and report how each seat fared",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		if conf.HasHumans() {
			return fmt.Errorf("simulate needs bots in every seat")
		}
		if simulateGames <= 0 {
			return fmt.Errorf("games must be positive, got %d", simulateGames)
		}
		log := newLogger(conf)
		// per-round logs of a batch are only useful when debugging
		engineLog := newLogger(conf)
		if engineLog.GetLevel() < logrus.DebugLevel {
			engineLog.SetLevel(logrus.WarnLevel)
		}

		seed := pickSeed(conf)
		log.WithFields(logrus.Fields{"seed": seed, "games": simulateGames}).Info("starting simulation")
		stats := newSeatStats(conf)
		for i := 0; i < simulateGames; i++ {
			g, err := newGame(conf, seed+uint64(i)*uint64(len(conf.Players)+1), engineLog, nil)
			if err != nil {
				return err
			}
			standings, err := g.Play()
			if err != nil {
				log.WithError(err).WithField("game", i+1).Error("game aborted")
				return err
			}
			stats.add(standings, g.RoundNumber())
		}
		return printSimulation(stats)
	},
}
