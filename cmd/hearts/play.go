package main

import (
	"os"

	"github.com/ZygmuntJakub/hearts/internal/config"
	"github.com/ZygmuntJakub/hearts/internal/player"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var hotseat bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game and print the final standings",
	Long:  "play runs one game. With --hotseat, or with human seats in the config, people take turns at this terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		if hotseat {
			conf.Hotseat()
		}
		log := newLogger(conf)
		seed := pickSeed(conf)
		log.WithField("seed", seed).Info("starting game")

		var display player.Display = player.NewLogDisplay(log)
		if conf.HasHumans() {
			display = player.NewTermDisplay(os.Stdout)
			// keep log lines out of the prompts
			if log.GetLevel() < logrus.DebugLevel {
				log.SetLevel(logrus.WarnLevel)
			}
		}
		g, err := newGame(conf, seed, log, display)
		if err != nil {
			log.WithError(err).Error("could not start game")
			return err
		}
		standings, err := g.Play()
		if err != nil {
			log.WithError(err).Error("game aborted")
			return err
		}
		return printStandings(standings, g.RoundNumber())
	},
}

func init() {
	playCmd.Flags().BoolVar(&hotseat, "hotseat", false, "seat four people at this terminal")
}
