package main

import (
	"fmt"
	"os"

	"github.com/ZygmuntJakub/hearts/internal/config"
	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFile string
	v          = config.New()
)

var rootCmd = &cobra.Command{
	Use:          "hearts",
	Short:        "Four-player Hearts for bots and people",
	Long:         "hearts deals, passes and plays rounds of Hearts between configured bots or people sharing the terminal until a player reaches the target score.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	f.Uint64("seed", 0, "shuffle seed, 0 picks one at random")
	f.Int("target", engine.DefaultTargetScore, "score that ends the game")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.Bool("secure-shuffle", false, "shuffle with a cryptographic random stream")
	if err := bindFlags(v, f); err != nil {
		panic(err)
	}

	simulateCmd.Flags().IntVar(&simulateGames, "games", 100, "number of games to play")
	rootCmd.AddCommand(playCmd, simulateCmd)
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"seed":          "seed",
	"targetScore":   "target",
	"log.level":     "log-level",
	"secureShuffle": "secure-shuffle",
}

func bindFlags(v *viper.Viper, f *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := f.Lookup(name)
		if flag == nil {
			return fmt.Errorf("bind %s: no flag --%s", key, name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
