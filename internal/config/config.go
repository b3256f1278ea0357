package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ZygmuntJakub/hearts/internal/engine"
	"github.com/ZygmuntJakub/hearts/internal/player"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	TargetScore   int          `mapstructure:"targetScore"`
	Seed          uint64       `mapstructure:"seed"` // 0 picks a random seed
	SecureShuffle bool         `mapstructure:"secureShuffle"`
	Log           LogConf      `mapstructure:"log"`
	Players       []PlayerConf `mapstructure:"players"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type PlayerConf struct {
	Name     string `mapstructure:"name"`
	Strategy string `mapstructure:"strategy"`
}

var defaultPlayers = []map[string]any{
	{"name": "North", "strategy": "low"},
	{"name": "East", "strategy": "random"},
	{"name": "South", "strategy": "low"},
	{"name": "West", "strategy": "random"},
}

// New returns a viper instance with defaults and HEARTS_* environment
// overrides. Flags may be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("targetScore", engine.DefaultTargetScore)
	v.SetDefault("seed", 0)
	v.SetDefault("secureShuffle", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("players", defaultPlayers)
	v.SetEnvPrefix("hearts")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads confFile into v, if given, and decodes the result.
func Load(v *viper.Viper, confFile string) (*Config, error) {
	if confFile != "" {
		v.SetConfigFile(confFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", confFile, err)
		}
	}
	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// HasHumans reports whether any seat is played from the terminal.
func (c *Config) HasHumans() bool {
	return slices.ContainsFunc(c.Players, func(p PlayerConf) bool { return p.Strategy == player.KindHuman })
}

// Hotseat seats people in all four chairs, keeping the configured names
// as prompt defaults.
func (c *Config) Hotseat() {
	for i := range c.Players {
		c.Players[i].Strategy = player.KindHuman
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.TargetScore <= 0 {
		errs = append(errs, fmt.Errorf("targetScore must be positive, got %d", c.TargetScore))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(c.Players) != engine.NumPlayers {
		errs = append(errs, fmt.Errorf("%w: %d configured", engine.ErrPlayerCount, len(c.Players)))
	}
	known := player.Strategies()
	for i, p := range c.Players {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("player %d has no name", i+1))
		}
		if !slices.Contains(known, p.Strategy) {
			errs = append(errs, fmt.Errorf("player %d: unknown strategy %q (want one of %v)", i+1, p.Strategy, known))
		}
	}
	return errors.Join(errs...)
}
