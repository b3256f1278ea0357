package player

import (
	"fmt"
	"sort"
)

// KindHuman seats a person who answers terminal prompts.
const KindHuman = "human"

var factories = map[string]StrategyFactory{
	"random":  NewRandomBot,
	"low":     NewLowBot,
	KindHuman: NewHuman,
}

// Strategies lists the registered strategy kinds.
func Strategies() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New builds a strategy of the given kind.
func New(kind, name string) (Strategy, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", kind)
	}
	return f(name), nil
}

// NewSeeded is New with reproducible randomness where the strategy uses any.
func NewSeeded(kind, name string, seed uint64) (Strategy, error) {
	if kind == "random" {
		return NewSeededRandomBot(name, seed), nil
	}
	return New(kind, name)
}
