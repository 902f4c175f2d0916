package peg

import (
	"unicode"

	"github.com/parsekit/peg/input"
)

type config struct {
	skip input.Skipper
}

// An Option modifies the behaviour of Run and ParseString.
type Option func(*config)

func newConfig(options []Option) *config {
	cfg := &config{skip: unicode.IsSpace}
	for _, option := range options {
		option(cfg)
	}
	return cfg
}

// Whitespace sets the skipper applied between tokens. The default is
// unicode.IsSpace.
func Whitespace(skip input.Skipper) Option {
	return func(cfg *config) { cfg.skip = skip }
}

// NoSkipping disables between-token skipping entirely.
func NoSkipping() Option {
	return func(cfg *config) { cfg.skip = nil }
}
