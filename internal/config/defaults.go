package config

import (
	_ "embed"

	"github.com/dev0926/candy-tiles/internal/match3"
)

//go:embed defaults/candy.yaml
var defaultCandyYAML []byte

// DefaultCandyConfig returns the hard-coded candy configuration. It matches
// defaults/candy.yaml and is used when that file cannot be decoded.
func DefaultCandyConfig() CandyConfig {
	return CandyConfig{
		Scoring: CandyScoring{
			Candy:      60,
			SuperCandy: 120,
			Chocolate:  250,
			RoundBonus: 20,
			TwoStars:   1.5,
			ThreeStars: 2.0,
		},
		Animation: CandyAnimation{
			SwapTicks:  6,
			PhaseTicks: 9,
		},
		Rules: CandyRules{
			MaxCascadeRounds: match3.DefaultMaxCascadeRounds,
			ShuffleAttempts:  100,
		},
		Endless: CandyEndless{
			Moves: 0,
		},
	}
}
