// Package config provides YAML-based game configuration loading and difficulty presets.
package config

import "github.com/dev0926/candy-tiles/internal/match3"

// CandyConfig contains all configuration for the candy games.
type CandyConfig struct {
	Scoring   CandyScoring   `yaml:"scoring"`
	Animation CandyAnimation `yaml:"animation"`
	Rules     CandyRules     `yaml:"rules"`
	Endless   CandyEndless   `yaml:"endless"`
}

// CandyScoring defines points awarded when items are removed.
type CandyScoring struct {
	Candy      int `yaml:"candy"`
	SuperCandy int `yaml:"super_candy"`
	Chocolate  int `yaml:"chocolate"`
	// RoundBonus is added per removed item for every cascade round after the first.
	RoundBonus int `yaml:"round_bonus"`
	// TwoStars and ThreeStars are multiples of the level's target score.
	TwoStars   float64 `yaml:"two_stars"`
	ThreeStars float64 `yaml:"three_stars"`
}

// CandyAnimation defines how long trace playback lingers on each phase.
type CandyAnimation struct {
	SwapTicks  int `yaml:"swap_ticks"`  // swap slide before matches show
	PhaseTicks int `yaml:"phase_ticks"` // matched, cleared, fallen, refilled
}

// CandyRules tunes the engine and the move budget.
type CandyRules struct {
	MaxCascadeRounds int  `yaml:"max_cascade_rounds"`
	SplitFusions     bool `yaml:"split_fusions"` // fuse every matched candy on its own
	ShuffleAttempts  int  `yaml:"shuffle_attempts"`
	ExtraMoves       int  `yaml:"extra_moves"` // added to every level's move budget
}

// CandyEndless configures the endless variant.
type CandyEndless struct {
	Moves int `yaml:"moves"` // 0 means unlimited
}

// Engine returns the cascade rules for the engine.
func (r CandyRules) Engine() match3.Rules {
	return match3.Rules{
		MaxCascadeRounds: r.MaxCascadeRounds,
		MergeFusions:     !r.SplitFusions,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether s names a preset. The empty string is valid and means
// "leave the config alone".
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	default:
		return false
	}
}
