package config

// extraMovesForPreset returns the move budget adjustment for a preset.
func extraMovesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return -3
	default:
		return 0
	}
}

// ApplyCandyPreset adjusts the move budget for a difficulty preset. Hard also caps
// endless games at a finite move count.
func ApplyCandyPreset(cfg *CandyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Rules.ExtraMoves = extraMovesForPreset(preset)
	if preset == DifficultyHard && cfg.Endless.Moves == 0 {
		cfg.Endless.Moves = 40
	}
}

// MovesFor returns the effective move budget for a level that declares base moves.
// Never less than one.
func (cfg CandyConfig) MovesFor(base int) int {
	return max(base+cfg.Rules.ExtraMoves, 1)
}
