package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "keep the loaded config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySkyhopPreset adjusts spawn rates and power-up strength for a preset.
// Normal leaves the config untouched.
func ApplySkyhopPreset(cfg *SkyhopConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.SpawnChance = 0.2
		cfg.PowerUps.SpawnChance = 0.25
		cfg.PowerUps.MinSpacing = 400
		cfg.PowerUps.DurationTicks = 20 * 60
	case DifficultyHard:
		cfg.Enemies.SpawnChance = 0.45
		cfg.Enemies.Speed = 1.5
		cfg.PowerUps.SpawnChance = 0.1
		cfg.PowerUps.DurationTicks = 10 * 60
	}
}
