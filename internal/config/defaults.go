package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

// DefaultSkyhopConfig returns the built-in Sky Hop configuration.
// It mirrors defaults/skyhop.yaml and is the fallback if the embed is unusable.
func DefaultSkyhopConfig() SkyhopConfig {
	return SkyhopConfig{
		Viewport: Viewport{
			Width:  400,
			Height: 400,
		},
		Physics: Physics{
			Gravity:     0.6,
			JumpImpulse: -13,
		},
		Player: PlayerConfig{
			StartX:   50,
			StartY:   300,
			Width:    40,
			Height:   40,
			Speed:    5,
			MaxJumps: 2,
		},
		Level: LevelConfig{
			StartPlatform: PlatformSpec{
				X:      0,
				Y:      350,
				Width:  400,
				Height: 50,
			},
			MinGap:         250,
			MaxGap:         350,
			MaxRise:        80,
			MaxDrop:        120,
			MinY:           150,
			MaxY:           350,
			MinWidth:       100,
			MaxWidth:       180,
			PlatformHeight: 20,
			Lookahead:      300,
		},
		Enemies: EnemyConfig{
			Size:           30,
			Speed:          1,
			SpawnChance:    0.3,
			FallSpeed:      5,
			LedgeTolerance: 1,
		},
		PowerUps: PowerUpConfig{
			Size:          20,
			SpawnChance:   0.15,
			MinSpacing:    600,
			Hover:         5,
			DurationTicks: 15 * 60,
		},
		Limits: Limits{
			FallOutMargin: 200,
			PlatformTrail: 800,
			EnemyMargin:   100,
			PowerUpMargin: 50,
		},
		Scoring: Scoring{
			DistanceDivisor: 10,
			EnemyBonus:      50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "skyhop":
		return defaultSkyhopYAML
	default:
		return nil
	}
}
