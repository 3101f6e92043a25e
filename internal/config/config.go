// Package config provides YAML-based game configuration loading and
// difficulty presets for Sky Hop.
package config

// SkyhopConfig contains all tunables for the platformer simulation.
// Distances are in logical world units on a fixed viewport; times are in ticks.
type SkyhopConfig struct {
	Viewport Viewport      `yaml:"viewport"`
	Physics  Physics       `yaml:"physics"`
	Player   PlayerConfig  `yaml:"player"`
	Level    LevelConfig   `yaml:"level"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Limits   Limits        `yaml:"limits"`
	Scoring  Scoring       `yaml:"scoring"`
}

// Viewport is the fixed logical drawing surface.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines global motion constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set by a jump (negative = up)
}

// PlayerConfig defines the player's body and starting state.
type PlayerConfig struct {
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // Horizontal units per tick while a direction is held
	MaxJumps int     `yaml:"max_jumps"` // Jump charges restored on landing
}

// PlatformSpec describes a single fixed platform.
type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LevelConfig controls procedural platform placement.
type LevelConfig struct {
	StartPlatform  PlatformSpec `yaml:"start_platform"`
	MinGap         float64      `yaml:"min_gap"`
	MaxGap         float64      `yaml:"max_gap"`
	MaxRise        float64      `yaml:"max_rise"`
	MaxDrop        float64      `yaml:"max_drop"`
	MinY           float64      `yaml:"min_y"`
	MaxY           float64      `yaml:"max_y"`
	MinWidth       float64      `yaml:"min_width"`
	MaxWidth       float64      `yaml:"max_width"`
	PlatformHeight float64      `yaml:"platform_height"`
	Lookahead      float64      `yaml:"lookahead"` // Generated frontier must exceed the view by this much
}

// EnemyConfig controls patrolling enemies.
type EnemyConfig struct {
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"`
	SpawnChance    float64 `yaml:"spawn_chance"`    // Per generated platform
	FallSpeed      float64 `yaml:"fall_speed"`      // Constant descent of defeated enemies
	LedgeTolerance float64 `yaml:"ledge_tolerance"` // Vertical slack when looking for ground
}

// PowerUpConfig controls power-up pickups.
type PowerUpConfig struct {
	Size          float64 `yaml:"size"`
	SpawnChance   float64 `yaml:"spawn_chance"`   // Per generated platform
	MinSpacing    float64 `yaml:"min_spacing"`    // Minimum x distance from the previous pickup
	Hover         float64 `yaml:"hover"`          // Gap between pickup and platform surface
	DurationTicks int     `yaml:"duration_ticks"` // Empowered time after a pickup
}

// Limits are the visibility margins that end the run or prune entities.
type Limits struct {
	FallOutMargin float64 `yaml:"fall_out_margin"` // Below the viewport: game over
	PlatformTrail float64 `yaml:"platform_trail"`  // Behind the camera: platform dropped
	EnemyMargin   float64 `yaml:"enemy_margin"`    // Below the viewport: enemy dropped
	PowerUpMargin float64 `yaml:"powerup_margin"`  // Below the viewport: pickup dropped
}

// Scoring converts a run into points.
type Scoring struct {
	DistanceDivisor float64 `yaml:"distance_divisor"` // World units per point of distance
	EnemyBonus      int     `yaml:"enemy_bonus"`      // Points per defeated enemy
}
