package config

import (
	"errors"
	"fmt"
)

// Validate reports every inconsistent setting at once.
func (c SkyhopConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	ordered := func(lo, hi string, a, b float64) {
		if a > b {
			errs = append(errs, fmt.Errorf("%s (%g) must not exceed %s (%g)", lo, a, hi, b))
		}
	}
	chance := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %g", name, v))
		}
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	if c.Player.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("player.max_jumps must be at least 1, got %d", c.Player.MaxJumps))
	}

	positive("level.min_gap", c.Level.MinGap)
	ordered("level.min_gap", "level.max_gap", c.Level.MinGap, c.Level.MaxGap)
	ordered("level.min_y", "level.max_y", c.Level.MinY, c.Level.MaxY)
	positive("level.min_width", c.Level.MinWidth)
	ordered("level.min_width", "level.max_width", c.Level.MinWidth, c.Level.MaxWidth)
	positive("level.platform_height", c.Level.PlatformHeight)
	positive("level.start_platform.width", c.Level.StartPlatform.Width)
	if c.Level.MaxRise < 0 || c.Level.MaxDrop < 0 {
		errs = append(errs, errors.New("level.max_rise and level.max_drop must not be negative"))
	}
	if c.Level.Lookahead < 0 {
		errs = append(errs, fmt.Errorf("level.lookahead must not be negative, got %g", c.Level.Lookahead))
	}

	positive("enemies.size", c.Enemies.Size)
	chance("enemies.spawn_chance", c.Enemies.SpawnChance)
	positive("powerups.size", c.PowerUps.Size)
	ordered("powerups.size", "level.min_width", c.PowerUps.Size, c.Level.MinWidth)
	chance("powerups.spawn_chance", c.PowerUps.SpawnChance)
	if c.PowerUps.DurationTicks < 1 {
		errs = append(errs, fmt.Errorf("powerups.duration_ticks must be at least 1, got %d", c.PowerUps.DurationTicks))
	}

	positive("scoring.distance_divisor", c.Scoring.DistanceDivisor)

	return errors.Join(errs...)
}
