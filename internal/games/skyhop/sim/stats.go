package sim

// Stats summarizes a run for scoring and history.
type Stats struct {
	StartX            float64
	MaxX              float64 // Furthest player X reached
	Ticks             int
	Jumps             int
	EnemiesDefeated   int
	PowerUpsCollected int
}

// Distance is how far right of the start the player has been.
func (s Stats) Distance() float64 {
	return s.MaxX - s.StartX
}

func (s *Stats) track(x float64) {
	if x > s.MaxX {
		s.MaxX = x
	}
}

// Stats returns the current run statistics.
func (w *World) Stats() Stats {
	return w.stats
}

// Score is distance in points plus a bonus for every defeated enemy.
func (w *World) Score() int {
	sc := w.cfg.Scoring
	points := 0
	if sc.DistanceDivisor > 0 {
		points = int(w.stats.Distance() / sc.DistanceDivisor)
	}
	return points + w.stats.EnemiesDefeated*sc.EnemyBonus
}
