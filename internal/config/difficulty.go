package config

// DifficultyManager turns a run's score or age into a chain speed scale.
//
// The difficulty level runs from the configured initial level up to 1.0
// as progress reaches Progression.MaxAt. At level 1.0 the chain moves at
// 1 + Scaling.SpeedMultiplier times its base speed.
type DifficultyManager struct {
	enabled bool
	measure string
	maxAt   float64
	start   float64
	boost   float64
}

// NewDifficultyManager creates a manager from cfg. Levels outside [0, 1]
// are clamped and a non-positive MaxAt counts as 1.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		enabled: cfg.Enabled && cfg.Progression.Type != "none",
		measure: cfg.Progression.Type,
		maxAt:   float64(max(cfg.Progression.MaxAt, 1)),
		start:   unit(cfg.InitialLevel),
		boost:   cfg.Scaling.SpeedMultiplier,
	}
}

// IsEnabled reports whether the level rises during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.enabled
}

// Level returns the difficulty in [0, 1] after score points and ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.enabled {
		return d.start
	}

	var done float64
	switch d.measure {
	case "score":
		done = float64(score)
	case "time":
		done = float64(ticks)
	default:
		return d.start
	}
	return d.start + unit(done/d.maxAt)*(1-d.start)
}

// Speed scales base by the current level.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.boost)
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
