// Package config provides YAML-based game configuration loading and
// difficulty management for the spiral game.
package config

// SpiralConfig contains all configuration for the spiral game.
type SpiralConfig struct {
	Path       PathConfig       `yaml:"path"`
	Sphere     SphereConfig     `yaml:"sphere"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Match      MatchConfig      `yaml:"match"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Level      LevelConfig      `yaml:"level"`
	Palette    []string         `yaml:"palette"`
	Particles  ParticleConfig   `yaml:"particles"`
	View       ViewConfig       `yaml:"view"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PathConfig shapes the spiral track.
type PathConfig struct {
	Padding float64 `yaml:"padding"`
	Samples int     `yaml:"samples"`
	Loops   float64 `yaml:"loops"`
	Shrink  float64 `yaml:"shrink"` // fraction of radius lost by the goal end
}

// SphereConfig defines sphere geometry.
type SphereConfig struct {
	Radius float64 `yaml:"radius"`
}

// PhysicsConfig tunes chain propagation.
type PhysicsConfig struct {
	GapEpsilon        float64 `yaml:"gap_epsilon"`
	SuctionMultiplier float64 `yaml:"suction_multiplier"`
	SuctionGapFactor  float64 `yaml:"suction_gap_factor"`
	DriftFactor       float64 `yaml:"drift_factor"`
}

// MatchConfig tunes run detection and scoring.
type MatchConfig struct {
	MinRun           int     `yaml:"min_run"`
	Tolerance        float64 `yaml:"tolerance"`
	ClosureTolerance float64 `yaml:"closure_tolerance"`
	PointsPerSphere  int     `yaml:"points_per_sphere"`
}

// ProjectileConfig tunes firing and hits.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
	CullMargin   float64 `yaml:"cull_margin"`
	HitFactor    float64 `yaml:"hit_factor"`
	ProbeOffset  float64 `yaml:"probe_offset"`
}

// LevelConfig defines level progression.
type LevelConfig struct {
	Quota          int     `yaml:"quota"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedStep      float64 `yaml:"speed_step"`
	CampaignLevels int     `yaml:"campaign_levels"`
	GoalMargin     float64 `yaml:"goal_margin"`
}

// ParticleConfig tunes the removal effect.
type ParticleConfig struct {
	PerSphere int     `yaml:"per_sphere"`
	Spread    float64 `yaml:"spread"`
	Decay     float64 `yaml:"decay"`
}

// ViewConfig maps the world onto terminal cells.
type ViewConfig struct {
	CellWidth      float64 `yaml:"cell_width"`
	CellHeight     float64 `yaml:"cell_height"`
	AimStepDegrees float64 `yaml:"aim_step_degrees"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to chain speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
