package config

import (
	_ "embed"
)

//go:embed defaults/spiral.yaml
var defaultSpiralYAML []byte

// DefaultSpiralConfig returns the default spiral configuration.
func DefaultSpiralConfig() SpiralConfig {
	return SpiralConfig{
		Path: PathConfig{
			Padding: 60,
			Samples: 1000,
			Loops:   2.5,
			Shrink:  0.8,
		},
		Sphere: SphereConfig{
			Radius: 20,
		},
		Physics: PhysicsConfig{
			GapEpsilon:        0.1,
			SuctionMultiplier: 12,
			SuctionGapFactor:  0.08,
			DriftFactor:       0.05,
		},
		Match: MatchConfig{
			MinRun:           3,
			Tolerance:        5,
			ClosureTolerance: 1.5,
			PointsPerSphere:  50,
		},
		Projectile: ProjectileConfig{
			Speed:        24,
			MuzzleOffset: 90,
			CullMargin:   50,
			HitFactor:    0.95,
			ProbeOffset:  10,
		},
		Level: LevelConfig{
			Quota:          60,
			BaseSpeed:      1.0,
			SpeedStep:      0.1,
			CampaignLevels: 5,
			GoalMargin:     10,
		},
		Palette: []string{"red", "blue", "yellow", "green", "purple"},
		Particles: ParticleConfig{
			PerSphere: 12,
			Spread:    20,
			Decay:     0.04,
		},
		View: ViewConfig{
			CellWidth:      10,
			CellHeight:     20,
			AimStepDegrees: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
