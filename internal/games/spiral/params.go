package spiral

import (
	"github.com/vovakirdan/spiral/internal/config"
	"github.com/vovakirdan/spiral/internal/games/spiral/core"
)

// ParamsFromConfig converts a loaded configuration into simulation tuning.
// Campaign mode caps the run at cfg.Level.CampaignLevels; endless has no cap.
func ParamsFromConfig(cfg config.SpiralConfig, mode GameMode) (core.Params, error) {
	palette, err := core.ParsePalette(cfg.Palette)
	if err != nil {
		return core.DefaultParams(), err
	}

	p := core.Params{
		Path: core.PathParams{
			Padding: cfg.Path.Padding,
			Samples: cfg.Path.Samples,
			Loops:   cfg.Path.Loops,
			Shrink:  cfg.Path.Shrink,
		},
		Radius: cfg.Sphere.Radius,
		Physics: core.PhysicsParams{
			GapEpsilon:        cfg.Physics.GapEpsilon,
			SuctionMultiplier: cfg.Physics.SuctionMultiplier,
			SuctionGapFactor:  cfg.Physics.SuctionGapFactor,
			DriftFactor:       cfg.Physics.DriftFactor,
		},
		Collision: core.CollisionParams{
			HitFactor:   cfg.Projectile.HitFactor,
			ProbeOffset: cfg.Projectile.ProbeOffset,
		},
		MatchTolerance:   cfg.Match.Tolerance,
		MinRun:           cfg.Match.MinRun,
		ClosureTolerance: cfg.Match.ClosureTolerance,

		ProjectileSpeed: cfg.Projectile.Speed,
		MuzzleOffset:    cfg.Projectile.MuzzleOffset,
		CullMargin:      cfg.Projectile.CullMargin,

		Quota:           cfg.Level.Quota,
		BaseSpeed:       cfg.Level.BaseSpeed,
		LevelSpeedStep:  cfg.Level.SpeedStep,
		GoalMargin:      cfg.Level.GoalMargin,
		PointsPerSphere: cfg.Match.PointsPerSphere,

		ParticlesPerSphere: cfg.Particles.PerSphere,
		ParticleSpread:     cfg.Particles.Spread,
		ParticleDecay:      cfg.Particles.Decay,

		Palette: palette,
	}
	if mode == ModeCampaign {
		p.MaxLevels = cfg.Level.CampaignLevels
	}
	return p, nil
}
