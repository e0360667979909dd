package core

// PathParams shapes the spiral track.
type PathParams struct {
	Padding float64 // margin from the viewport edge
	Samples int     // parameter steps; the path has Samples+1 points
	Loops   float64 // turns from outer rim to goal
	Shrink  float64 // fraction of the radius lost by the goal end
}

// PhysicsParams tunes chain propagation.
type PhysicsParams struct {
	GapEpsilon        float64 // gap below which spheres count as touching
	SuctionMultiplier float64 // same-color pull per unit of speed
	SuctionGapFactor  float64 // same-color pull per unit of gap
	DriftFactor       float64 // different-color forward creep per unit of speed
}

// CollisionParams tunes projectile hits.
type CollisionParams struct {
	HitFactor   float64 // hit when distance < diameter*HitFactor
	ProbeOffset float64 // arc length of the side probes
}

// Params holds every tunable of the simulation.
type Params struct {
	Path      PathParams
	Radius    float64
	Physics   PhysicsParams
	Collision CollisionParams

	MatchTolerance   float64 // extra gap allowed between matched neighbours
	MinRun           int
	ClosureTolerance float64 // gap closing across diameter+this triggers a match check

	ProjectileSpeed float64
	MuzzleOffset    float64
	CullMargin      float64

	Quota           int     // spheres spawned per level
	BaseSpeed       float64 // chain speed before the level bonus
	LevelSpeedStep  float64 // added per level
	MaxLevels       int     // 0 means endless
	GoalMargin      float64
	PointsPerSphere int

	ParticlesPerSphere int
	ParticleSpread     float64
	ParticleDecay      float64

	Palette []Color
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Path: PathParams{
			Padding: 60,
			Samples: 1000,
			Loops:   2.5,
			Shrink:  0.8,
		},
		Radius: 20,
		Physics: PhysicsParams{
			GapEpsilon:        0.1,
			SuctionMultiplier: 12,
			SuctionGapFactor:  0.08,
			DriftFactor:       0.05,
		},
		Collision: CollisionParams{
			HitFactor:   0.95,
			ProbeOffset: 10,
		},
		MatchTolerance:   5,
		MinRun:           3,
		ClosureTolerance: 1.5,

		ProjectileSpeed: 24,
		MuzzleOffset:    90,
		CullMargin:      50,

		Quota:           60,
		BaseSpeed:       1.0,
		LevelSpeedStep:  0.1,
		MaxLevels:       0,
		GoalMargin:      10,
		PointsPerSphere: 50,

		ParticlesPerSphere: 12,
		ParticleSpread:     20,
		ParticleDecay:      0.04,

		Palette: DefaultPalette(),
	}
}

// Diameter returns the sphere diameter.
func (p Params) Diameter() float64 {
	return p.Radius * 2
}

// LevelSpeed returns the base chain speed for a 1-based level.
func (p Params) LevelSpeed(level int) float64 {
	return p.BaseSpeed + float64(level)*p.LevelSpeedStep
}
