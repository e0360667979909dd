package core

// Phase is the session lifecycle.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseOver          // a sphere reached the goal
	PhaseWon           // last campaign level cleared
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// MatchCause says what triggered a removal.
type MatchCause uint8

const (
	CauseInsertion MatchCause = iota // a projectile completed the run
	CauseClosure                     // a gap closed between same-colored spheres
)

// MatchEvent reports one removed run.
type MatchEvent struct {
	Cause   MatchCause
	Spheres []Sphere // removed spheres, Status set to StatusRemoving
	Points  int
}

// InsertEvent reports a projectile joining the chain.
type InsertEvent struct {
	SphereID uint64
	Index    int
	Side     Side
}

// EndEvent is emitted exactly once when the session ends.
type EndEvent struct {
	Score int
	Level int
	Won   bool
	Tick  uint64
}

// TickResult lists everything that happened during one Tick.
type TickResult struct {
	Deferred     bool // no path yet, nothing advanced
	Spawned      bool
	Fired        int
	Inserted     *InsertEvent
	Matches      []MatchEvent
	LevelCleared bool
	End          *EndEvent
}

type intentKind uint8

const (
	intentAim intentKind = iota
	intentFire
)

type intent struct {
	kind  intentKind
	angle float64
}

// State owns one play session. It is not safe for concurrent use; a single
// goroutine calls Tick and the intent methods, and publishes Snapshots for
// everyone else.
type State struct {
	params Params
	src    Source
	path   *Path

	chain       []Sphere
	projectiles []Projectile
	particles   []Particle
	intents     []intent

	aim          float64
	active, next Color

	score   int
	level   int
	spawned int
	tick    uint64
	nextID  uint64
	phase   Phase

	speedScale float64

	shots   int
	cleared int
}

// NewState creates a session at level 1. The path is built on the first Resize.
func NewState(p Params, src Source) *State {
	if src == nil {
		src = NewRNG(0)
	}
	if len(p.Palette) == 0 {
		p.Palette = DefaultPalette()
	}
	s := &State{
		params:     p,
		src:        src,
		level:      1,
		speedScale: 1,
	}
	s.active = pick(src, p.Palette)
	s.next = pick(src, p.Palette)
	return s
}

// Resize rebuilds the track for a new viewport. Sphere distances are kept.
func (s *State) Resize(width, height float64) {
	path := BuildPath(width, height, s.params.Path)
	s.path = path
}

// Path returns the current track, or nil before the first Resize.
func (s *State) Path() *Path {
	return s.path
}

// Params returns the tuning in use.
func (s *State) Params() Params {
	return s.params
}

// SetSpeedScale multiplies the per-level chain speed.
func (s *State) SetSpeedScale(k float64) {
	if k <= 0 {
		k = 1
	}
	s.speedScale = k
}

// Speed returns the current chain speed.
func (s *State) Speed() float64 {
	return s.params.LevelSpeed(s.level) * s.speedScale
}

// Aim queues a launcher angle update (radians, 0 = +X, screen Y down).
func (s *State) Aim(angle float64) {
	s.intents = append(s.intents, intent{kind: intentAim, angle: angle})
}

// Fire queues a shot along the current aim.
func (s *State) Fire() {
	s.intents = append(s.intents, intent{kind: intentFire})
}

// FireAt queues an aim followed by a shot.
func (s *State) FireAt(angle float64) {
	s.Aim(angle)
	s.Fire()
}

// AimAngle returns the launcher angle after the last applied intent.
func (s *State) AimAngle() float64 {
	return s.aim
}

// Pending returns the number of queued intents.
func (s *State) Pending() int {
	return len(s.intents)
}

// Score returns points earned so far.
func (s *State) Score() int {
	return s.score
}

// Level returns the 1-based level.
func (s *State) Level() int {
	return s.level
}

// Spawned returns how many spheres this level has released.
func (s *State) Spawned() int {
	return s.spawned
}

func (s *State) Phase() Phase {
	return s.phase
}

func (s *State) TickCount() uint64 {
	return s.tick
}

// Shots returns the number of projectiles fired.
func (s *State) Shots() int {
	return s.shots
}

// Cleared returns the number of spheres removed by matches.
func (s *State) Cleared() int {
	return s.cleared
}

// Active returns the color loaded in the launcher.
func (s *State) Active() Color {
	return s.active
}

// Next returns the color that loads after the next shot.
func (s *State) Next() Color {
	return s.next
}

// Ended reports whether the session is over or won.
func (s *State) Ended() bool {
	return s.phase != PhasePlaying
}

// Chain returns a copy of the chain, goal end first.
func (s *State) Chain() []Sphere {
	out := make([]Sphere, len(s.chain))
	copy(out, s.chain)
	return out
}

// Tick advances the session by one fixed step.
func (s *State) Tick() TickResult {
	var res TickResult
	if s.phase != PhasePlaying {
		return res
	}
	if s.path == nil {
		res.Deferred = true
		return res
	}

	s.tick++
	res.Fired = s.applyIntents()

	d := s.params.Diameter()

	res.Spawned = s.spawn()

	prev := gaps(s.chain)
	Advance(s.chain, s.Speed(), d, s.params.Physics)
	for _, id := range s.closures(prev) {
		if idx := indexOf(s.chain, id); idx >= 0 {
			s.resolveMatch(idx, CauseClosure, &res)
		}
	}

	s.moveProjectiles()

	if hit, ok := Detect(s.projectiles, s.chain, s.path, d, s.params.Collision); ok {
		s.insert(hit, &res)
	}

	s.particles = stepParticles(s.particles, s.params.ParticleDecay)

	s.checkEnd(&res)
	return res
}

func (s *State) applyIntents() int {
	fired := 0
	for _, in := range s.intents {
		switch in.kind {
		case intentAim:
			s.aim = in.angle
		case intentFire:
			s.launch()
			fired++
		}
	}
	s.intents = s.intents[:0]
	return fired
}

func (s *State) launch() {
	dir := Dir(s.aim)
	s.projectiles = append(s.projectiles, Projectile{
		ID:    s.newID(),
		Pos:   s.path.Center().Add(dir.Scale(s.params.MuzzleOffset)),
		Vel:   dir.Scale(s.params.ProjectileSpeed),
		Color: s.active,
	})
	s.active = s.next
	s.next = pick(s.src, s.params.Palette)
	s.shots++
}

func (s *State) spawn() bool {
	if s.spawned >= s.params.Quota {
		return false
	}
	if n := len(s.chain); n > 0 && s.chain[n-1].Distance <= s.params.Diameter() {
		return false
	}
	s.chain = append(s.chain, Sphere{
		ID:    s.newID(),
		Color: pick(s.src, s.params.Palette),
	})
	s.spawned++
	return true
}

// closures returns the IDs of spheres whose gap to the follower closed this tick
// and whose follower has the same color.
func (s *State) closures(prev []float64) []uint64 {
	if len(prev) == 0 || len(prev) != len(s.chain)-1 {
		return nil
	}
	limit := s.params.Diameter() + s.params.ClosureTolerance
	var ids []uint64
	for i, before := range prev {
		after := s.chain[i].Distance - s.chain[i+1].Distance
		if before > limit && after <= limit && s.chain[i].Color == s.chain[i+1].Color {
			ids = append(ids, s.chain[i].ID)
		}
	}
	return ids
}

func (s *State) moveProjectiles() {
	m := s.params.CullMargin
	w, h := s.path.Width, s.path.Height
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		if p.Pos.X > -m && p.Pos.X < w+m && p.Pos.Y > -m && p.Pos.Y < h+m {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept
}

func (s *State) insert(hit Hit, res *TickResult) {
	proj := s.projectiles[hit.Projectile]
	s.projectiles = append(s.projectiles[:hit.Projectile], s.projectiles[hit.Projectile+1:]...)

	sphere := Sphere{ID: s.newID(), Color: proj.Color, Status: StatusInserted}
	chain, at := Insert(s.chain, hit, sphere, s.params.Diameter())
	if at < 0 {
		return
	}
	s.chain = chain
	res.Inserted = &InsertEvent{SphereID: sphere.ID, Index: at, Side: hit.Side}
	s.resolveMatch(at, CauseInsertion, res)
}

func (s *State) resolveMatch(idx int, cause MatchCause, res *TickResult) {
	run := MatchesAt(s.chain, idx, s.params.Diameter(), s.params.MatchTolerance, s.params.MinRun)
	if run == nil {
		return
	}

	removed := make([]Sphere, 0, len(run))
	for _, i := range run {
		sp := s.chain[i]
		sp.Status = StatusRemoving
		removed = append(removed, sp)
		s.particles = burst(s.particles, s.src, s.path.PointAt(sp.Distance), sp.Color,
			s.params.ParticlesPerSphere, s.params.ParticleSpread)
	}

	points := len(run) * s.params.PointsPerSphere
	s.score += points
	s.cleared += len(run)
	s.chain = removeRun(s.chain, run)

	res.Matches = append(res.Matches, MatchEvent{Cause: cause, Spheres: removed, Points: points})
}

// PastGoal reports whether any sphere has reached the goal on the current
// track, which ends the run on the next tick.
func (s *State) PastGoal() bool {
	if s.path == nil {
		return false
	}
	goal := s.path.TotalLength - s.params.GoalMargin
	for _, sp := range s.chain {
		if sp.Distance >= goal {
			return true
		}
	}
	return false
}

func (s *State) checkEnd(res *TickResult) {
	if s.PastGoal() {
		s.finish(PhaseOver, res)
		return
	}

	if s.spawned >= s.params.Quota && len(s.chain) == 0 {
		res.LevelCleared = true
		if s.params.MaxLevels > 0 && s.level >= s.params.MaxLevels {
			s.finish(PhaseWon, res)
			return
		}
		s.level++
		s.spawned = 0
	}
}

func (s *State) finish(phase Phase, res *TickResult) {
	s.phase = phase
	res.End = &EndEvent{
		Score: s.score,
		Level: s.level,
		Won:   phase == PhaseWon,
		Tick:  s.tick,
	}
}

func (s *State) newID() uint64 {
	s.nextID++
	return s.nextID
}
