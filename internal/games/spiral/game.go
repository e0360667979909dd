// Package spiral provides the spiral marble-chain shooter.
//
// The simulation itself lives in the core subpackage and works in world units.
// This package adapts it to the platform: it maps terminal cells to world
// coordinates, turns key and mouse input into aim and fire intents, and draws
// snapshots into a core.Screen.
package spiral

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spiral/internal/config"
	platformcore "github.com/vovakirdan/spiral/internal/core"
	"github.com/vovakirdan/spiral/internal/games/spiral/core"
	"github.com/vovakirdan/spiral/internal/registry"
	"github.com/vovakirdan/spiral/internal/savegame"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // fixed number of levels, win at the end
	ModeEndless                  // levels keep coming until a sphere reaches the goal
)

const (
	hudRows    = 1
	minScreenW = 30
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements registry.Game for the spiral shooter.
type Game struct {
	mode GameMode

	runtime    platformcore.RuntimeConfig
	cfg        config.SpiralConfig
	cfgErr     error
	difficulty *config.DifficultyManager
	view       platformcore.Viewport

	rng *core.SimpleRNG
	sim *core.State
	end *core.EndEvent

	aim      float64 // launcher angle requested by input
	paused   bool
	shrunk   bool // paused because a resize moved spheres past the goal
	tooSmall bool

	fades []fade
}

// fade is a sphere removed by a match, drawn hollow for a few ticks.
type fade struct {
	pos   core.Point
	color core.Color
	ticks int
}

const fadeTicks = 8

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "spiral_endless"
	}
	return "spiral"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Spiral (Endless)"
	}
	return "Spiral"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSpiral(configPath)
	if err != nil {
		cfg = config.DefaultSpiralConfig()
	}
	if difficultyPreset != "" {
		config.ApplySpiralPreset(&cfg, difficultyPreset)
	}

	params, perr := ParamsFromConfig(cfg, g.mode)
	if err == nil {
		err = perr
	}
	g.cfg = cfg
	g.cfgErr = err
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.view = platformcore.Viewport{
		CellW: cfg.View.CellWidth,
		CellH: cfg.View.CellHeight,
		Top:   hudRows,
	}

	g.rng = core.NewRNG(uint64(runtime.Seed)) //#nosec G115 -- seed bits reinterpreted
	g.sim = core.NewState(params, g.rng)
	g.sim.SetSpeedScale(g.difficulty.Speed(1, 0, 0))
	g.end = nil
	g.paused = false
	g.shrunk = false
	g.fades = nil
	g.aim = -math.Pi / 2
	g.sim.Aim(g.aim)

	g.layout()
}

// ConfigError returns the error hit while loading configuration during the
// last Reset, or nil. The game falls back to defaults when it is set.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Resize adapts the track to a new terminal size without restarting.
// Spheres keep their distance along the track, so a smaller window can put
// the lead sphere past the goal. The game pauses instead of ending at once.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	g.layout()

	if g.end == nil && !g.tooSmall && g.sim.PastGoal() {
		g.paused = true
		g.shrunk = true
	}
}

func (g *Game) layout() {
	g.tooSmall = g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH
	if g.tooSmall {
		return
	}
	w, h := g.view.WorldSize(g.runtime.ScreenW, g.runtime.ScreenH)
	g.sim.Resize(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) && g.end != nil {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && g.end == nil {
		g.paused = !g.paused
		g.shrunk = false
	}

	if g.tooSmall || g.paused || g.end != nil {
		return platformcore.StepResult{State: g.State()}
	}

	g.handleAim(in)
	if in.Has(platformcore.ActionFire) {
		g.sim.Fire()
	}

	if g.difficulty.IsEnabled() {
		g.sim.SetSpeedScale(g.difficulty.Speed(1, g.sim.Score(), int(g.sim.TickCount()))) //#nosec G115 -- tick count fits in int
	}
	res := g.sim.Tick()
	g.ageFades()

	return platformcore.StepResult{
		State:  g.State(),
		Events: g.events(res),
	}
}

// handleAim turns keyboard rotation and mouse position into an aim intent.
func (g *Game) handleAim(in platformcore.InputFrame) {
	aim := g.aim
	step := g.cfg.View.AimStepDegrees * math.Pi / 180

	if in.Pointer != nil {
		if path := g.sim.Path(); path != nil {
			wx, wy := g.view.ToWorld(in.Pointer.X, in.Pointer.Y)
			c := path.Center()
			if wx != c.X || wy != c.Y {
				aim = math.Atan2(wy-c.Y, wx-c.X)
			}
		}
	}
	if in.Has(platformcore.ActionLeft) {
		aim -= step
	}
	if in.Has(platformcore.ActionRight) {
		aim += step
	}

	if aim != g.aim {
		g.aim = math.Remainder(aim, 2*math.Pi)
		g.sim.Aim(g.aim)
	}
}

func (g *Game) events(res core.TickResult) []platformcore.StepEvent {
	var out []platformcore.StepEvent
	for _, m := range res.Matches {
		g.addFades(m.Spheres)
		out = append(out, platformcore.StepEvent{
			Kind:   platformcore.EventMatch,
			Points: m.Points,
			Count:  len(m.Spheres),
		})
	}
	if res.LevelCleared {
		out = append(out, platformcore.StepEvent{Kind: platformcore.EventLevelClear, Count: g.sim.Level()})
	}
	if res.End != nil {
		g.end = res.End
		out = append(out, platformcore.StepEvent{Kind: platformcore.EventGameOver, Points: res.End.Score})
	}
	return out
}

func (g *Game) addFades(removed []core.Sphere) {
	path := g.sim.Path()
	if path == nil {
		return
	}
	for _, sp := range removed {
		if sp.Status != core.StatusRemoving {
			continue
		}
		g.fades = append(g.fades, fade{pos: path.PointAt(sp.Distance), color: sp.Color, ticks: fadeTicks})
	}
}

// ageFades drops fades that have been shown long enough.
func (g *Game) ageFades() {
	kept := g.fades[:0]
	for _, f := range g.fades {
		if f.ticks--; f.ticks > 0 {
			kept = append(kept, f)
		}
	}
	g.fades = kept
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{Level: 1}
	}
	phase := g.sim.Phase()
	return platformcore.GameState{
		Score:    g.sim.Score(),
		Level:    g.sim.Level(),
		GameOver: phase != core.PhasePlaying,
		Won:      phase == core.PhaseWon,
		Paused:   g.paused,
	}
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() core.Snapshot {
	return g.sim.Snapshot()
}

// Suspend captures the session so it can be resumed later.
func (g *Game) Suspend() savegame.Session {
	return savegame.Session{
		GameID: g.ID(),
		Width:  g.runtime.ScreenW,
		Height: g.runtime.ScreenH,
		Seed:   g.runtime.Seed,
		State:  g.sim.Export(),
	}
}

// Resume restores a suspended session on top of a Reset game. The game
// starts paused so the player can get their bearings.
func (g *Game) Resume(sess savegame.Session) error {
	if sess.GameID != g.ID() {
		return fmt.Errorf("spiral: session belongs to %q, not %q", sess.GameID, g.ID())
	}
	if err := g.sim.Restore(sess.State); err != nil {
		return fmt.Errorf("spiral: restore session: %w", err)
	}
	g.aim = sess.State.Aim
	g.end = nil
	g.paused = true
	return nil
}

// Register the games with the registry
func init() {
	registry.Register("spiral", func() registry.Game {
		return New()
	})
	registry.Register("spiral_endless", func() registry.Game {
		return NewEndless()
	})
}
