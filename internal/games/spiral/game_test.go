package spiral

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/spiral/internal/config"
	platformcore "github.com/vovakirdan/spiral/internal/core"
	"github.com/vovakirdan/spiral/internal/games/spiral/core"
	"github.com/vovakirdan/spiral/internal/registry"
)

func testConfig() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

// newTestGame isolates config lookup from the developer's home and cwd.
func newTestGame(t *testing.T, mode GameMode) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := &Game{mode: mode}
	g.Reset(testConfig())
	if err := g.ConfigError(); err != nil {
		t.Fatalf("Reset() config error = %v", err)
	}
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"spiral", "spiral_endless"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false", id)
		}
	}
	if New().ID() != "spiral" || NewEndless().ID() != "spiral_endless" {
		t.Errorf("IDs = %q, %q", New().ID(), NewEndless().ID())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]platformcore.InputFrame, 600)
	for i := range inputs {
		inputs[i] = platformcore.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(platformcore.ActionFire)
		case i%7 < 3:
			inputs[i].Set(platformcore.ActionRight)
		case i%11 == 0:
			inputs[i].Set(platformcore.ActionLeft)
		}
	}

	run := func() core.Snapshot {
		g := newTestGame(t, ModeCampaign)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Shots == 0 {
		t.Error("expected the input sequence to fire at least once")
	}
}

func TestGameWorldSize(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	snap := g.Snapshot()

	if snap.Width != 800 || snap.Height != 460 {
		t.Errorf("world = %vx%v, expected 800x460", snap.Width, snap.Height)
	}
	if snap.Quota != 60 {
		t.Errorf("Quota = %d, expected 60", snap.Quota)
	}
}

func TestGameAimKeys(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	start := g.aim

	g.Step(frame(platformcore.ActionRight))
	want := start + 5*math.Pi/180
	if got := g.sim.AimAngle(); math.Abs(got-want) > 1e-9 {
		t.Errorf("AimAngle() after Right = %v, expected %v", got, want)
	}

	g.Step(frame(platformcore.ActionLeft))
	g.Step(frame(platformcore.ActionLeft))
	want = start - 5*math.Pi/180
	if got := g.sim.AimAngle(); math.Abs(got-want) > 1e-9 {
		t.Errorf("AimAngle() after Left x2 = %v, expected %v", got, want)
	}
}

func TestGamePointerAim(t *testing.T) {
	g := newTestGame(t, ModeCampaign)

	// Cell (60, 12) maps to world (605, 230), level with the launcher at (400, 230).
	in := platformcore.NewInputFrame()
	in.PointAt(60, 12)
	g.Step(in)

	if got := g.sim.AimAngle(); math.Abs(got) > 1e-9 {
		t.Errorf("AimAngle() = %v, expected 0", got)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	g.Step(frame())
	ticks := g.sim.TickCount()

	if res := g.Step(frame(platformcore.ActionPause)); !res.State.Paused {
		t.Fatal("State.Paused = false after pause")
	}
	g.Step(frame())
	if g.sim.TickCount() != ticks {
		t.Errorf("TickCount() = %d while paused, expected %d", g.sim.TickCount(), ticks)
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("State.Paused = true after second pause")
	}
}

func TestGameTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})
	g.Step(frame())
	if g.sim.TickCount() != 0 {
		t.Errorf("TickCount() = %d on a tiny screen, expected 0", g.sim.TickCount())
	}

	screen := platformcore.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("Render() = %q, expected size warning", screen.String())
	}

	g.Resize(80, 24)
	g.Step(frame())
	if g.sim.TickCount() != 1 {
		t.Errorf("TickCount() = %d after growing, expected 1", g.sim.TickCount())
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, ModeEndless)
	for range 120 {
		g.Step(frame())
	}
	before := g.Snapshot()

	g.Resize(100, 30)
	after := g.Snapshot()

	if after.Width != 1000 || after.Height != 580 {
		t.Errorf("world after resize = %vx%v, expected 1000x580", after.Width, after.Height)
	}
	if len(after.Spheres) != len(before.Spheres) {
		t.Fatalf("sphere count changed: %d -> %d", len(before.Spheres), len(after.Spheres))
	}
	for i := range after.Spheres {
		if after.Spheres[i].Distance != before.Spheres[i].Distance {
			t.Errorf("sphere %d distance changed: %v -> %v", i, before.Spheres[i].Distance, after.Spheres[i].Distance)
		}
	}
	if after.Score != before.Score || after.Tick != before.Tick {
		t.Error("resize reset the session")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, ModeCampaign)

	ends := 0
	for range 20000 {
		res := g.Step(frame())
		for _, ev := range res.Events {
			if ev.Kind == platformcore.EventGameOver {
				ends++
			}
		}
		if res.State.GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Fatal("chain never reached the goal")
	}

	g.Step(frame())
	g.Step(frame())
	if ends != 1 {
		t.Errorf("EventGameOver emitted %d times, expected 1", ends)
	}

	g.Step(frame(platformcore.ActionRestart))
	st := g.State()
	if st.GameOver || st.Score != 0 || st.Level != 1 {
		t.Errorf("State() after restart = %+v", st)
	}
	if n := len(g.Snapshot().Spheres); n != 0 {
		t.Errorf("restart left %d spheres", n)
	}
}

func TestGameSuspendResume(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	for i := range 200 {
		if i == 50 {
			g.Step(frame(platformcore.ActionFire))
			continue
		}
		g.Step(frame(platformcore.ActionRight))
	}
	sess := g.Suspend()
	if sess.GameID != "spiral" || sess.Width != 80 || sess.Height != 24 {
		t.Errorf("Suspend() = %+v", sess)
	}

	h := newTestGame(t, ModeCampaign)
	if err := h.Resume(sess); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if !h.State().Paused {
		t.Error("resumed game should start paused")
	}

	a, b := g.Snapshot(), h.Snapshot()
	if a.Score != b.Score || a.Tick != b.Tick || a.Aim != b.Aim || a.Active != b.Active {
		t.Errorf("resumed snapshot differs: %+v vs %+v", b, a)
	}
	if len(a.Spheres) != len(b.Spheres) {
		t.Fatalf("resumed chain has %d spheres, expected %d", len(b.Spheres), len(a.Spheres))
	}
	for i := range a.Spheres {
		sa, sb := a.Spheres[i], b.Spheres[i]
		if sa.ID != sb.ID || sa.Color != sb.Color || sa.Distance != sb.Distance {
			t.Errorf("sphere %d = %+v, expected %+v", i, sb, sa)
		}
	}

	if err := NewEndless().Resume(sess); err == nil {
		t.Error("Resume() into a different game returned nil error")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	for range 60 {
		g.Step(frame())
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Level 1/5") {
		t.Errorf("HUD row = %q, expected campaign level", screen.Row(0))
	}
	text := screen.String()
	for _, r := range []rune{LauncherChar, SphereChar, TrackChar, GoalChar} {
		if !strings.ContainsRune(text, r) {
			t.Errorf("Render() missing %q", r)
		}
	}

	g.Step(frame(platformcore.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Render() while paused missing PAUSED box")
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultSpiralConfig()

	endless, err := ParamsFromConfig(cfg, ModeEndless)
	if err != nil {
		t.Fatalf("ParamsFromConfig() error = %v", err)
	}
	if !reflect.DeepEqual(endless, core.DefaultParams()) {
		t.Errorf("ParamsFromConfig(defaults) = %+v, expected core.DefaultParams()", endless)
	}

	campaign, _ := ParamsFromConfig(cfg, ModeCampaign)
	if campaign.MaxLevels != 5 {
		t.Errorf("campaign MaxLevels = %d, expected 5", campaign.MaxLevels)
	}

	cfg.Palette = []string{"red", "mauve", "blue"}
	if _, err := ParamsFromConfig(cfg, ModeEndless); err == nil {
		t.Error("ParamsFromConfig() with unknown color returned nil error")
	}
}

// restoreChain replaces the session with a still chain and no spawning.
func restoreChain(t *testing.T, g *Game, colors []string, distances []float64, shots ...core.SavedProjectile) {
	t.Helper()
	sv := core.Save{Level: 1, Spawned: 1000, NextID: 100, Active: "red", Next: "red", Projectiles: shots}
	for i, c := range colors {
		sv.Chain = append(sv.Chain, core.SavedSphere{ID: uint64(i + 1), Color: c, Distance: distances[i]})
	}
	if err := g.sim.Restore(sv); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
}

func shotAt(g *Game, distance float64, color string) core.SavedProjectile {
	p := g.sim.Path().PointAt(distance)
	return core.SavedProjectile{ID: 99, X: p.X, Y: p.Y, Color: color}
}

func TestGameShrinkPauses(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	g.Resize(100, 30)

	w, h := g.view.WorldSize(80, 24)
	small := core.BuildPath(w, h, g.sim.Params().Path)
	lead := small.TotalLength - g.sim.Params().GoalMargin + 5
	if lead+g.sim.Params().Diameter() >= g.sim.Path().TotalLength-g.sim.Params().GoalMargin {
		t.Fatalf("large track (%v) not longer than small track (%v)", g.sim.Path().TotalLength, small.TotalLength)
	}
	restoreChain(t, g, []string{"blue"}, []float64{lead})

	g.Step(frame())
	if g.State().Paused || g.State().GameOver {
		t.Fatalf("State() before shrink = %+v", g.State())
	}
	tick := g.sim.TickCount()

	g.Resize(80, 24)
	if !g.State().Paused {
		t.Fatal("shrinking past the lead sphere should pause")
	}
	g.Step(frame())
	if g.sim.TickCount() != tick || g.State().GameOver {
		t.Errorf("paused game advanced: tick %d -> %d, over = %v", tick, g.sim.TickCount(), g.State().GameOver)
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Track shortened") {
		t.Error("Render() after shrink missing track shortened notice")
	}

	g.Resize(100, 30)
	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused || g.State().GameOver {
		t.Errorf("State() after growing and resuming = %+v", g.State())
	}
	g.Render(screen)
	if strings.Contains(screen.String(), "Track shortened") {
		t.Error("track shortened notice kept after resuming")
	}
}

func TestGameRenderInserted(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	d := g.sim.Params().Diameter()
	restoreChain(t, g, []string{"blue", "red", "blue"}, []float64{4 * d, 3 * d, 2 * d}, shotAt(g, 3.5*d, "green"))

	g.Step(frame())

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), InsertedChar) {
		t.Errorf("Render() after insertion missing %q", InsertedChar)
	}

	g.Step(frame())
	g.Render(screen)
	if strings.ContainsRune(screen.String(), InsertedChar) {
		t.Errorf("Render() kept %q a tick after insertion", InsertedChar)
	}
}

func TestGameRenderFades(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	d := g.sim.Params().Diameter()
	restoreChain(t, g, []string{"blue", "red", "red"}, []float64{5 * d, 4 * d, 3 * d}, shotAt(g, 3.5*d, "red"))

	res := g.Step(frame())
	if g.State().Score == 0 {
		t.Fatalf("Step() events = %+v, expected a match", res.Events)
	}
	if len(g.fades) != 3 {
		t.Fatalf("len(fades) = %d, expected 3", len(g.fades))
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), FadeChar) {
		t.Errorf("Render() after match missing %q", FadeChar)
	}

	for range fadeTicks {
		g.Step(frame())
	}
	if len(g.fades) != 0 {
		t.Errorf("len(fades) = %d after %d ticks, expected 0", len(g.fades), fadeTicks)
	}
}
