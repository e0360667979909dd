package spiral

import (
	"math"
	"testing"

	"github.com/vovakirdan/spiral/internal/games/spiral/core"
)

func autoplaySnapshot() core.Snapshot {
	return core.Snapshot{
		Phase:    core.PhasePlaying,
		Launcher: core.Point{X: 400, Y: 300},
		Active:   core.ColorBlue,
		Spheres: []core.SphereView{
			{ID: 1, Color: core.ColorBlue, Distance: 100, Pos: core.Point{X: 400, Y: 100}},
			{ID: 2, Color: core.ColorRed, Distance: 300, Pos: core.Point{X: 100, Y: 300}},
			{ID: 3, Color: core.ColorBlue, Distance: 200, Pos: core.Point{X: 600, Y: 300}},
		},
	}
}

func TestAutoplayerTargetsMatchingColor(t *testing.T) {
	snap := autoplaySnapshot()
	a := &Autoplayer{Interval: 5}

	angle, fire := a.Plan(&snap)
	if !fire {
		t.Fatal("Plan() fire = false, expected true")
	}
	// Sphere 3 is the blue sphere nearest the goal, straight right of the launcher.
	if math.Abs(angle) > 1e-9 {
		t.Errorf("Plan() angle = %v, expected 0", angle)
	}
}

func TestAutoplayerFallsBackToLead(t *testing.T) {
	snap := autoplaySnapshot()
	snap.Active = core.ColorYellow
	a := &Autoplayer{Interval: 5}

	angle, fire := a.Plan(&snap)
	if !fire {
		t.Fatal("Plan() fire = false, expected true")
	}
	if math.Abs(math.Abs(angle)-math.Pi) > 1e-9 {
		t.Errorf("Plan() angle = %v, expected pi", angle)
	}
}

func TestAutoplayerInterval(t *testing.T) {
	snap := autoplaySnapshot()
	a := &Autoplayer{Interval: 4}

	var shots []int
	for tick := range 12 {
		if _, fire := a.Plan(&snap); fire {
			shots = append(shots, tick)
		}
	}

	expected := []int{0, 4, 8}
	if len(shots) != len(expected) {
		t.Fatalf("shots at %v, expected %v", shots, expected)
	}
	for i := range expected {
		if shots[i] != expected[i] {
			t.Errorf("shot %d at tick %d, expected %d", i, shots[i], expected[i])
		}
	}
}

func TestAutoplayerHoldsFire(t *testing.T) {
	tests := []struct {
		name string
		snap core.Snapshot
	}{
		{"empty chain", core.Snapshot{Phase: core.PhasePlaying}},
		{"game over", func() core.Snapshot {
			s := autoplaySnapshot()
			s.Phase = core.PhaseOver
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Autoplayer{}
			if _, fire := a.Plan(&tt.snap); fire {
				t.Error("Plan() fire = true, expected false")
			}
		})
	}
}

func TestAutoplayerClearsSpheres(t *testing.T) {
	g := newTestGame(t, ModeEndless)
	a := &Autoplayer{Interval: DefaultFireInterval}

	for range 3000 {
		snap := g.Snapshot()
		if angle, fire := a.Plan(&snap); fire {
			g.sim.FireAt(angle)
		}
		if g.sim.Tick().End != nil {
			break
		}
	}

	if g.sim.Shots() == 0 {
		t.Fatal("autoplayer never fired")
	}
	if g.sim.Cleared() == 0 {
		t.Error("autoplayer cleared no spheres")
	}
}
