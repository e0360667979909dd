package registry

import (
	"testing"

	"github.com/vovakirdan/spiral/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func register(id string) {
	Register(id, func() Game { return stubGame{id: id} })
}

func ids(infos []GameInfo) []string {
	out := make([]string, len(infos))
	for i, g := range infos {
		out[i] = g.ID
	}
	return out
}

func contains(list []string, id string) bool {
	for _, s := range list {
		if s == id {
			return true
		}
	}
	return false
}

func TestRegisterAndCreate(t *testing.T) {
	register("stuba")

	if !Exists("stuba") {
		t.Fatal("Exists(stuba) = false after Register")
	}
	g, err := Create("stuba")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stuba" {
		t.Errorf("Create().ID() = %q, expected stuba", g.ID())
	}

	info, ok := Info("stuba")
	if !ok || info.Title != "Stub stuba" || info.Base != "stuba" || info.IsVariant() {
		t.Errorf("Info(stuba) = %+v, %v", info, ok)
	}
}

func TestVariants(t *testing.T) {
	register("stubv")
	register("stubv_endless")
	register("stubv_zen")

	info, _ := Info("stubv_endless")
	if info.Base != "stubv" || info.Variant != "endless" {
		t.Errorf("Info(stubv_endless) = %+v, expected base stubv variant endless", info)
	}

	family := ids(Family("stubv"))
	expected := []string{"stubv", "stubv_endless", "stubv_zen"}
	if len(family) != len(expected) {
		t.Fatalf("Family(stubv) = %v, expected %v", family, expected)
	}
	for i := range expected {
		if family[i] != expected[i] {
			t.Errorf("Family(stubv)[%d] = %q, expected %q", i, family[i], expected[i])
		}
	}

	primary := ids(Primary())
	if !contains(primary, "stubv") || contains(primary, "stubv_endless") {
		t.Errorf("Primary() = %v, expected stubv without variants", primary)
	}
	if all := ids(List()); !contains(all, "stubv_zen") {
		t.Errorf("List() = %v, expected stubv_zen", all)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create(no_such_game) returned nil error")
	}
	if Exists("no_such_game") {
		t.Error("Exists(no_such_game) = true")
	}
}

func TestRegisterPanics(t *testing.T) {
	register("stubdup")

	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "stubdup"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tt.id)
				}
			}()
			register(tt.id)
		})
	}
}
