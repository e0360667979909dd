package tui

import (
	"strings"
	"testing"
)

func pressAll(m SpiralModeModel, keys ...string) SpiralModeModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(SpiralModeModel)
	}
	return m
}

func TestSpiralModeSelection(t *testing.T) {
	tests := []struct {
		name       string
		saved      []string
		keys       []string
		gameID     string
		difficulty string
		resume     bool
	}{
		{"campaign default", nil, []string{"enter", "enter"}, "spiral", "", false},
		{"endless hard", nil, []string{"down", "enter", "down", "down", "down", "enter"}, "spiral_endless", "hard", false},
		{"resume first", []string{"spiral"}, []string{"enter"}, "spiral", "", true},
		{"skip resume", []string{"spiral_endless"}, []string{"down", "enter", "down", "enter"}, "spiral", "easy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressAll(NewSpiralModeModel(80, 24, 5, tt.saved), tt.keys...)
			sel := m.Selected()
			if sel == nil {
				t.Fatal("Selected() = nil")
			}
			if sel.GameID != tt.gameID || sel.Difficulty != tt.difficulty || sel.Resume != tt.resume {
				t.Errorf("Selected() = %+v, expected {%s %s %v}", *sel, tt.gameID, tt.difficulty, tt.resume)
			}
		})
	}
}

func TestSpiralModeBack(t *testing.T) {
	m := pressAll(NewSpiralModeModel(80, 24, 5, nil), "enter", "esc")
	if m.Selected() != nil || m.WantsBack() {
		t.Error("esc in difficulty pick should return to mode list")
	}

	m = pressAll(m, "esc")
	if !m.WantsBack() {
		t.Error("WantsBack() = false after esc in mode list")
	}
}

func TestSpiralModeView(t *testing.T) {
	m := NewSpiralModeModel(80, 24, 5, []string{"spiral_endless"})
	view := m.View()
	for _, want := range []string{"Resume Endless", "Campaign (5 levels)", "Endless Mode"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
