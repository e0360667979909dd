package core

import (
	"reflect"
	"testing"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Errorf("Has() missing set actions, got %v", f.Actions.List())
	}
	if f.Has(ActionNone) || f.Has(ActionPause) {
		t.Error("Has() reported an action that was never set")
	}
	if got := f.Actions.List(); !reflect.DeepEqual(got, []Action{ActionLeft, ActionFire}) {
		t.Errorf("List() = %v, expected [Left Fire]", got)
	}

	f.PointAt(3, 4)
	c := f.Clone()
	f.Pointer.X = 9
	if c.Pointer.X != 3 {
		t.Errorf("Clone() shares the pointer, X = %d", c.Pointer.X)
	}

	f.Clear()
	if f.Actions != 0 || f.Pointer != nil {
		t.Errorf("Clear() left %+v", f)
	}
	if !c.Has(ActionFire) {
		t.Error("Clear() changed the clone")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFire, "Fire"},
		{ActionPause, "Pause"},
		{Action(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}
