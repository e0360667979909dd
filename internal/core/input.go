package core

// Action is a semantic game input, independent of the key or button that
// produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // rotate aim counter-clockwise
	ActionRight          // rotate aim clockwise
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionFire           // shoot the loaded sphere
	ActionConfirm        // confirm a menu choice
	ActionBack           // leave to the menu
	ActionRestart        // new run after game over
	ActionQuit           // end the session
	ActionPause          // toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Up", "Down", "Fire",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionSet is a set of actions.
type ActionSet uint16

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return a != ActionNone && a < actionCount && s&(1<<a) != 0
}

// List returns the actions in the set in declaration order.
func (s ActionSet) List() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Pointer is the mouse position in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame collects the input of one player between two simulation ticks.
type InputFrame struct {
	Actions ActionSet

	// Pointer is the last mouse position seen, if any.
	Pointer *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.Actions |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions.Has(a)
}

// PointAt records a mouse position for this frame.
func (f *InputFrame) PointAt(x, y int) {
	f.Pointer = &Pointer{X: x, Y: y}
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Clone returns a copy that shares nothing with f.
func (f InputFrame) Clone() InputFrame {
	if f.Pointer != nil {
		p := *f.Pointer
		f.Pointer = &p
	}
	return f
}
