package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spiral/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

var quitBinding = key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))

// KeyMapper translates Bubble Tea key and mouse messages to game and menu
// actions. Bindings are checked in order, so quit always wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{quitBinding, core.ActionQuit},
			{key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("←/a", "aim left")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("→/d", "aim right")), core.ActionRight},
			{key.NewBinding(key.WithKeys("w", "up")), core.ActionUp},
			{key.NewBinding(key.WithKeys("s", "down")), core.ActionDown},
			{key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")), core.ActionFire},
			{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
			{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "menu")), core.ActionBack},
			{key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
		},
		menu: []menuBinding{
			{quitBinding, MenuActionQuit},
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to an action and reports whether it
// asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MapMouseToFrame records the pointer position; a left click also fires.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.PointAt(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionFire)
	}
}

// GameHelp returns the bindings worth showing during play.
func (km *KeyMapper) GameHelp() []key.Binding {
	var out []key.Binding
	for _, b := range km.game {
		if b.binding.Help().Key != "" {
			out = append(out, b.binding)
		}
	}
	return out
}

// helpLine renders bindings as plain text for the cell screen.
func helpLine(bindings []key.Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Help().Key + " " + b.Help().Desc
	}
	return strings.Join(parts, "  ")
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
