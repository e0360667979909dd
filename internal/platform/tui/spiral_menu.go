package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spiral/internal/core"
)

// SpiralSelection holds the user's choice from the spiral mode selector.
type SpiralSelection struct {
	GameID     string // "spiral" or "spiral_endless"
	Difficulty string // "" keeps the configured difficulty
	Resume     bool   // continue the suspended session for GameID
}

// Difficulty choices shown in the selector, in order.
var difficultyChoices = []struct {
	preset string
	label  string
}{
	{"", "Default (as configured)"},
	{"easy", "Easy - 4 colors, short levels"},
	{"normal", "Normal - speed rises with score"},
	{"hard", "Hard - long levels, slow shots"},
	{"fixed", "Fixed - no speed ramp"},
}

// SpiralModeModel lets users choose mode and difficulty for the spiral game.
type SpiralModeModel struct {
	options    []spiralOption
	cursor     int
	diffCursor int
	inDiffPick bool
	width      int
	height     int
	keyMapper  *KeyMapper
	selection  SpiralSelection
	choosing   bool
	quitting   bool
	back       bool
}

type spiralOption struct {
	label  string
	gameID string
	resume bool
}

// NewSpiralModeModel creates the selector. saved lists game IDs that have a
// suspended session; each gets a resume entry at the top.
func NewSpiralModeModel(width, height, campaignLevels int, saved []string) SpiralModeModel {
	var options []spiralOption
	for _, id := range saved {
		label := "Resume Campaign"
		if strings.HasSuffix(id, "_endless") {
			label = "Resume Endless"
		}
		options = append(options, spiralOption{label: label, gameID: id, resume: true})
	}
	options = append(options,
		spiralOption{label: fmt.Sprintf("Campaign (%d levels)", campaignLevels), gameID: "spiral"},
		spiralOption{label: "Endless Mode", gameID: "spiral_endless"},
	)

	return SpiralModeModel{
		options:   options,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SpiralModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SpiralModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SpiralModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDiffPick {
		return m.handleDifficultyKey(action)
	}
	return m.handleModeKey(action)
}

func (m SpiralModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		opt := m.options[m.cursor]
		if opt.resume {
			m.choosing = false
			m.selection = SpiralSelection{GameID: opt.gameID, Resume: true}
			return m, tea.Quit
		}
		m.selection = SpiralSelection{GameID: opt.gameID}
		m.inDiffPick = true
		m.diffCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SpiralModeModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyChoices)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = difficultyChoices[m.diffCursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.inDiffPick = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m SpiralModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDiffPick {
		return m.viewDifficulty()
	}
	return m.viewModes()
}

func (m SpiralModeModel) viewModes() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S P I R A L", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SpiralModeModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, c := range difficultyChoices {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+c.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SpiralModeModel) Selected() *SpiralSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SpiralModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SpiralModeModel) WantsBack() bool {
	return m.back
}

// RunSpiralModeSelector runs the spiral mode selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunSpiralModeSelector(cfg core.RuntimeConfig, campaignLevels int, saved []string) (*SpiralSelection, error) {
	model := NewSpiralModeModel(cfg.ScreenW, cfg.ScreenH, campaignLevels, saved)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SpiralModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
