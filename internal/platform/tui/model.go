package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spiral/internal/core"
	sim "github.com/vovakirdan/spiral/internal/games/spiral/core"
	"github.com/vovakirdan/spiral/internal/registry"
	"github.com/vovakirdan/spiral/internal/savegame"
	"github.com/vovakirdan/spiral/internal/storage"
)

// snapshotGame is implemented by games that can describe themselves as a
// simulation snapshot (used for PNG screenshots and run statistics).
type snapshotGame interface {
	Snapshot() sim.Snapshot
}

// suspendableGame is implemented by games that can be saved mid-run.
type suspendableGame interface {
	Suspend() savegame.Session
	Resume(savegame.Session) error
}

// statusSeconds is how long a status message stays on the bottom row.
const statusSeconds = 2

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	saves      *savegame.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	player     string
	started    time.Time
	prepared   bool // game already Reset (and possibly resumed) before Init

	status      string
	statusTicks int

	embedded   bool // running inside a session; Back returns to the menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been recorded for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		started:    time.Now(),
	}
}

// WithSaves enables suspend on quit through s.
func (m Model) WithSaves(s *savegame.Store) Model {
	m.saves = s
	return m
}

// WithPlayer tags recorded runs with a player name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// ResumeFrom resets the game and restores sess on top of it.
func (m Model) ResumeFrom(sess savegame.Session) (Model, error) {
	sg, ok := m.game.(suspendableGame)
	if !ok {
		return m, fmt.Errorf("game %s cannot be resumed", m.game.ID())
	}
	m.game.Reset(m.config)
	if err := sg.Resume(sess); err != nil {
		return m, err
	}
	m.prepared = true
	m.gameState = m.game.State()
	m.setStatus("Session resumed - press P to continue")
	return m, nil
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	if !m.prepared {
		m.game.Reset(m.config)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quit()
		return m, tea.Quit
	}

	if m.embedded && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.quit()
		m.quitting = false
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	if m.statusTicks > 0 {
		m.statusTicks--
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.started = time.Now()
		m.clearSuspended()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventLevelClear:
			m.setStatus(fmt.Sprintf("Level %d cleared!", ev.Count))
		case core.EventMatch:
			if ev.Count > 3 {
				m.setStatus(fmt.Sprintf("%d in a row! +%d", ev.Count, ev.Points))
			}
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		reason := storage.EndGoal
		if m.gameState.Won {
			reason = storage.EndCleared
		}
		m.recordRun(reason)
		m.clearSuspended()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// quit suspends an unfinished run, or records it when it cannot be suspended.
func (m *Model) quit() {
	m.quitting = true
	if m.gameState.GameOver || m.scoreSaved {
		return
	}
	if m.suspend() {
		return
	}
	if m.gameState.Score > 0 {
		m.recordRun(storage.EndQuit)
	}
	m.scoreSaved = true
}

func (m *Model) suspend() bool {
	sg, ok := m.game.(suspendableGame)
	if !ok || m.saves == nil {
		return false
	}
	return m.saves.Save(sg.Suspend()) == nil
}

func (m *Model) clearSuspended() {
	if m.saves != nil {
		//nolint:errcheck // Best-effort, a stale session is overwritten next quit
		m.saves.Clear(m.game.ID())
	}
}

// recordRun stores the score and a run summary.
func (m *Model) recordRun(reason string) {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	run := storage.RunRecord{
		GameID:    m.game.ID(),
		Player:    m.player,
		Score:     m.gameState.Score,
		Level:     m.gameState.Level,
		Duration:  int(time.Since(m.started).Seconds()),
		EndReason: reason,
	}
	if sg, ok := m.game.(snapshotGame); ok {
		snap := sg.Snapshot()
		run.Cleared = snap.Cleared
		run.Shots = snap.Shots
		run.Ticks = int(snap.Tick) //#nosec G115 -- tick count fits in int
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen as text, plus a PNG when the game
// exposes a snapshot.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := ScreenshotDir()
	if err != nil {
		m.setStatus("Screenshot failed: " + err.Error())
		return
	}

	var snap *sim.Snapshot
	if sg, ok := m.game.(snapshotGame); ok {
		s := sg.Snapshot()
		snap = &s
	}

	base, err := SaveScreenshot(dir, m.game.ID(), m.screen, snap, time.Now())
	if err != nil {
		m.setStatus("Screenshot failed: " + err.Error())
		return
	}
	m.setStatus("Saved " + base)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = statusSeconds * m.config.TickRate
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	switch {
	case m.statusTicks > 0 && m.status != "":
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status)
	case m.gameState.Paused:
		m.screen.DrawTextCentered(m.screen.Height()-1, helpLine(m.keyMapper.GameHelp()))
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the pointer
	)

	_, err := p.Run()
	return err
}
