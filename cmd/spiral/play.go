package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spiral/internal/config"
	"github.com/vovakirdan/spiral/internal/core"
	"github.com/vovakirdan/spiral/internal/games/spiral"
	"github.com/vovakirdan/spiral/internal/platform/tui"
	"github.com/vovakirdan/spiral/internal/registry"
	"github.com/vovakirdan/spiral/internal/savegame"
	"github.com/vovakirdan/spiral/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Rotate the launcher
  Mouse            - Aim at the pointer
  Space/Click      - Fire
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot (text and PNG)
  Q/Ctrl+C         - Quit (an unfinished run is suspended)

Difficulty options:
  easy   - Fewer colors and shorter levels
  normal - Chain speed rises with score and time
  hard   - Longer levels and slower shots
  fixed  - No speed progression

Examples:
  spiral play spiral
  spiral play spiral_endless --difficulty hard
  spiral play spiral --resume
  spiral play spiral --config ./my-spiral.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the suspended session for this game")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameOptions passes --config and --difficulty to the game package and
// reports a broken config before the terminal is taken over.
func applyGameOptions(difficulty string) {
	spiral.SetConfigPath(flagConfig)
	spiral.SetDifficultyPreset(difficulty)

	if _, err := config.LoadSpiral(flagConfig); err != nil {
		logger.Warn("config rejected, using defaults", "path", flagConfig, "error", err)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'spiral list' to see available games.")
		os.Exit(1)
	}

	cfg := terminalConfig()
	applyGameOptions(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	saves := savegame.Open(savegame.DefaultAppName)
	model := tui.NewModel(game, store, cfg).WithSaves(saves)

	if flagResume {
		sess, ok, loadErr := saves.Load(gameID)
		switch {
		case loadErr != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			os.Exit(1)
		case !ok:
			fmt.Fprintf(os.Stderr, "No suspended %s session; starting a new game.\n", gameID)
		default:
			model, err = model.ResumeFrom(sess)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resuming session: %v\n", err)
				os.Exit(1)
			}
			logger.Info("resuming session", "game", gameID, "saved", sess.SavedAt, "score", sess.State.Score)
		}
	}

	// Run the game
	restore := logToFile()
	runErr := tui.Run(model)
	restore()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
