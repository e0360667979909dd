package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spiral/internal/config"
	"github.com/vovakirdan/spiral/internal/platform/tui"
	"github.com/vovakirdan/spiral/internal/registry"
	"github.com/vovakirdan/spiral/internal/savegame"
	"github.com/vovakirdan/spiral/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Picking Spiral opens the mode selector (campaign, endless, or a
suspended session) followed by a difficulty choice.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  spiral menu
  spiral menu --fps 30
  spiral menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db) and --config from play.go
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// campaignLevels reads the campaign length from the active config.
func campaignLevels() int {
	cfg, err := config.LoadSpiral(flagConfig)
	if err != nil {
		cfg = config.DefaultSpiralConfig()
	}
	return cfg.Level.CampaignLevels
}

// suspendedGames lists the spiral modes that have a saved session.
func suspendedGames(saves *savegame.Store) []string {
	var ids []string
	for _, g := range registry.Family("spiral") {
		if saves.Has(g.ID) {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	saves := savegame.Open(savegame.DefaultAppName)

	cfg := terminalConfig()

	restore := logToFile()
	defer restore()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		difficulty := flagDifficulty
		resume := false
		if gameID == "spiral" {
			selection, selErr := tui.RunSpiralModeSelector(cfg, campaignLevels(), suspendedGames(saves))
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			// User pressed back or quit
			if selection == nil {
				continue
			}
			gameID = selection.GameID
			resume = selection.Resume
			if selection.Difficulty != "" {
				difficulty = selection.Difficulty
			}
		}
		applyGameOptions(difficulty)

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()
		model := tui.NewModel(game, store, cfg).WithSaves(saves)

		if resume {
			if sess, ok, loadErr := saves.Load(gameID); ok {
				if model, err = model.ResumeFrom(sess); err != nil {
					logger.Error("could not resume session", "game", gameID, "error", err)
					continue
				}
			} else if loadErr != nil {
				logger.Error("could not load session", "game", gameID, "error", loadErr)
			}
		}

		if err := tui.Run(model); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
