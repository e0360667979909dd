// spiral is a terminal marble-chain shooter: spheres roll along a spiral
// track and the player fires colored spheres into the chain to clear runs
// of three or more before the chain reaches the goal.
//
// Usage:
//
//	spiral list              - List available games
//	spiral play <game>       - Play a game
//	spiral menu              - Start menu to pick games interactively
//	spiral serve             - Start SSH server for remote play
//	spiral scores <game>     - Show high scores and recent runs
//	spiral sim               - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.spiral/scores.db)
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/spiral/internal/games/spiral"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger is the process logger, configured before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "spiral"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spiral",
	Short: "Spiral - a marble-chain shooter for your terminal",
	Long: `Spiral is a terminal marble-chain shooter. A chain of colored spheres
rolls along a spiral track toward the goal; aim the launcher and fire
spheres into the chain to make runs of three or more of one color.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Run the simulation headless

Examples:
  spiral list
  spiral play spiral
  spiral play spiral_endless --difficulty hard
  spiral menu
  spiral serve --ssh :2222
  spiral sim --ticks 3600 --png final.png`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		log.SetDefault(logger)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spiral/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// logToFile redirects the process logger to ~/.spiral/spiral.log while a
// full-screen program owns the terminal. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	path := filepath.Join(home, ".spiral", "spiral.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- fixed path under home
	if err != nil {
		return func() {}
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}
