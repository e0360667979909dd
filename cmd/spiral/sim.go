package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spiral/internal/config"
	"github.com/vovakirdan/spiral/internal/games/spiral"
	sim "github.com/vovakirdan/spiral/internal/games/spiral/core"
	"github.com/vovakirdan/spiral/internal/platform/tui"
)

var (
	flagSimTicks    int
	flagSimWidth    float64
	flagSimHeight   float64
	flagSimRealtime bool
	flagSimPNG      string
	flagSimEndless  bool
	flagSimInterval int
)

// progressEvery is the minimum wall time between progress lines.
const progressEvery = 250 * time.Millisecond

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless with an autoplayer",
	Long: `Run one session without a terminal UI. An autoplayer fires at the
sphere nearest the goal that matches the loaded color. Progress is printed
while the simulation runs; Ctrl+C stops it early.

With the same --seed, config and size the run is fully reproducible.

Examples:
  spiral sim --seed 42
  spiral sim --ticks 36000 --endless
  spiral sim --realtime --fps 60
  spiral sim --seed 7 --png final.png`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 18000, "Maximum ticks to simulate")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 800, "World width")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 600, "World height")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().StringVar(&flagSimPNG, "png", "", "Write the final frame to this PNG file")
	simCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Run endless mode instead of the campaign")
	simCmd.Flags().IntVar(&flagSimInterval, "fire-every", spiral.DefaultFireInterval, "Ticks between autoplayer shots")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simRun is one headless session.
type simRun struct {
	state    *sim.State
	feed     *sim.Feed
	speed    *config.DifficultyManager
	bot      spiral.Autoplayer
	maxTicks int
	pace     time.Duration // zero runs flat out
}

// simOutcome is what the simulating goroutine hands back when it stops.
type simOutcome struct {
	final sim.Snapshot
	end   *sim.EndEvent
	err   error
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSpiral(flagConfig)
	if err != nil {
		logger.Warn("config rejected, using defaults", "path", flagConfig, "error", err)
		cfg = config.DefaultSpiralConfig()
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplySpiralPreset(&cfg, preset)
	}

	mode := spiral.ModeCampaign
	if flagSimEndless {
		mode = spiral.ModeEndless
	}
	params, err := spiral.ParamsFromConfig(cfg, mode)
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state := sim.NewState(params, sim.NewRNG(uint64(seed))) //#nosec G115 -- seed bits reinterpreted
	state.Resize(flagSimWidth, flagSimHeight)
	if state.Path() == nil {
		return fmt.Errorf("world %vx%v is too small for a track", flagSimWidth, flagSimHeight)
	}

	speed := config.NewDifficultyManager(cfg.Difficulty)
	state.SetSpeedScale(speed.Speed(1, 0, 0))

	run := &simRun{
		state:    state,
		feed:     sim.NewFeed(),
		speed:    speed,
		bot:      spiral.Autoplayer{Interval: flagSimInterval},
		maxTicks: flagSimTicks,
	}
	if flagSimRealtime && flagFPS > 0 {
		run.pace = time.Second / time.Duration(flagFPS)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation started", "seed", seed, "mode", modeName(mode), "ticks", flagSimTicks,
		"realtime", run.pace > 0, "speed_ramp", speed.IsEnabled())
	started := time.Now()

	done := make(chan simOutcome, 1)
	go func() {
		done <- run.simulate(ctx)
	}()

	var last time.Time
	var out simOutcome
wait:
	for {
		select {
		case <-run.feed.Updates():
			if time.Since(last) < progressEvery {
				continue
			}
			last = time.Now()
			if snap, ok := run.feed.Latest(); ok {
				printProgress(&snap)
			}
		case out = <-done:
			break wait
		}
	}

	printProgress(&out.final)
	logger.Info("simulation finished", "elapsed", time.Since(started).Round(time.Millisecond), "ticks", out.final.Tick)
	if out.err != nil {
		logger.Warn("simulation stopped early", "error", out.err)
	}

	switch {
	case out.end == nil:
		fmt.Printf("Stopped at tick %d: score %d, level %d\n", out.final.Tick, out.final.Score, out.final.Level)
	case out.end.Won:
		fmt.Printf("Campaign cleared at tick %d: score %d\n", out.end.Tick, out.end.Score)
	default:
		fmt.Printf("Game over at tick %d: score %d, level %d\n", out.end.Tick, out.end.Score, out.end.Level)
	}
	fmt.Printf("Shots: %d  Spheres cleared: %d\n", out.final.Shots, out.final.Cleared)

	if flagSimPNG != "" {
		if err := tui.ExportPNG(flagSimPNG, &out.final); err != nil {
			return fmt.Errorf("export png: %w", err)
		}
		logger.Info("final frame written", "path", flagSimPNG)
	}
	return nil
}

// simulate owns the State: it ticks until the session ends, maxTicks is
// reached or ctx is cancelled, publishing a snapshot after every tick.
func (r *simRun) simulate(ctx context.Context) simOutcome {
	var pace <-chan time.Time
	if r.pace > 0 {
		ticker := time.NewTicker(r.pace)
		defer ticker.Stop()
		pace = ticker.C
	}

	snap := r.state.Snapshot()
	r.feed.Publish(snap)

	for range r.maxTicks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return simOutcome{final: snap, err: ctx.Err()}
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return simOutcome{final: snap, err: err}
		}

		if angle, fire := r.bot.Plan(&snap); fire {
			r.state.FireAt(angle)
		}
		if r.speed.IsEnabled() {
			r.state.SetSpeedScale(r.speed.Speed(1, r.state.Score(), int(r.state.TickCount()))) //#nosec G115 -- tick count fits in int
		}
		res := r.state.Tick()

		snap = r.state.Snapshot()
		r.feed.Publish(snap)
		if res.End != nil {
			return simOutcome{final: snap, end: res.End}
		}
	}
	return simOutcome{final: snap}
}

func printProgress(snap *sim.Snapshot) {
	fmt.Printf("tick %6d  level %2d  spawned %3d/%-3d  chain %3d  score %7d  speed %.2f\n",
		snap.Tick, snap.Level, snap.Spawned, snap.Quota, len(snap.Spheres), snap.Score, snap.Speed)
}

func modeName(m spiral.GameMode) string {
	if m == spiral.ModeEndless {
		return "endless"
	}
	return "campaign"
}
