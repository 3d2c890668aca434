package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/elloun/gameoflife/model"
	"github.com/elloun/gameoflife/utils"
)

// game bundles the simulator with the driver-side bookkeeping
type game struct {
	sim     *model.Simulator
	history *model.History
	stats   *utils.Stats
	config  utils.Config
	ended   bool
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, snapshotPath string) (*game, error) {
	g := &game{
		history: model.NewHistory(config.HistorySize),
		stats:   utils.NewStats(),
		config:  config,
	}

	opts := []model.Option{
		model.WithWorkers(config.Workers),
		model.WithListener(model.Listener{
			EnvironmentChanged: g.history.Reset,
			GameEnded:          func() { g.ended = true },
		}),
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithGridPool(model.NewGridPool()))
	}

	sim, err := model.NewSimulator(config.Size, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	g.sim = sim

	if snapshotPath == "" {
		model.SeedInterestingPatterns(sim.Grid(), config.RandomDensity, config.Seed)
		return g, nil
	}

	data, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] failed to read snapshot: %+v", snapshotPath)
	}
	if err = sim.DecodeSnapshot(string(data)); err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] failed to load snapshot: %+v", snapshotPath)
	}
	return g, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulator) {
	fmt.Printf("Features: Memory Pool: %v, Workers: %d, Stop on cycle: %v\n",
		config.UseMemoryPool, config.Workers, config.StopOnCycle)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		sim.Size(), sim.Size(), sim.LivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the step and returns why the game should end, if it should
func updateGameState(g *game, result model.StepResult, frameDuration time.Duration) string {
	g.stats.Update(g.sim.Generation(), g.sim.LivingCells(), frameDuration)

	switch {
	case g.ended || result.Outcome == model.Stable:
		return "population is stable"
	case result.Exhausted:
		return "generation budget used up"
	}

	if g.config.StopOnCycle {
		hash := g.sim.Hash()
		if g.history.Repeats(hash) {
			return "population is oscillating"
		}
		g.history.Add(hash)
	}
	return ""
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, result model.StepResult) {
	var (
		livingCells = g.sim.LivingCells()
		density     = utils.Density(livingCells, g.sim.Size())
		remaining   = "unbounded"
	)
	if result.RemainingGenerations >= 0 {
		remaining = fmt.Sprintf("%d", result.RemainingGenerations)
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Step: %s | Remaining: %s | %.1f gen/sec\n",
		g.sim.Generation(), livingCells, density, result.Outcome, remaining, g.stats.GenerationsPerSecond)
}
