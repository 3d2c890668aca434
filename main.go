package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elloun/gameoflife/utils"
)

func main() {
	var (
		configPath   = flag.String("config", "config.json", "path to JSON configuration")
		snapshotPath = flag.String("snapshot", "", "optional initial grid in '*'/'o' snapshot format")
		generations  = flag.Int("generations", 0, "generation budget, overrides max_generations when non-zero")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if *generations != 0 {
		config.MaxGenerations = *generations
	}

	g, err := initializeGame(config, *snapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize game: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, g.sim)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(max(config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	g.sim.Start(config.MaxGenerations)
	lastFrameTime := time.Now()

	for g.sim.Running() {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			g.sim.Stop()
			continue
		case <-ticker.C:
		}

		frameStart := time.Now()
		result := g.sim.Step()
		reason := updateGameState(g, result, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		displayGameStatus(g, result)
		if reason != "" {
			fmt.Printf("🏁 Game ended: %s\n", reason)
			g.sim.Stop()
		}
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.stats.TotalGenerations, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
	fmt.Print(g.sim.EncodeSnapshot())
}
