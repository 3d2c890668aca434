package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elloun/gameoflife/model"
	"github.com/elloun/gameoflife/utils"
)

func TestInitializeGameFromSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("ooooo\nooooo\no***o\nooooo\nooooo\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	config := utils.DefaultConfig()
	config.Size = 5
	g, err := initializeGame(config, path)
	if err != nil {
		t.Fatal(err)
	}
	if g.sim.LivingCells() != 3 {
		t.Fatalf("LivingCells() = %d, want 3", g.sim.LivingCells())
	}

	g.sim.Start(model.Unbounded)
	reasons := make([]string, 0, 3)
	for range 3 {
		reasons = append(reasons, updateGameState(g, g.sim.Step(), 0))
	}
	// Gen 1 and 2 are new; gen 3 matches gen 1.
	if reasons[0] != "" || reasons[1] != "" || reasons[2] != "population is oscillating" {
		t.Fatalf("unexpected end reasons %q", reasons)
	}
}

func TestInitializeGameRejectsBadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	if err := os.WriteFile(path, []byte("ooo\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	config := utils.DefaultConfig()
	config.Size = 5
	if _, err := initializeGame(config, path); err == nil {
		t.Fatal("short snapshot should fail")
	}
	if _, err := initializeGame(config, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("missing snapshot should fail")
	}
}

func TestUpdateGameStateEndings(t *testing.T) {
	config := utils.DefaultConfig()
	config.Size = 6
	config.StopOnCycle = false

	g, err := initializeGame(config, "")
	if err != nil {
		t.Fatal(err)
	}
	g.sim.Clear()
	g.ended = false
	model.AddBlinker(g.sim.Grid(), 2, 1)

	g.sim.Start(1)
	if reason := updateGameState(g, g.sim.Step(), 0); reason != "generation budget used up" {
		t.Fatalf("reason = %q", reason)
	}

	g.sim.Clear()
	if reason := updateGameState(g, g.sim.Step(), 0); reason != "population is stable" {
		t.Fatalf("reason = %q", reason)
	}
}
