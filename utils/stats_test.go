package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.TotalGenerations != 1 || s.ActiveCells != 100 || s.AveragePopulation != 100 {
		t.Fatalf("after first update: %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatal("zero duration must not reset the rate")
	}
}

func TestDensity(t *testing.T) {
	if got := Density(25, 10); got != 25 {
		t.Fatalf("Density(25, 10) = %v, want 25", got)
	}
	if got := Density(3, 0); got != 0 {
		t.Fatalf("Density with empty grid = %v, want 0", got)
	}
}
