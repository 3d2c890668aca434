package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Size           int           `json:"size"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	Workers        int           `json:"workers"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	StopOnCycle    bool          `json:"stop_on_cycle"`
	HistorySize    int           `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           50,
		FrameRate:      300 * time.Millisecond,
		MaxGenerations: -1, // Run until stable
		RandomDensity:  0.15,
		Seed:           42,
		Workers:        1,
		UseMemoryPool:  true,
		StopOnCycle:    true,
		HistorySize:    5,
	}
}

// Validate rejects settings the simulator cannot run with
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("[Config.Validate] size must be positive, got %d", c.Size)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Config.Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Config.Validate] frame_rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}
