package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"size": 12, "max_generations": 30, "workers": 4, "frame_rate": 1000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Size != 12 || config.MaxGenerations != 30 || config.Workers != 4 {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.FrameRate != time.Millisecond {
		t.Fatalf("FrameRate = %v, want 1ms", config.FrameRate)
	}
	if config.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatal("unset fields should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"malformed json":   `{"size": `,
		"zero size":        `{"size": 0}`,
		"density too high": `{"random_density": 1.5}`,
		"negative frame":   `{"frame_rate": -5}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
}
