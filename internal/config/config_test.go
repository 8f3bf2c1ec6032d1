package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.PlatformRadius != 200 {
		t.Errorf("PlatformRadius = %v, want 200", cfg.PlatformRadius)
	}
	if cfg.OrbitRadius != 175 {
		t.Errorf("OrbitRadius = %v, want 175", cfg.OrbitRadius)
	}
	if cfg.HorseWidth != 30 || cfg.HorseHeight != 10 {
		t.Errorf("horse size = %vx%v, want 30x10", cfg.HorseWidth, cfg.HorseHeight)
	}
	if cfg.HorseCount != 8 {
		t.Errorf("HorseCount = %d, want 8", cfg.HorseCount)
	}
	if cfg.BaseRevolutionDuration() != 5*time.Second {
		t.Errorf("BaseRevolutionDuration = %v, want 5s", cfg.BaseRevolutionDuration())
	}
	if cfg.Easing != EasingEaseOut {
		t.Errorf("Easing = %q, want %q", cfg.Easing, EasingEaseOut)
	}
	if cfg.Counter != CounterFraction {
		t.Errorf("Counter = %q, want %q", cfg.Counter, CounterFraction)
	}
	if !cfg.Music {
		t.Error("Music not enabled by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	data := "orbit_radius: 150\nbase_revolution_ms: 7500\neasing: linear\ncounter: completed\nmusic: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OrbitRadius != 150 {
		t.Errorf("OrbitRadius = %v, want 150", cfg.OrbitRadius)
	}
	if cfg.BaseRevolutionMs != 7500 {
		t.Errorf("BaseRevolutionMs = %d, want 7500", cfg.BaseRevolutionMs)
	}
	if cfg.Easing != EasingLinear {
		t.Errorf("Easing = %q, want linear", cfg.Easing)
	}
	if cfg.Counter != CounterCompleted {
		t.Errorf("Counter = %q, want completed", cfg.Counter)
	}
	if cfg.Music {
		t.Error("Music override ignored")
	}
	// Untouched fields keep their defaults.
	if cfg.PlatformRadius != 200 {
		t.Errorf("PlatformRadius = %v, want default 200", cfg.PlatformRadius)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	data := "orbit_radius: -5\nhorse_count: 0\nbase_revolution_ms: -100\neasing: bouncy\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.OrbitRadius != def.OrbitRadius {
		t.Errorf("OrbitRadius = %v, want clamped to %v", cfg.OrbitRadius, def.OrbitRadius)
	}
	if cfg.HorseCount != def.HorseCount {
		t.Errorf("HorseCount = %d, want clamped to %d", cfg.HorseCount, def.HorseCount)
	}
	if cfg.BaseRevolutionMs != def.BaseRevolutionMs {
		t.Errorf("BaseRevolutionMs = %d, want clamped to %d", cfg.BaseRevolutionMs, def.BaseRevolutionMs)
	}
	if cfg.Easing != def.Easing {
		t.Errorf("Easing = %q, want clamped to %q", cfg.Easing, def.Easing)
	}
}

func TestLoadMalformedYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	// Unclosed flow sequence; yaml.Unmarshal must reject this.
	if err := os.WriteFile(path, []byte("easing: [linear,\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("malformed YAML did not return an error")
	}
	if cfg != Default() {
		t.Errorf("malformed YAML did not fall back to defaults: %+v", cfg)
	}
}

func TestOrbitRadiusClampedWhenOutsidePlatform(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	data := "platform_radius: 100\norbit_radius: 300\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OrbitRadius > cfg.PlatformRadius {
		t.Errorf("orbit %v outside platform %v", cfg.OrbitRadius, cfg.PlatformRadius)
	}
}
