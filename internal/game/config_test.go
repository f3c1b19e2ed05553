package game

import (
	"errors"
	"testing"

	"github.com/samdwyer/gridwalk/internal/world"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvWidth, EnvHeight, EnvWallChance, EnvStartChance, EnvMaxAttempts} {
		t.Setenv(key, "")
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, DefaultConfig())
	}
	if cfg.Width != DefaultWidth || cfg.WallChance != world.DefaultWallChance {
		t.Errorf("DefaultConfig() = %+v, unexpected defaults", cfg)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvWidth, "12")
	t.Setenv(EnvHeight, "9")
	t.Setenv(EnvWallChance, "0.3")
	t.Setenv(EnvStartChance, "0.5")
	t.Setenv(EnvMaxAttempts, "10")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error: %v", err)
	}

	expected := Config{Seed: 42, Width: 12, Height: 9, WallChance: 0.3, StartChance: 0.5, MaxAttempts: 10}
	if cfg != expected {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, expected)
	}

	gen := cfg.GenConfig()
	if gen.Width != 12 || gen.Height != 9 || gen.MaxAttempts != 10 {
		t.Errorf("GenConfig() = %+v, does not match config", gen)
	}
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvSeed, "abc"},
		{EnvWidth, "wide"},
		{EnvWidth, "0"},
		{EnvHeight, "-3"},
		{EnvWallChance, "1.5"},
		{EnvStartChance, "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := ConfigFromEnv(); err == nil {
				t.Errorf("ConfigFromEnv() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}

	t.Run("size error", func(t *testing.T) {
		t.Setenv(EnvWidth, "0")
		_, err := ConfigFromEnv()
		if !errors.Is(err, world.ErrInvalidSize) {
			t.Errorf("error = %v, want ErrInvalidSize", err)
		}
	})
}

func TestConfigRNGSeeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7

	a, b := cfg.RNG(), cfg.RNG()
	for i := 0; i < 5; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
	}
}
