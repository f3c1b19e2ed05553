package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/gridwalk/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed        = "GRIDWALK_SEED"
	EnvWidth       = "GRIDWALK_WIDTH"
	EnvHeight      = "GRIDWALK_HEIGHT"
	EnvWallChance  = "GRIDWALK_WALL_CHANCE"
	EnvStartChance = "GRIDWALK_START_CHANCE"
	EnvMaxAttempts = "GRIDWALK_MAX_ATTEMPTS"
)

// Default level dimensions
const (
	DefaultWidth  = 7
	DefaultHeight = 7
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width, Height int
	WallChance    float64
	StartChance   float64
	MaxAttempts   int
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	gen := world.DefaultGenConfig(DefaultWidth, DefaultHeight)
	return Config{
		Width:       gen.Width,
		Height:      gen.Height,
		WallChance:  gen.WallChance,
		StartChance: gen.StartChance,
		MaxAttempts: gen.MaxAttempts,
	}
}

// ConfigFromEnv builds a Config from GRIDWALK_* environment variables.
// Unset variables keep their defaults; malformed ones are an error.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if err := lookupInt64(EnvSeed, &cfg.Seed); err != nil {
		return cfg, err
	}
	if err := lookupInt(EnvWidth, &cfg.Width); err != nil {
		return cfg, err
	}
	if err := lookupInt(EnvHeight, &cfg.Height); err != nil {
		return cfg, err
	}
	if err := lookupFloat(EnvWallChance, &cfg.WallChance); err != nil {
		return cfg, err
	}
	if err := lookupFloat(EnvStartChance, &cfg.StartChance); err != nil {
		return cfg, err
	}
	if err := lookupInt(EnvMaxAttempts, &cfg.MaxAttempts); err != nil {
		return cfg, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("level size %dx%d: %w", cfg.Width, cfg.Height, world.ErrInvalidSize)
	}
	return cfg, nil
}

// GenConfig returns the level generation parameters.
func (c Config) GenConfig() world.GenConfig {
	return world.GenConfig{
		Width:       c.Width,
		Height:      c.Height,
		WallChance:  c.WallChance,
		StartChance: c.StartChance,
		MaxAttempts: c.MaxAttempts,
	}
}

// RNG returns a random source for the configured seed.
func (c Config) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func lookupInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func lookupInt(key string, dst *int) error {
	n := int64(*dst)
	if err := lookupInt64(key, &n); err != nil {
		return err
	}
	*dst = int(n)
	return nil
}

func lookupFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if f < 0 || f > 1 {
		return fmt.Errorf("invalid %s: %v is not a probability", key, f)
	}
	*dst = f
	return nil
}
