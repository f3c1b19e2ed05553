package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/gridwalk/internal/telemetry"
)

const (
	// DefaultWallChance is the probability that a generated cell holds a wall.
	DefaultWallChance = 0.8
	// DefaultStartChance is the probability that an empty cell becomes the start,
	// checked in row-major order until one succeeds.
	DefaultStartChance = 0.4
	// DefaultMaxAttempts bounds how many grids are generated before giving up.
	DefaultMaxAttempts = 100
)

var (
	// ErrInvalidSize is returned for non-positive level dimensions.
	ErrInvalidSize = errors.New("level dimensions must be positive")
	// ErrNoStart is returned when no generated grid had a start cell.
	ErrNoStart = errors.New("no start cell chosen")
)

// GenConfig controls random level generation.
type GenConfig struct {
	Width, Height int
	WallChance    float64
	StartChance   float64
	MaxAttempts   int
}

// DefaultGenConfig returns the default generation parameters for a width x height level.
func DefaultGenConfig(width, height int) GenConfig {
	return GenConfig{
		Width:       width,
		Height:      height,
		WallChance:  DefaultWallChance,
		StartChance: DefaultStartChance,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Random generates a level with the default parameters.
func Random(ctx context.Context, width, height int, rng *rand.Rand) (*Level, error) {
	return Generate(ctx, DefaultGenConfig(width, height), rng)
}

// Generate builds a random level. Each cell is independently a wall cell with
// probability WallChance, otherwise empty. The first empty cell in row-major
// order whose start coin succeeds becomes the start. If a grid ends up with no
// start, it is thrown away and regenerated, up to MaxAttempts times.
// A nil rng uses a time-seeded source.
func Generate(ctx context.Context, cfg GenConfig, rng *rand.Rand) (*Level, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	span.SetAttributes(
		attribute.Int("level.width", cfg.Width),
		attribute.Int("level.height", cfg.Height),
		attribute.Float64("level.wall_chance", cfg.WallChance),
		attribute.Float64("level.start_chance", cfg.StartChance),
	)

	startTime := time.Now()

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		level, err := newLevel(cfg.Width, cfg.Height)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		walls, ok := level.fill(cfg, rng)
		if !ok {
			continue
		}

		span.SetAttributes(
			attribute.Int("level.attempts", attempt),
			attribute.Int("level.wall_count", walls),
			attribute.Int("level.start_x", level.start.X),
			attribute.Int("level.start_y", level.start.Y),
			attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
		)
		return level, nil
	}

	err := fmt.Errorf("%dx%d level after %d attempts: %w", cfg.Width, cfg.Height, cfg.MaxAttempts, ErrNoStart)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

// fill populates every cell and picks the start. It returns the number of
// walls placed and whether a start was chosen.
func (l *Level) fill(cfg GenConfig, rng *rand.Rand) (int, bool) {
	walls := 0
	haveStart := false

	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			if rng.Float64() < cfg.WallChance {
				l.AddWall(l.cells[y][x])
				walls++
				continue
			}
			// Once the start is set, later empty cells skip the coin.
			if !haveStart && rng.Float64() < cfg.StartChance {
				l.setStart(Coord{X: x, Y: y})
				haveStart = true
			}
		}
	}

	return walls, haveStart
}
