package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateReproducibility(t *testing.T) {
	// Generate two levels with the same seed
	seed := int64(12345)
	ctx := context.Background()

	l1, err := Random(ctx, 20, 15, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	l2, err := Random(ctx, 20, 15, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}

	if l1.Start() != l2.Start() {
		t.Fatalf("Start mismatch: %v != %v", l1.Start(), l2.Start())
	}

	l1.ForEachCell(func(c Coord, cell *Cell) {
		other := l2.CellAt(c)
		if cell.HasWall() != other.HasWall() || cell.Len() != other.Len() {
			t.Errorf("Cell mismatch at %v", c)
		}
	})
}

func TestGenerateInvariants(t *testing.T) {
	ctx := context.Background()

	for seed := int64(1); seed <= 50; seed++ {
		level, err := Random(ctx, 7, 7, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: Random() error: %v", seed, err)
		}

		if level.Width() != 7 || level.Height() != 7 {
			t.Fatalf("seed %d: size = %dx%d, want 7x7", seed, level.Width(), level.Height())
		}
		if !level.CollisionEnabled() {
			t.Errorf("seed %d: CollisionEnabled() = false, want true", seed)
		}
		if level.Player() != level.Start() {
			t.Errorf("seed %d: Player() = %v, want start %v", seed, level.Player(), level.Start())
		}

		start := level.CellAt(level.Start())
		if start == nil || start.Len() != 0 {
			t.Errorf("seed %d: start %v is not an empty cell", seed, level.Start())
		}

		seen := make(map[ThingID]bool)
		level.ForEachCell(func(c Coord, cell *Cell) {
			if cell.Len() > 1 {
				t.Errorf("seed %d: cell %v has %d things, want 0 or 1", seed, c, cell.Len())
			}
			for _, thing := range cell.Things() {
				if !thing.IsWall() {
					t.Errorf("seed %d: generated non-wall thing at %v", seed, c)
				}
				if seen[thing.ID()] {
					t.Errorf("seed %d: duplicate id %d", seed, thing.ID())
				}
				seen[thing.ID()] = true
			}
		})
	}
}

func TestGenerateStartIsFirstSuccessfulEmptyCell(t *testing.T) {
	// With a certain start coin the first empty cell in row-major order wins.
	cfg := DefaultGenConfig(6, 6)
	cfg.StartChance = 1

	level, err := Generate(context.Background(), cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var first *Coord
	level.ForEachCell(func(c Coord, cell *Cell) {
		if first == nil && cell.Len() == 0 {
			c := c
			first = &c
		}
	})
	if first == nil || *first != level.Start() {
		t.Errorf("Start() = %v, want first empty cell %v", level.Start(), first)
	}
}

func TestGenerateAllWallsFails(t *testing.T) {
	cfg := DefaultGenConfig(4, 4)
	cfg.WallChance = 1
	cfg.MaxAttempts = 3

	_, err := Generate(context.Background(), cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoStart) {
		t.Errorf("Generate() error = %v, want ErrNoStart", err)
	}
}

func TestGenerateRetriesUntilStart(t *testing.T) {
	// A 1x1 level only gets a start when the cell is empty and the coin succeeds,
	// so most single attempts fail.
	cfg := DefaultGenConfig(1, 1)
	cfg.MaxAttempts = 1000

	level, err := Generate(context.Background(), cfg, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if level.Start() != (Coord{}) {
		t.Errorf("Start() = %v, want (0,0)", level.Start())
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := Random(context.Background(), size[0], size[1], rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Random(%d, %d) error = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}
