// Package game provides the main game loop and input handling.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridwalk/internal/gamedata"
	"github.com/samdwyer/gridwalk/internal/telemetry"
	"github.com/samdwyer/gridwalk/internal/ui"
	"github.com/samdwyer/gridwalk/internal/world"
)

// frameInterval is how often animations advance while no input arrives.
const frameInterval = 100 * time.Millisecond

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	level    *world.Level
	config   Config
	mouse    releaseTracker
	started  time.Time
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg)
}

// newGame creates a game drawing to an already initialized screen.
func newGame(screen *ui.Screen, cfg Config) (*Game, error) {
	sprites, err := gamedata.LoadSpriteRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading sprites: %w", err)
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, sprites),
		config:   cfg,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.init(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go g.tick(ctx)

	// Main game loop
	for g.running {
		g.renderer.Render(g.level, time.Since(g.started))

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	return nil
}

// init generates the level (traced).
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	defer initSpan.End()

	level, err := world.Generate(ctx, g.config.GenConfig(), g.config.RNG())
	if err != nil {
		initSpan.RecordError(err)
		return fmt.Errorf("generating level: %w", err)
	}
	g.level = level
	g.started = time.Now()

	initSpan.SetAttributes(
		attribute.Int64("game.seed", g.config.Seed),
		attribute.Int("player.start_x", level.Start().X),
		attribute.Int("player.start_y", level.Start().Y),
	)
	return nil
}

// tick wakes the event loop so animations keep running.
func (g *Game) tick(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// The only failure is a full event queue, which redraws anyway.
			_ = g.screen.Interrupt(nil)
		}
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.execute(ctx, keyCommand(ev.Key(), ev.Rune()))
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.handleMouse(ctx, x, y, ev.Buttons())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// execute applies a decoded key command.
func (g *Game) execute(ctx context.Context, cmd command) {
	if d, ok := cmd.direction(); ok {
		g.level.TryToMove(d)
		return
	}

	switch cmd {
	case cmdQuit:
		g.running = false
	case cmdToggleCollision:
		g.level.ToggleCollision()
		g.trace(ctx, "level.toggle_collision",
			attribute.Bool("level.collision", g.level.CollisionEnabled()))
	case cmdNextTool:
		g.level.ChangeEditorTool()
	}
}

// handleMouse applies the editor tool on primary release and removes the top
// thing of the cell on secondary release. Releases outside the map view or
// off the grid are ignored.
func (g *Game) handleMouse(ctx context.Context, x, y int, buttons tcell.ButtonMask) {
	released := g.mouse.update(buttons)
	if released == 0 {
		return
	}

	cam := g.renderer.Camera()
	if !cam.InView(x, y) {
		return
	}
	cell := g.level.CellAt(cam.ToWorld(x, y))
	if cell == nil {
		return
	}

	if released&tcell.ButtonPrimary != 0 {
		g.applyEditorTool(ctx, cell)
	}
	if released&tcell.ButtonSecondary != 0 {
		g.removeTop(ctx, cell)
	}
}

func (g *Game) applyEditorTool(ctx context.Context, cell *world.Cell) {
	thing := g.level.ApplyEditorTool(cell)
	if thing == nil {
		return
	}
	g.trace(ctx, "level.add_thing", thingAttributes(cell, thing)...)
}

func (g *Game) removeTop(ctx context.Context, cell *world.Cell) {
	thing := cell.Top()
	if thing == nil {
		return
	}
	if err := g.level.RemoveThing(cell, thing); err != nil {
		// The top thing came from this cell, so this is a bug.
		panic(err)
	}
	g.trace(ctx, "level.remove_thing", thingAttributes(cell, thing)...)
}

// trace records a single editing action as a span.
func (g *Game) trace(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	_, span := telemetry.Tracer("game").Start(ctx, name)
	span.SetAttributes(attrs...)
	span.End()
}

func thingAttributes(cell *world.Cell, thing *world.Thing) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("thing.id", int64(thing.ID())),
		attribute.String("thing.kind", world.KindOf(thing).String()),
		attribute.Int("cell.x", cell.Pos().X),
		attribute.Int("cell.y", cell.Pos().Y),
	}
}
