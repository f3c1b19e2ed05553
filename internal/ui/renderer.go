package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridwalk/internal/gamedata"
	"github.com/samdwyer/gridwalk/internal/world"
)

// statusRows is the number of rows reserved below the map.
const statusRows = 1

// unknownStyle marks kinds missing from the sprite table.
var unknownStyle = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor("#FF00FF"))

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	sprites *gamedata.SpriteRegistry
	camera  Camera
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, sprites *gamedata.SpriteRegistry) *Renderer {
	return &Renderer{screen: screen, sprites: sprites}
}

// Camera returns the camera used by the last Render call.
func (r *Renderer) Camera() *Camera {
	return &r.camera
}

// Render draws the level, the player and the status line. Elapsed is the
// time since the game started and selects animation frames.
func (r *Renderer) Render(level *world.Level, elapsed time.Duration) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapHeight := height - statusRows
	r.camera.Follow(level.Player(), width, mapHeight)

	level.ForEachCell(func(at world.Coord, cell *world.Cell) {
		x, y := r.camera.ToScreen(at)
		if x < 0 || x >= width || y < 0 || y >= mapHeight {
			return
		}

		kind := "floor"
		if top := cell.Top(); top != nil {
			kind = world.KindOf(top).String()
		}
		r.drawSprite(x, y, kind, elapsed)
	})

	// Draw player on top
	px, py := r.camera.ToScreen(level.Player())
	r.drawSprite(px, py, "player", elapsed)

	r.RenderMessage(statusLine(level), height-1)

	r.screen.Show()
}

// drawSprite draws the sprite for kind, or '?' if it is unknown.
func (r *Renderer) drawSprite(x, y int, kind string, elapsed time.Duration) {
	def := r.sprites.GetByKind(kind)
	if def == nil {
		r.screen.SetContent(x, y, '?', unknownStyle)
		return
	}
	style := tcell.StyleDefault.Foreground(def.TCellColor())
	if kind == "player" {
		style = style.Bold(true)
	}
	r.screen.SetContent(x, y, def.FrameAt(elapsed), style)
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// statusLine describes the editor tool and collision state.
func statusLine(level *world.Level) string {
	collision := "on"
	if !level.CollisionEnabled() {
		collision = "off"
	}
	return fmt.Sprintf("tool: %s  collision: %s  [arrows] move [e] tool [c] collision [q] quit",
		level.EditorTool(), collision)
}
