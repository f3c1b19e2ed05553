// Package world provides the tile grid, the player's position on it and the
// editing commands that place and remove things.
package world

import "fmt"

// Level is a rectangular grid of cells with a player walking on it.
// A Level is not safe for concurrent use; the game drives it from one goroutine.
type Level struct {
	width, height int
	cells         [][]*Cell // addressed [y][x]
	start         Coord
	player        Coord
	collision     bool
	tool          EditorTool
	ids           idSource
}

// newLevel creates an empty level of the given size. Callers fill the cells
// and set the start before handing it out.
func newLevel(width, height int) (*Level, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}

	cells := make([][]*Cell, height)
	for y := range cells {
		cells[y] = make([]*Cell, width)
		for x := range cells[y] {
			cells[y][x] = newCell(Coord{X: x, Y: y})
		}
	}

	return &Level{
		width:     width,
		height:    height,
		cells:     cells,
		collision: true,
		tool:      ToolWall,
	}, nil
}

// setStart fixes the spawn point and places the player on it.
func (l *Level) setStart(c Coord) {
	l.start = c
	l.player = c
}

// Width returns the number of columns.
func (l *Level) Width() int { return l.width }

// Height returns the number of rows.
func (l *Level) Height() int { return l.height }

// Start returns the spawn point chosen when the level was built.
func (l *Level) Start() Coord { return l.start }

// Player returns the player's current position. It is always in bounds, but
// it may hold a wall placed by editing or left there while collision was off.
func (l *Level) Player() Coord { return l.player }

// CollisionEnabled reports whether walls block movement.
func (l *Level) CollisionEnabled() bool { return l.collision }

// ToggleCollision flips whether walls block movement.
func (l *Level) ToggleCollision() {
	l.collision = !l.collision
}

// InBounds returns true if c addresses a cell of the level.
func (l *Level) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.width && c.Y >= 0 && c.Y < l.height
}

// CellAt returns the cell at c, or nil if c is outside the grid.
func (l *Level) CellAt(c Coord) *Cell {
	if !l.InBounds(c) {
		return nil
	}
	return l.cells[c.Y][c.X]
}

// ForEachCell calls fn for every cell in row-major order.
func (l *Level) ForEachCell(fn func(Coord, *Cell)) {
	for y, row := range l.cells {
		for x, cell := range row {
			fn(Coord{X: x, Y: y}, cell)
		}
	}
}

// TryToMove moves the player one step in direction d if the destination is
// inside the grid and, with collision enabled, free of walls.
// It returns false and leaves the player in place otherwise.
func (l *Level) TryToMove(d Direction) bool {
	if !d.Valid() {
		return false
	}

	next := d.Move(l.player)
	cell := l.CellAt(next)
	if cell == nil {
		return false
	}
	if l.collision && cell.HasWall() {
		return false
	}

	l.player = next
	return true
}

// AddWall places a new wall on top of cell and returns it.
func (l *Level) AddWall(cell *Cell) *Thing {
	return l.AddThing(cell, KindWall)
}

// AddThing places a new thing of the given kind on top of cell and returns it.
// It returns nil if cell is nil.
func (l *Level) AddThing(cell *Cell, kind Kind) *Thing {
	if cell == nil {
		return nil
	}
	t := l.ids.newThing(kind)
	cell.AddThing(t)
	return t
}

// RemoveThing removes thing from cell. The error wraps ErrThingNotFound if
// that exact thing is not in the cell, including things from other levels
// that share its id; no cell is modified in that case.
func (l *Level) RemoveThing(cell *Cell, thing *Thing) error {
	if cell == nil || thing == nil {
		return fmt.Errorf("remove from missing cell or nil thing: %w", ErrThingNotFound)
	}
	return cell.removeExact(thing)
}

// EditorTool returns the currently selected editor tool.
func (l *Level) EditorTool() EditorTool { return l.tool }

// ChangeEditorTool advances to the next editor tool.
func (l *Level) ChangeEditorTool() {
	l.tool = l.tool.Next()
}

// ApplyEditorTool places a thing of the selected tool's kind on cell and
// returns it. It returns nil if the tool places nothing or cell is nil.
func (l *Level) ApplyEditorTool(cell *Cell) *Thing {
	kind, ok := l.tool.Kind()
	if !ok {
		return nil
	}
	return l.AddThing(cell, kind)
}
