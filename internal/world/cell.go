package world

import (
	"errors"
	"fmt"
)

// ErrThingNotFound is returned when removing a thing that is not in the cell.
// It indicates the caller holds a stale reference.
var ErrThingNotFound = errors.New("thing not found")

// Cell is one grid position and the things stacked on it, oldest first.
type Cell struct {
	pos    Coord
	things []*Thing
}

func newCell(pos Coord) *Cell {
	return &Cell{pos: pos}
}

// Pos returns the cell's grid coordinate.
func (c *Cell) Pos() Coord { return c.pos }

// Things returns a copy of the cell's things in stacking order.
func (c *Cell) Things() []*Thing {
	out := make([]*Thing, len(c.things))
	copy(out, c.things)
	return out
}

// Len returns the number of things in the cell.
func (c *Cell) Len() int { return len(c.things) }

// Top returns the most recently placed thing, or nil if the cell is empty.
func (c *Cell) Top() *Thing {
	if len(c.things) == 0 {
		return nil
	}
	return c.things[len(c.things)-1]
}

// Contains returns true if a thing with the given id is in the cell.
func (c *Cell) Contains(id ThingID) bool {
	return c.indexOf(id) >= 0
}

// HasWall returns true if any thing in the cell blocks movement.
func (c *Cell) HasWall() bool {
	for _, t := range c.things {
		if t.IsWall() {
			return true
		}
	}
	return false
}

// AddThing appends a thing to the top of the cell.
func (c *Cell) AddThing(t *Thing) {
	c.things = append(c.things, t)
}

// RemoveThing removes the thing with the given id.
func (c *Cell) RemoveThing(id ThingID) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("thing %d at cell %s: %w", id, c.pos, ErrThingNotFound)
	}
	c.things = append(c.things[:i], c.things[i+1:]...)
	return nil
}

// removeExact removes t itself, not merely a thing sharing its id.
func (c *Cell) removeExact(t *Thing) error {
	for i, held := range c.things {
		if held == t {
			c.things = append(c.things[:i], c.things[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("thing %d at cell %s: %w", t.id, c.pos, ErrThingNotFound)
}

func (c *Cell) indexOf(id ThingID) int {
	for i, t := range c.things {
		if t.id == id {
			return i
		}
	}
	return -1
}
