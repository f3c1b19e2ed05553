package ui

import "github.com/samdwyer/gridwalk/internal/world"

// Camera maps grid coordinates to screen positions, keeping the player centered.
type Camera struct {
	originX, originY int // grid coordinate drawn at screen (0,0)
	viewW, viewH     int
}

// Follow centers the view of size viewW x viewH on the player.
func (c *Camera) Follow(player world.Coord, viewW, viewH int) {
	c.originX = player.X - viewW/2
	c.originY = player.Y - viewH/2
	c.viewW, c.viewH = viewW, viewH
}

// InView returns true if the screen position lies inside the map view.
func (c *Camera) InView(x, y int) bool {
	return x >= 0 && x < c.viewW && y >= 0 && y < c.viewH
}

// ToScreen returns the screen position of a grid coordinate.
func (c *Camera) ToScreen(at world.Coord) (int, int) {
	return at.X - c.originX, at.Y - c.originY
}

// ToWorld returns the grid coordinate under a screen position.
func (c *Camera) ToWorld(x, y int) world.Coord {
	return world.Coord{X: x + c.originX, Y: y + c.originY}
}
