package world

import "fmt"

// Coord is a grid cell address. X is the column, Y is the row, both zero-based.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by dx, dy.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directionDeltas holds the unit vector for each direction.
var directionDeltas = [...]Coord{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Directions returns all four directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the direction's unit vector. Invalid directions return (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	v := directionDeltas[d]
	return v.X, v.Y
}

// Move returns the coordinate one step from c in direction d.
func (d Direction) Move(c Coord) Coord {
	return c.Add(d.Delta())
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
