package world

import (
	"errors"
	"fmt"
)

// Layout runes understood by Parse.
const (
	RuneWall  = '#'
	RuneEmpty = '.'
	RuneFire  = '*'
	RuneStart = '@'
)

// ErrBadLayout is returned by Parse for malformed layouts.
var ErrBadLayout = errors.New("bad level layout")

// Parse builds a level from rows of layout runes, one string per row.
// '#' is a wall, '*' a fire, '.' an empty cell and '@' the empty start cell.
// Exactly one start is required and all rows must have the same length.
func Parse(rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrBadLayout)
	}

	width := len([]rune(rows[0]))
	level, err := newLevel(width, len(rows))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
	}

	haveStart := false
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(runes), width, ErrBadLayout)
		}
		for x, r := range runes {
			cell := level.cells[y][x]
			switch r {
			case RuneWall:
				level.AddWall(cell)
			case RuneFire:
				level.AddThing(cell, KindFire)
			case RuneEmpty:
			case RuneStart:
				if haveStart {
					return nil, fmt.Errorf("second start at (%d,%d): %w", x, y, ErrBadLayout)
				}
				level.setStart(Coord{X: x, Y: y})
				haveStart = true
			default:
				return nil, fmt.Errorf("unknown rune %q at (%d,%d): %w", r, x, y, ErrBadLayout)
			}
		}
	}

	if !haveStart {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, ErrNoStart)
	}
	return level, nil
}

// MustParse is like Parse but panics on error.
func MustParse(rows ...string) *Level {
	level, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return level
}
