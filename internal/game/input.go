package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridwalk/internal/world"
)

// command is a player action decoded from a key press.
type command int

const (
	cmdNone command = iota
	cmdMoveUp
	cmdMoveDown
	cmdMoveLeft
	cmdMoveRight
	cmdToggleCollision
	cmdNextTool
	cmdQuit
)

// KeyToDirection maps an arrow key to a movement direction.
func KeyToDirection(key tcell.Key) (world.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return world.Up, true
	case tcell.KeyDown:
		return world.Down, true
	case tcell.KeyLeft:
		return world.Left, true
	case tcell.KeyRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// direction returns the movement direction of a move command.
func (c command) direction() (world.Direction, bool) {
	switch c {
	case cmdMoveUp:
		return world.Up, true
	case cmdMoveDown:
		return world.Down, true
	case cmdMoveLeft:
		return world.Left, true
	case cmdMoveRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// keyCommand decodes a key press. ch is only consulted for tcell.KeyRune.
func keyCommand(key tcell.Key, ch rune) command {
	if d, ok := KeyToDirection(key); ok {
		return moveCommand(d)
	}

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return cmdQuit
		case 'c', 'C':
			return cmdToggleCollision
		case 'e', 'E':
			return cmdNextTool
		}
	}
	return cmdNone
}

func moveCommand(d world.Direction) command {
	switch d {
	case world.Up:
		return cmdMoveUp
	case world.Down:
		return cmdMoveDown
	case world.Left:
		return cmdMoveLeft
	case world.Right:
		return cmdMoveRight
	default:
		return cmdNone
	}
}

// releaseTracker turns mouse button state snapshots into release events.
// tcell reports which buttons are held, not which were let go.
type releaseTracker struct {
	held tcell.ButtonMask
}

// update records the buttons now held and returns those released since the
// previous event.
func (r *releaseTracker) update(buttons tcell.ButtonMask) tcell.ButtonMask {
	const tracked = tcell.ButtonPrimary | tcell.ButtonSecondary
	buttons &= tracked
	released := r.held &^ buttons
	r.held = buttons
	return released
}
