package world

// EditorTool is the kind of thing that applying the editor tool places.
// Tools form a cycle: wall, fire, none, then back to wall.
type EditorTool int

const (
	// ToolWall places a wall.
	ToolWall EditorTool = iota
	// ToolFire places a fire.
	ToolFire
	// ToolNone places nothing.
	ToolNone

	toolCount = int(ToolNone) + 1
)

// EditorTools returns every tool in cycle order.
func EditorTools() []EditorTool {
	return []EditorTool{ToolWall, ToolFire, ToolNone}
}

// Next returns the tool after t, wrapping to the first tool after the last.
func (t EditorTool) Next() EditorTool {
	if t < 0 || int(t) >= toolCount {
		return ToolWall
	}
	return EditorTool((int(t) + 1) % toolCount)
}

// Kind returns the kind of thing the tool places, or false if it places nothing.
func (t EditorTool) Kind() (Kind, bool) {
	switch t {
	case ToolWall:
		return KindWall, true
	case ToolFire:
		return KindFire, true
	default:
		return 0, false
	}
}

// String returns the tool's display label.
func (t EditorTool) String() string {
	switch t {
	case ToolWall:
		return "wall"
	case ToolFire:
		return "fire"
	case ToolNone:
		return "none"
	default:
		return "unknown"
	}
}
