package gamedata

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// SpriteDef describes how one kind of thing is drawn, loaded from JSON.
type SpriteDef struct {
	Kind      string   `json:"kind"`                // Sprite kind (e.g., "wall", "fire")
	Glyph     string   `json:"glyph"`               // Static character for rendering
	Color     string   `json:"color"`               // Hex color code (e.g., "#FF6A00")
	Animation string   `json:"animation,omitempty"` // Animation name (e.g., "burn")
	Frames    []string `json:"frames,omitempty"`    // Animation frames, one glyph each
	FrameRate int      `json:"frameRate,omitempty"` // Animation frames per second
}

// GlyphRune returns the static glyph as a rune for rendering.
func (s *SpriteDef) GlyphRune() rune {
	return firstRune(s.Glyph)
}

// Animated returns true if the sprite cycles through frames.
func (s *SpriteDef) Animated() bool {
	return len(s.Frames) > 0 && s.FrameRate > 0
}

// FrameAt returns the glyph to draw after elapsed time has passed.
// Static sprites always return their glyph.
func (s *SpriteDef) FrameAt(elapsed time.Duration) rune {
	if !s.Animated() || elapsed < 0 {
		return s.GlyphRune()
	}
	frame := int(elapsed * time.Duration(s.FrameRate) / time.Second)
	return firstRune(s.Frames[frame%len(s.Frames)])
}

// TCellColor returns the color as a tcell.Color.
func (s *SpriteDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

// SpritesFile represents the structure of sprites.json.
type SpritesFile struct {
	Sprites []SpriteDef `json:"sprites"`
}

// LoadSprites loads sprite definitions from the embedded sprites.json file.
func LoadSprites() ([]SpriteDef, error) {
	file, err := Load[SpritesFile]("sprites.json")
	if err != nil {
		return nil, err
	}
	return file.Sprites, nil
}
