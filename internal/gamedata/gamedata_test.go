package gamedata

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestLoadSprites(t *testing.T) {
	sprites, err := LoadSprites()
	if err != nil {
		t.Fatalf("Failed to load sprites: %v", err)
	}

	// Every thing kind and the player must be drawable
	expected := map[string]bool{"floor": false, "wall": false, "fire": false, "player": false}
	for _, s := range sprites {
		if _, ok := expected[s.Kind]; ok {
			expected[s.Kind] = true
		}
	}

	for kind, found := range expected {
		if !found {
			t.Errorf("Expected sprite %q not found", kind)
		}
	}
}

func TestSpriteRegistry(t *testing.T) {
	registry, err := LoadSpriteRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 sprites, got %d", registry.Count())
	}

	wall := registry.GetByKind("wall")
	if wall == nil {
		t.Fatal("Wall not found by kind")
	}
	if wall.GlyphRune() != '#' {
		t.Errorf("Expected wall glyph '#', got %c", wall.GlyphRune())
	}
	if wall.Animated() {
		t.Error("Wall should not be animated")
	}

	fire := registry.GetByKind("fire")
	if fire == nil {
		t.Fatal("Fire not found by kind")
	}
	if fire.Animation != "burn" {
		t.Errorf("Expected fire animation %q, got %q", "burn", fire.Animation)
	}

	if registry.GetByKind("lava") != nil {
		t.Error("Unknown kind should return nil")
	}
}

func TestSpriteFrameAt(t *testing.T) {
	def := SpriteDef{
		Kind:      "test",
		Glyph:     "x",
		Frames:    []string{"a", "b", "c"},
		FrameRate: 2,
	}

	tests := []struct {
		elapsed  time.Duration
		expected rune
	}{
		{0, 'a'},
		{400 * time.Millisecond, 'a'},
		{500 * time.Millisecond, 'b'},
		{1000 * time.Millisecond, 'c'},
		{1500 * time.Millisecond, 'a'},
		{-time.Second, 'x'},
	}

	for _, tt := range tests {
		if got := def.FrameAt(tt.elapsed); got != tt.expected {
			t.Errorf("FrameAt(%v) = %c, want %c", tt.elapsed, got, tt.expected)
		}
	}

	static := SpriteDef{Glyph: "#"}
	if got := static.FrameAt(time.Hour); got != '#' {
		t.Errorf("static FrameAt() = %c, want #", got)
	}

	empty := SpriteDef{}
	if got := empty.GlyphRune(); got != '?' {
		t.Errorf("empty GlyphRune() = %c, want ?", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestSpriteColor(t *testing.T) {
	def := SpriteDef{Kind: "test", Glyph: "T", Color: "#FF0000"}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}

	bad := SpriteDef{Color: "nope"}
	if bad.TCellColor() != tcell.ColorWhite {
		t.Errorf("TCellColor fallback = %v, want white", bad.TCellColor())
	}
}

func TestMustParseHexColor(t *testing.T) {
	got := MustParseHexColor("#FF6A00")
	if want := tcell.NewRGBColor(255, 106, 0); got != want {
		t.Errorf("MustParseHexColor(#FF6A00) = %v, want %v", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseHexColor(bad) should panic")
		}
	}()
	MustParseHexColor("bad")
}
