package world

// ThingID identifies a Thing within the Level that created it.
type ThingID uint64

// Kind is the sprite kind of a Thing. Presentation code looks sprites up by Kind.
type Kind int

const (
	// KindWall blocks movement while collision is enabled.
	KindWall Kind = iota
	// KindFire is decorative and never blocks movement.
	KindFire
)

// String returns the sprite name used by presentation data.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFire:
		return "fire"
	default:
		return "unknown"
	}
}

// IsWall returns true if things of this kind block movement.
func (k Kind) IsWall() bool {
	return k == KindWall
}

// Thing is an entity placed in a Cell. Its identity and kind never change.
type Thing struct {
	id   ThingID
	kind Kind
}

// ID returns the thing's identity.
func (t *Thing) ID() ThingID { return t.id }

// IsWall returns true if the thing blocks movement.
func (t *Thing) IsWall() bool { return t.kind.IsWall() }

// KindOf returns the sprite kind a thing should be drawn with.
func KindOf(t *Thing) Kind {
	return t.kind
}

// idSource hands out thing identities for a single Level.
type idSource struct {
	last ThingID
}

// next returns a fresh identity. Identities start at 1 and are never reused.
func (s *idSource) next() ThingID {
	s.last++
	return s.last
}

// newThing creates a thing of the given kind with a fresh identity.
func (s *idSource) newThing(kind Kind) *Thing {
	return &Thing{id: s.next(), kind: kind}
}
