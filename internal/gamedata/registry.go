package gamedata

import "errors"

// SpriteRegistry holds loaded sprite definitions keyed by kind.
type SpriteRegistry struct {
	sprites map[string]*SpriteDef
	count   int
}

// NewSpriteRegistry creates a registry from loaded sprite definitions.
// Later definitions replace earlier ones with the same kind.
func NewSpriteRegistry(sprites []SpriteDef) *SpriteRegistry {
	registry := &SpriteRegistry{
		sprites: make(map[string]*SpriteDef),
		count:   len(sprites),
	}
	for i := range sprites {
		registry.sprites[sprites[i].Kind] = &sprites[i]
	}
	return registry
}

// LoadSpriteRegistry loads and creates a registry from the embedded sprites.json.
func LoadSpriteRegistry() (*SpriteRegistry, error) {
	sprites, err := LoadSprites()
	if err != nil {
		return nil, err
	}
	registry := NewSpriteRegistry(sprites)
	if registry.Count() == 0 {
		return nil, errors.New("no sprites loaded from sprites.json")
	}
	return registry, nil
}

// MustLoadSpriteRegistry loads a registry, panicking on error.
func MustLoadSpriteRegistry() *SpriteRegistry {
	registry, err := LoadSpriteRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByKind returns the sprite definition for kind, or nil if not found.
func (r *SpriteRegistry) GetByKind(kind string) *SpriteDef {
	return r.sprites[kind]
}

// Count returns the number of sprite definitions in the registry.
func (r *SpriteRegistry) Count() int {
	return r.count
}
