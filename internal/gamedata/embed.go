// Package gamedata provides the embedded sprite table that maps thing kinds to
// glyphs, colors and animations.
package gamedata

import "embed"

//go:embed sprites.json
var dataFS embed.FS
