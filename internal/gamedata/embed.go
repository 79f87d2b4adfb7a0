// Package gamedata holds the static descriptor tables (biomes, relics,
// creatures). The tables are JSON compiled into the binary and are immutable
// once loaded.
package gamedata

import "embed"

//go:embed biomes.json relics.json creatures.json
var tablesFS embed.FS
