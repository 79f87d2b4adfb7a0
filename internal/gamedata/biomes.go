package gamedata

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of colour bands every biome palette carries.
const PaletteSize = 4

// BiomeDef describes one biome: its display name, the flavour "law" shown on
// entry, the movement speed multiplier and a four-band ground palette.
type BiomeDef struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Law     string              `json:"law"`
	Speed   float64             `json:"speed"`
	Palette [PaletteSize]string `json:"palette"`

	colors [PaletteSize]colorful.Color
}

// PaletteColor returns the parsed colour for a noise band.
// Bands outside [0, PaletteSize) are clamped.
func (b *BiomeDef) PaletteColor(band int) colorful.Color {
	if band < 0 {
		band = 0
	}
	if band >= PaletteSize {
		band = PaletteSize - 1
	}
	return b.colors[band]
}

// resolve validates the definition and parses its palette.
func (b *BiomeDef) resolve() error {
	if b.Name == "" {
		return fmt.Errorf("biome %q: missing name", b.ID)
	}
	if b.Speed <= 0 {
		return fmt.Errorf("biome %q: speed must be positive, got %v", b.ID, b.Speed)
	}
	for i, hex := range b.Palette {
		c, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("biome %q palette[%d]: %w", b.ID, i, err)
		}
		b.colors[i] = c
	}
	return nil
}

// BiomesFile represents the structure of biomes.json.
type BiomesFile struct {
	Biomes []BiomeDef `json:"biomes"`
}

// LoadBiomes decodes the embedded biomes.json file. Palettes are parsed by
// NewCatalog.
func LoadBiomes() ([]BiomeDef, error) {
	file, err := Load[BiomesFile]("biomes.json")
	if err != nil {
		return nil, err
	}
	return file.Biomes, nil
}
