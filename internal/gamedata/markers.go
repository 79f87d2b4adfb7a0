package gamedata

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// MarkerDef is the shared shape of anything drawn as a coloured marker on a
// tile: an identifier, a display name and a hex colour.
type MarkerDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`

	rgb colorful.Color
}

// RGB returns the parsed marker colour.
func (m *MarkerDef) RGB() colorful.Color {
	return m.rgb
}

func (m *MarkerDef) resolve(kind string) error {
	if m.Name == "" {
		return fmt.Errorf("%s %q: missing name", kind, m.ID)
	}
	c, err := ParseHexColor(m.Color)
	if err != nil {
		return fmt.Errorf("%s %q: %w", kind, m.ID, err)
	}
	m.rgb = c
	return nil
}

// RelicDef is a collectible relic type.
type RelicDef struct {
	MarkerDef
}

// CreatureDef is a discoverable creature type.
type CreatureDef struct {
	MarkerDef
}

// RelicsFile represents the structure of relics.json.
type RelicsFile struct {
	Relics []RelicDef `json:"relics"`
}

// CreaturesFile represents the structure of creatures.json.
type CreaturesFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

// LoadRelics decodes the embedded relics.json file. Colours are parsed by
// NewCatalog.
func LoadRelics() ([]RelicDef, error) {
	file, err := Load[RelicsFile]("relics.json")
	if err != nil {
		return nil, err
	}
	return file.Relics, nil
}

// LoadCreatures decodes the embedded creatures.json file. Colours are parsed
// by NewCatalog.
func LoadCreatures() ([]CreatureDef, error) {
	file, err := Load[CreaturesFile]("creatures.json")
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}
