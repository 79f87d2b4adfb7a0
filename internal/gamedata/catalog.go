package gamedata

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Catalog holds the immutable descriptor tables the world generator indexes into.
// Biome ids, relic indices and creature indices are positions in these slices.
type Catalog struct {
	biomes    []BiomeDef
	relics    []RelicDef
	creatures []CreatureDef
}

// NewCatalog builds a catalog from decoded definitions, validating and
// resolving colours for every entry. The slices are copied; the caller's
// definitions are left untouched.
func NewCatalog(biomes []BiomeDef, relics []RelicDef, creatures []CreatureDef) (*Catalog, error) {
	if len(biomes) == 0 {
		return nil, errors.New("catalog: no biomes defined")
	}
	if len(relics) == 0 {
		return nil, errors.New("catalog: no relics defined")
	}
	if len(creatures) == 0 {
		return nil, errors.New("catalog: no creatures defined")
	}

	c := &Catalog{
		biomes:    append([]BiomeDef(nil), biomes...),
		relics:    append([]RelicDef(nil), relics...),
		creatures: append([]CreatureDef(nil), creatures...),
	}

	ids := mapset.New[string]()
	for i := range c.biomes {
		if err := c.biomes[i].resolve(); err != nil {
			return nil, err
		}
		if ids.Has(c.biomes[i].ID) {
			return nil, fmt.Errorf("catalog: duplicate biome id %q", c.biomes[i].ID)
		}
		ids.Put(c.biomes[i].ID)
	}
	for i := range c.relics {
		if err := c.relics[i].resolve("relic"); err != nil {
			return nil, err
		}
	}
	for i := range c.creatures {
		if err := c.creatures[i].resolve("creature"); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadCatalog loads all three tables from the embedded JSON files.
func LoadCatalog() (*Catalog, error) {
	biomes, err := LoadBiomes()
	if err != nil {
		return nil, err
	}
	relics, err := LoadRelics()
	if err != nil {
		return nil, err
	}
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	return NewCatalog(biomes, relics, creatures)
}

// NumBiomes returns the number of biome types.
func (c *Catalog) NumBiomes() int { return len(c.biomes) }

// NumRelics returns the number of relic types.
func (c *Catalog) NumRelics() int { return len(c.relics) }

// NumCreatures returns the number of creature types.
func (c *Catalog) NumCreatures() int { return len(c.creatures) }

// Biome returns the biome with the given id, or nil if out of range.
func (c *Catalog) Biome(id int) *BiomeDef {
	if id < 0 || id >= len(c.biomes) {
		return nil
	}
	return &c.biomes[id]
}

// Relic returns the relic type at index i, or nil if out of range.
func (c *Catalog) Relic(i int) *RelicDef {
	if i < 0 || i >= len(c.relics) {
		return nil
	}
	return &c.relics[i]
}

// Creature returns the creature type at index i, or nil if out of range.
func (c *Catalog) Creature(i int) *CreatureDef {
	if i < 0 || i >= len(c.creatures) {
		return nil
	}
	return &c.creatures[i]
}
