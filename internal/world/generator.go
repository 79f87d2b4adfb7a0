package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/relicfield/internal/gamedata"
	"github.com/samdwyer/relicfield/internal/telemetry"
)

const (
	// RelicThreshold is the relic-channel hash a tile must exceed to hold a relic.
	RelicThreshold = 0.987
	// CreatureThreshold is the creature-channel hash a tile must exceed to hold a creature.
	CreatureThreshold = 0.985
)

// Channel scales applied to tile coordinates. Each occurrence check and each
// type pick reads its own channel so they are statistically independent.
const (
	relicPresenceX, relicPresenceY       = 3.13, 1.91
	relicTypeX, relicTypeY               = 7.77, 9.99
	creaturePresenceX, creaturePresenceY = 5.11, 2.71
	creatureTypeX, creatureTypeY         = 9.17, 4.33
)

// Generator answers world queries for a single seed. Nothing is stored: every
// query is recomputed from the coordinate, so revisiting a tile always yields
// the same content and memory use does not grow with exploration.
type Generator struct {
	hash    Hasher
	catalog *gamedata.Catalog
}

// NewGenerator creates a generator for the seed, indexing into catalog.
func NewGenerator(seed int64, catalog *gamedata.Catalog) *Generator {
	return &Generator{
		hash:    NewHasher(seed),
		catalog: catalog,
	}
}

// Seed returns the world seed.
func (g *Generator) Seed() int64 {
	return g.hash.Seed()
}

// Catalog returns the descriptor tables used by the generator.
func (g *Generator) Catalog() *gamedata.Catalog {
	return g.catalog
}

// BiomeAt returns the biome id of the tile, a pure function of the tile's region.
func (g *Generator) BiomeAt(tx, ty int) int {
	return g.RegionAt(tx, ty).Biome
}

// Biome returns the biome descriptor of the tile.
func (g *Generator) Biome(tx, ty int) *gamedata.BiomeDef {
	return g.catalog.Biome(g.BiomeAt(tx, ty))
}

// RegionAt returns the region containing the tile.
func (g *Generator) RegionAt(tx, ty int) Region {
	bx, by := RegionCoord(Coord{X: tx, Y: ty})
	return g.region(bx, by)
}

// Regions returns the regions overlapping the rectangle with their biomes resolved.
func (g *Generator) Regions(r Rect) []Region {
	regions := r.Regions()
	for i := range regions {
		regions[i] = g.region(regions[i].X, regions[i].Y)
	}
	return regions
}

func (g *Generator) region(bx, by int) Region {
	return Region{X: bx, Y: by, Biome: pick(g.hash.At(float64(bx), float64(by)), g.catalog.NumBiomes())}
}

// TileNoise returns the cosmetic noise value of the tile in [0,1).
func (g *Generator) TileNoise(tx, ty int) float64 {
	return g.hash.At(float64(tx), float64(ty))
}

// RelicIndexAt returns the relic type index at the tile, if one is present.
func (g *Generator) RelicIndexAt(tx, ty int) (int, bool) {
	x, y := float64(tx), float64(ty)
	if g.hash.At(x*relicPresenceX, y*relicPresenceY) <= RelicThreshold {
		return 0, false
	}
	return pick(g.hash.At(x*relicTypeX, y*relicTypeY), g.catalog.NumRelics()), true
}

// RelicAt returns the relic at the tile, if one is present.
// Relics are never removed: the same tile reports the same relic forever.
func (g *Generator) RelicAt(tx, ty int) (*gamedata.RelicDef, bool) {
	idx, ok := g.RelicIndexAt(tx, ty)
	if !ok {
		return nil, false
	}
	return g.catalog.Relic(idx), true
}

// CreatureIndexAt returns the creature type index at the tile, if one is present.
func (g *Generator) CreatureIndexAt(tx, ty int) (int, bool) {
	x, y := float64(tx), float64(ty)
	if g.hash.At(x*creaturePresenceX, y*creaturePresenceY) <= CreatureThreshold {
		return 0, false
	}
	return pick(g.hash.At(x*creatureTypeX, y*creatureTypeY), g.catalog.NumCreatures()), true
}

// CreatureAt returns the creature at the tile, if one is present.
func (g *Generator) CreatureAt(tx, ty int) (*gamedata.CreatureDef, bool) {
	idx, ok := g.CreatureIndexAt(tx, ty)
	if !ok {
		return nil, false
	}
	return g.catalog.Creature(idx), true
}

// pick maps a hash in [0,1) onto [0, n).
func pick(h float64, n int) int {
	idx := int(h * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Census counts what a rectangle of tiles contains.
type Census struct {
	Tiles     int
	Relics    int
	Creatures int
	Both      int   // Tiles holding a relic and a creature
	Biomes    []int // Tile count per biome id
}

// RelicRate returns the fraction of sampled tiles holding a relic.
func (c Census) RelicRate() float64 {
	if c.Tiles == 0 {
		return 0
	}
	return float64(c.Relics) / float64(c.Tiles)
}

// CreatureRate returns the fraction of sampled tiles holding a creature.
func (c Census) CreatureRate() float64 {
	if c.Tiles == 0 {
		return 0
	}
	return float64(c.Creatures) / float64(c.Tiles)
}

// Sample walks every tile of the rectangle and counts occurrences.
func (g *Generator) Sample(ctx context.Context, r Rect) Census {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.sample")
	defer span.End()

	startTime := time.Now()

	census := Census{
		Tiles:  r.Area(),
		Biomes: make([]int, g.catalog.NumBiomes()),
	}
	for _, region := range g.Regions(r) {
		if clip, ok := region.Bounds().Intersect(r); ok {
			census.Biomes[region.Biome] += clip.Area()
		}
	}

	for ty := r.MinY; ty < r.MaxY; ty++ {
		for tx := r.MinX; tx < r.MaxX; tx++ {

			_, relic := g.RelicIndexAt(tx, ty)
			_, creature := g.CreatureIndexAt(tx, ty)
			if relic {
				census.Relics++
			}
			if creature {
				census.Creatures++
			}
			if relic && creature {
				census.Both++
			}
		}
	}

	span.SetAttributes(
		attribute.Int64("world.seed", g.Seed()),
		attribute.Int("sample.tiles", census.Tiles),
		attribute.Int("sample.relics", census.Relics),
		attribute.Int("sample.creatures", census.Creatures),
		attribute.Int64("sample.duration_ms", time.Since(startTime).Milliseconds()),
	)

	return census
}
