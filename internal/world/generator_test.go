package world

import (
	"context"
	"testing"

	"github.com/samdwyer/relicfield/internal/gamedata"
)

var testCatalog = func() *gamedata.Catalog {
	c, err := gamedata.LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}()

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(seed, testCatalog)
}

func TestGeneratorReproducibility(t *testing.T) {
	// Two generators with the same seed describe the same world
	g1 := newTestGenerator(1337)
	g2 := newTestGenerator(1337)

	for ty := -64; ty < 64; ty++ {
		for tx := -64; tx < 64; tx++ {
			if g1.BiomeAt(tx, ty) != g2.BiomeAt(tx, ty) {
				t.Fatalf("BiomeAt(%d,%d) mismatch", tx, ty)
			}
			if g1.TileNoise(tx, ty) != g2.TileNoise(tx, ty) {
				t.Fatalf("TileNoise(%d,%d) mismatch", tx, ty)
			}

			r1, ok1 := g1.RelicAt(tx, ty)
			r2, ok2 := g2.RelicAt(tx, ty)
			if ok1 != ok2 || (ok1 && r1.ID != r2.ID) {
				t.Fatalf("RelicAt(%d,%d) mismatch", tx, ty)
			}

			c1, ok1 := g1.CreatureAt(tx, ty)
			c2, ok2 := g2.CreatureAt(tx, ty)
			if ok1 != ok2 || (ok1 && c1.ID != c2.ID) {
				t.Fatalf("CreatureAt(%d,%d) mismatch", tx, ty)
			}
		}
	}
}

func TestGeneratorRepeatedQueries(t *testing.T) {
	g := newTestGenerator(1337)

	// Revisiting a tile reproduces exactly the same content
	for i := 0; i < 3; i++ {
		for _, c := range []Coord{{0, 0}, {17, -3}, {-250, 999}} {
			b := g.BiomeAt(c.X, c.Y)
			n := g.TileNoise(c.X, c.Y)
			ri, rok := g.RelicIndexAt(c.X, c.Y)
			ci, cok := g.CreatureIndexAt(c.X, c.Y)

			if g.BiomeAt(c.X, c.Y) != b || g.TileNoise(c.X, c.Y) != n {
				t.Errorf("tile %v changed between queries", c)
			}
			if ri2, rok2 := g.RelicIndexAt(c.X, c.Y); ri2 != ri || rok2 != rok {
				t.Errorf("relic at %v changed between queries", c)
			}
			if ci2, cok2 := g.CreatureIndexAt(c.X, c.Y); ci2 != ci || cok2 != cok {
				t.Errorf("creature at %v changed between queries", c)
			}
		}
	}
}

func TestBiomeRegionalConsistency(t *testing.T) {
	g := newTestGenerator(1337)

	for by := -3; by <= 3; by++ {
		for bx := -3; bx <= 3; bx++ {
			region := Region{X: bx, Y: by}
			origin := region.Origin()
			want := g.BiomeAt(origin.X, origin.Y)

			b := region.Bounds()
			for ty := b.MinY; ty < b.MaxY; ty++ {
				for tx := b.MinX; tx < b.MaxX; tx++ {
					if got := g.BiomeAt(tx, ty); got != want {
						t.Fatalf("region (%d,%d): tile (%d,%d) biome %d, want %d", bx, by, tx, ty, got, want)
					}
				}
			}

			got := g.RegionAt(origin.X+5, origin.Y+11)
			if got.X != bx || got.Y != by || got.Biome != want {
				t.Errorf("RegionAt inside (%d,%d) = %+v", bx, by, got)
			}
		}
	}
}

func TestGeneratorRanges(t *testing.T) {
	g := newTestGenerator(99)
	cat := g.Catalog()

	for ty := -100; ty < 100; ty++ {
		for tx := -100; tx < 100; tx++ {
			if b := g.BiomeAt(tx, ty); b < 0 || b >= cat.NumBiomes() {
				t.Fatalf("BiomeAt(%d,%d) = %d out of range", tx, ty, b)
			}
			if n := g.TileNoise(tx, ty); n < 0 || n >= 1 {
				t.Fatalf("TileNoise(%d,%d) = %v out of range", tx, ty, n)
			}
			if i, ok := g.RelicIndexAt(tx, ty); ok && (i < 0 || i >= cat.NumRelics()) {
				t.Fatalf("RelicIndexAt(%d,%d) = %d out of range", tx, ty, i)
			}
			if i, ok := g.CreatureIndexAt(tx, ty); ok && (i < 0 || i >= cat.NumCreatures()) {
				t.Fatalf("CreatureIndexAt(%d,%d) = %d out of range", tx, ty, i)
			}
			if g.Biome(tx, ty) == nil {
				t.Fatalf("Biome(%d,%d) returned nil", tx, ty)
			}
		}
	}
}

func TestOccurrenceSparsity(t *testing.T) {
	g := newTestGenerator(1337)

	census := g.Sample(context.Background(), Rect{MinX: 0, MinY: 0, MaxX: 400, MaxY: 250})
	if census.Tiles != 100000 {
		t.Fatalf("sampled %d tiles, want 100000", census.Tiles)
	}

	// Expected rates are 1-threshold: 1.3% relics, 1.5% creatures
	if rate := census.RelicRate(); rate < 0.010 || rate > 0.016 {
		t.Errorf("relic rate = %.4f, want ~%.3f", rate, 1-RelicThreshold)
	}
	if rate := census.CreatureRate(); rate < 0.012 || rate > 0.018 {
		t.Errorf("creature rate = %.4f, want ~%.3f", rate, 1-CreatureThreshold)
	}

	// Independent channels: co-occurrence is possible but rare
	if census.Both > census.Relics || census.Both > census.Creatures {
		t.Errorf("co-occurrence count %d exceeds a marginal count", census.Both)
	}
	if census.Both > 100 {
		t.Errorf("co-occurrence count %d is far above the ~20 expected for independent channels", census.Both)
	}
}

func TestAllBiomesAppear(t *testing.T) {
	g := newTestGenerator(1337)

	census := g.Sample(context.Background(), Rect{MinX: -320, MinY: -320, MaxX: 320, MaxY: 320})
	for id, n := range census.Biomes {
		if n == 0 {
			t.Errorf("biome %d never appears in a 40x40 region sample", id)
		}
	}
}

func TestSampleBiomeCountsMatchTiles(t *testing.T) {
	g := newTestGenerator(7)

	// Unaligned rectangle so edge regions are clipped
	r := Rect{MinX: -37, MinY: -5, MaxX: 41, MaxY: 29}
	census := g.Sample(context.Background(), r)

	want := make([]int, g.Catalog().NumBiomes())
	for ty := r.MinY; ty < r.MaxY; ty++ {
		for tx := r.MinX; tx < r.MaxX; tx++ {
			want[g.BiomeAt(tx, ty)]++
		}
	}

	if census.Tiles != r.Area() {
		t.Errorf("Tiles = %d, want %d", census.Tiles, r.Area())
	}
	for id := range want {
		if census.Biomes[id] != want[id] {
			t.Errorf("Biomes[%d] = %d, want %d", id, census.Biomes[id], want[id])
		}
	}
}

func TestRegionsResolveBiomes(t *testing.T) {
	g := newTestGenerator(1337)

	for _, region := range g.Regions(Rect{MinX: -40, MinY: -40, MaxX: 40, MaxY: 40}) {
		o := region.Origin()
		if want := g.BiomeAt(o.X, o.Y); region.Biome != want {
			t.Errorf("region %d,%d biome = %d, want %d", region.X, region.Y, region.Biome, want)
		}
	}
}

func TestAllTypesAppear(t *testing.T) {
	g := newTestGenerator(1337)
	cat := g.Catalog()

	relics := make(map[int]bool)
	creatures := make(map[int]bool)
	for ty := 0; ty < 300; ty++ {
		for tx := 0; tx < 300; tx++ {
			if i, ok := g.RelicIndexAt(tx, ty); ok {
				relics[i] = true
			}
			if i, ok := g.CreatureIndexAt(tx, ty); ok {
				creatures[i] = true
			}
		}
	}

	if len(relics) != cat.NumRelics() {
		t.Errorf("saw %d relic types, want %d", len(relics), cat.NumRelics())
	}
	if len(creatures) != cat.NumCreatures() {
		t.Errorf("saw %d creature types, want %d", len(creatures), cat.NumCreatures())
	}
}

func TestGeneratorDifferentSeeds(t *testing.T) {
	// Generate two worlds with different seeds - they should be different
	g1 := newTestGenerator(12345)
	g2 := newTestGenerator(54321)

	identical := true
	for by := 0; by < 16 && identical; by++ {
		for bx := 0; bx < 16; bx++ {
			if g1.BiomeAt(bx*RegionSize, by*RegionSize) != g2.BiomeAt(bx*RegionSize, by*RegionSize) {
				identical = false
				break
			}
		}
	}

	if identical {
		t.Error("Worlds with different seeds should not have identical biome maps")
	}
}

func TestRelicAtMatchesIndex(t *testing.T) {
	g := newTestGenerator(7)

	found := 0
	for ty := 0; ty < 200 && found < 10; ty++ {
		for tx := 0; tx < 200; tx++ {
			idx, ok := g.RelicIndexAt(tx, ty)
			relic, rok := g.RelicAt(tx, ty)
			if ok != rok {
				t.Fatalf("RelicAt and RelicIndexAt disagree at (%d,%d)", tx, ty)
			}
			if !ok {
				if relic != nil {
					t.Fatalf("RelicAt(%d,%d) returned a relic with ok=false", tx, ty)
				}
				continue
			}
			if relic != g.Catalog().Relic(idx) {
				t.Errorf("RelicAt(%d,%d) = %s, want index %d", tx, ty, relic.Name, idx)
			}
			found++
		}
	}

	if found == 0 {
		t.Fatal("no relics found in a 200x200 sample")
	}
}
