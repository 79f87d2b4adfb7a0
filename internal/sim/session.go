// Package sim owns the mutable session state and advances it one frame at a time.
package sim

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/relicfield/internal/entity"
	"github.com/samdwyer/relicfield/internal/input"
	"github.com/samdwyer/relicfield/internal/telemetry"
	"github.com/samdwyer/relicfield/internal/world"
)

const (
	// DefaultBaseSpeed is the player speed in world pixels per frame before biome scaling.
	DefaultBaseSpeed = 2.1
	// DefaultCooldown is the minimum time between two fired interactions.
	DefaultCooldown = 200 * time.Millisecond

	noBiome = -1
)

// Config holds the tunables of a session.
type Config struct {
	BaseSpeed float64
	Cooldown  time.Duration
	Start     world.Coord // Tile the player starts on
}

// DefaultConfig returns the standard session tunables.
func DefaultConfig() Config {
	return Config{
		BaseSpeed: DefaultBaseSpeed,
		Cooldown:  DefaultCooldown,
	}
}

// Summary is the read-only digest the presentation shell displays.
type Summary struct {
	BiomeID    int
	BiomeName  string
	Law        string
	Relics     int
	Discovered int
	Coords     world.Coord // Rounded tile coordinates
	Frame      uint64
}

// CoordText returns the coordinates formatted as "x,y".
func (s Summary) CoordText() string {
	return s.Coords.String()
}

// View is the read-only face of a session used by the renderer and the shell.
type View interface {
	Player() entity.Player
	Summary() Summary
	Generator() *world.Generator
}

// Session is the single owner of all mutable game state: the player, the
// journal and the interaction latch. Only Step mutates it.
type Session struct {
	gen     *world.Generator
	clock   Clock
	cfg     Config
	player  *entity.Player
	journal *entity.Journal
	latch   *Latch

	region    world.Region // Region holding the player's tile after the last step
	lastBiome int
	frame     uint64
	summary   Summary
}

// NewSession creates a session on the given world.
func NewSession(gen *world.Generator, clock Clock, cfg Config) *Session {
	s := &Session{
		gen:       gen,
		clock:     clock,
		cfg:       cfg,
		player:    entity.NewPlayer(cfg.Start),
		journal:   entity.NewJournal(),
		latch:     NewLatch(cfg.Cooldown),
		lastBiome: noBiome,
	}
	s.region = gen.RegionAt(cfg.Start.X, cfg.Start.Y)
	s.publish()
	return s
}

// Step advances the session by one frame and returns the events it produced,
// in order: at most one biome change, then at most one interaction outcome.
func (s *Session) Step(ctx context.Context, intent input.Intent) []Event {
	var events []Event
	s.frame++

	if intent.Interact {
		s.latch.Queue()
	}

	// Speed comes from the tile occupied before moving, so it lags one frame at borders
	here := s.player.Tile()
	speed := s.cfg.BaseSpeed * s.gen.Biome(here.X, here.Y).Speed
	s.player.SetVelocity(intent.DX*speed, intent.DY*speed)
	s.player.Integrate()

	tile := s.player.Tile()
	if !s.region.Contains(tile) {
		s.region = s.gen.RegionAt(tile.X, tile.Y)
	}
	biomeID := s.region.Biome
	if biomeID != s.lastBiome {
		s.lastBiome = biomeID
		events = append(events, s.enterBiome(ctx, tile, biomeID))
	}

	// Floor tile, not the rounded HUD coordinates: the readout can name a neighbour
	if s.latch.TryFire(s.clock.Now()) {
		events = append(events, s.interact(ctx, tile))
	}

	s.publish()
	return events
}

func (s *Session) enterBiome(ctx context.Context, tile world.Coord, biomeID int) Event {
	biome := s.gen.Catalog().Biome(biomeID)

	_, span := telemetry.Tracer("sim").Start(ctx, "biome.enter")
	span.SetAttributes(
		attribute.Int("biome.id", biomeID),
		attribute.String("biome.name", biome.Name),
		attribute.String("tile", tile.String()),
	)
	span.End()

	return Event{Kind: EventBiomeChanged, Tile: tile, BiomeID: biomeID, Biome: biome}
}

// interact resolves one fired interaction on the tile. Creatures take priority
// over relics; exactly one outcome is produced.
func (s *Session) interact(ctx context.Context, tile world.Coord) Event {
	_, span := telemetry.Tracer("sim").Start(ctx, "interaction")
	defer span.End()

	ev := Event{Tile: tile, BiomeID: s.lastBiome}

	if creature, ok := s.gen.CreatureAt(tile.X, tile.Y); ok {
		ev.Kind = EventDiscovered
		ev.Creature = creature
		ev.New = s.journal.Discover(creature.Name)
		span.SetAttributes(
			attribute.String("creature", creature.Name),
			attribute.Bool("new", ev.New),
		)
	} else if relic, ok := s.gen.RelicAt(tile.X, tile.Y); ok {
		// The relic stays in the world; only the counter moves
		ev.Kind = EventCollected
		ev.Relic = relic
		s.journal.CollectRelic()
		span.SetAttributes(attribute.String("relic", relic.Name))
	} else {
		ev.Kind = EventNothing
	}

	span.SetAttributes(
		attribute.String("outcome", ev.Kind.String()),
		attribute.String("tile", tile.String()),
		attribute.Int("relics", s.journal.Relics()),
		attribute.Int("discovered", s.journal.DiscoveredCount()),
	)
	return ev
}

func (s *Session) publish() {
	s.summary = Summary{
		BiomeID:    s.lastBiome,
		Relics:     s.journal.Relics(),
		Discovered: s.journal.DiscoveredCount(),
		Coords:     s.player.RoundedTile(),
		Frame:      s.frame,
	}
	if biome := s.gen.Catalog().Biome(s.lastBiome); biome != nil {
		s.summary.BiomeName = biome.Name
		s.summary.Law = biome.Law
	}
}

// Player returns a copy of the player state.
func (s *Session) Player() entity.Player {
	return *s.player
}

// Summary returns the digest published by the last step.
func (s *Session) Summary() Summary {
	return s.summary
}

// Generator returns the world the session explores.
func (s *Session) Generator() *world.Generator {
	return s.gen
}

// Journal returns the session journal. Callers must treat it as read-only.
func (s *Session) Journal() *entity.Journal {
	return s.journal
}

var _ View = (*Session)(nil)
