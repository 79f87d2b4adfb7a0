package sim

import (
	"github.com/samdwyer/relicfield/internal/gamedata"
	"github.com/samdwyer/relicfield/internal/world"
)

// EventKind identifies a discrete outcome of a simulation step.
type EventKind int

const (
	// EventBiomeChanged fires when the player's tile belongs to a different biome than last frame.
	EventBiomeChanged EventKind = iota
	// EventDiscovered fires when an interaction finds a creature.
	EventDiscovered
	// EventCollected fires when an interaction picks up a relic.
	EventCollected
	// EventNothing fires when an interaction finds an empty tile.
	EventNothing
)

// String returns a human-readable kind name.
func (k EventKind) String() string {
	switch k {
	case EventBiomeChanged:
		return "biome_changed"
	case EventDiscovered:
		return "discovered"
	case EventCollected:
		return "collected"
	case EventNothing:
		return "nothing"
	default:
		return "unknown"
	}
}

// Event is handed to the presentation shell after a step.
type Event struct {
	Kind     EventKind
	Tile     world.Coord
	BiomeID  int
	Biome    *gamedata.BiomeDef    // Set for EventBiomeChanged
	Relic    *gamedata.RelicDef    // Set for EventCollected
	Creature *gamedata.CreatureDef // Set for EventDiscovered
	New      bool                  // EventDiscovered: the name was not in the set yet
}

// Message returns the notification text for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventBiomeChanged:
		if e.Biome == nil {
			return ""
		}
		return "Law: " + e.Biome.Law
	case EventDiscovered:
		return "Discovered " + e.Creature.Name
	case EventCollected:
		return "Collected " + e.Relic.Name
	case EventNothing:
		return "Nothing here…"
	default:
		return ""
	}
}
