package entity

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Journal records what the player has picked up this session. The relic
// counter only ever increases and the discovered set only ever grows.
type Journal struct {
	relics     int
	discovered mapset.Set[string]
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{discovered: mapset.New[string]()}
}

// CollectRelic increments the relic counter and returns the new total.
func (j *Journal) CollectRelic() int {
	j.relics++
	return j.relics
}

// Relics returns the number of relics collected.
func (j *Journal) Relics() int {
	return j.relics
}

// Discover adds a creature name to the discovered set.
// It returns true if the name was new.
func (j *Journal) Discover(name string) bool {
	if j.discovered.Has(name) {
		return false
	}
	j.discovered.Put(name)
	return true
}

// DiscoveredCount returns the size of the discovered set.
func (j *Journal) DiscoveredCount() int {
	return j.discovered.Size()
}

// Discovered returns the discovered names alphabetically.
func (j *Journal) Discovered() []string {
	names := make([]string, 0, j.discovered.Size())
	j.discovered.Each(func(name string) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}
