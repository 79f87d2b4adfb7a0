// Package entity provides the mutable session entities: the player marker and
// the journal of what it has collected and discovered.
package entity

import "github.com/samdwyer/relicfield/internal/world"

// Player is the roaming marker. Position and velocity are in world pixels.
type Player struct {
	PX, PY float64 // Current position
	VX, VY float64 // Velocity applied on the last step
	Symbol rune    // Display symbol
}

// NewPlayer creates a player standing at the top-left corner of the given tile.
func NewPlayer(start world.Coord) *Player {
	return &Player{
		PX:     float64(start.X) * world.TileSize,
		PY:     float64(start.Y) * world.TileSize,
		Symbol: '●',
	}
}

// SetVelocity replaces the current velocity.
func (p *Player) SetVelocity(vx, vy float64) {
	p.VX = vx
	p.VY = vy
}

// Integrate advances the position by one step of the current velocity.
func (p *Player) Integrate() {
	p.PX += p.VX
	p.PY += p.VY
}

// Position returns the current world-pixel coordinates.
func (p *Player) Position() (float64, float64) {
	return p.PX, p.PY
}

// Tile returns the tile the player is standing on.
func (p *Player) Tile() world.Coord {
	return world.TileOf(p.PX, p.PY)
}

// RoundedTile returns the nearest tile index, used for the coordinate readout.
func (p *Player) RoundedTile() world.Coord {
	return world.RoundedTileOf(p.PX, p.PY)
}
