// Package world provides the deterministic procedural world: a seeded hash,
// the generator queries built on it and the tile/region geometry they share.
package world

import (
	"fmt"
	"math"
)

const (
	// TileSize is the edge length of a tile in world pixels.
	TileSize = 32.0

	// RegionSize is the edge length, in tiles, of a biome region.
	RegionSize = 16
)

// Coord is an integer tile coordinate.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// TileOf returns the tile containing the world-pixel position (floor division).
func TileOf(px, py float64) Coord {
	return Coord{
		X: int(math.Floor(px / TileSize)),
		Y: int(math.Floor(py / TileSize)),
	}
}

// RoundedTileOf returns the nearest tile index to the world-pixel position,
// rounding halves up. Used for the coordinate readout.
func RoundedTileOf(px, py float64) Coord {
	return Coord{
		X: int(math.Floor(px/TileSize + 0.5)),
		Y: int(math.Floor(py/TileSize + 0.5)),
	}
}

// FloorDiv divides rounding toward negative infinity, so tile -1 lands in
// region -1 rather than region 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Noise band upper bounds.
const (
	bandLow  = 0.33
	bandMid  = 0.66
	bandHigh = 0.85
)

// NoiseBand maps a tile noise value in [0,1) to one of four palette bands:
// [0,.33) [.33,.66) [.66,.85) [.85,1).
func NoiseBand(n float64) int {
	switch {
	case n < bandLow:
		return 0
	case n < bandMid:
		return 1
	case n < bandHigh:
		return 2
	default:
		return 3
	}
}
