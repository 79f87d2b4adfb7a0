package world

// Rect is a half-open rectangle of tiles: [MinX, MaxX) x [MinY, MaxY).
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// RectAround returns the rectangle extending radius tiles from center on every side.
func RectAround(center Coord, radiusX, radiusY int) Rect {
	return Rect{
		MinX: center.X - radiusX,
		MinY: center.Y - radiusY,
		MaxX: center.X + radiusX + 1,
		MaxY: center.Y + radiusY + 1,
	}
}

// Width returns the number of columns in the rectangle.
func (r Rect) Width() int { return max(0, r.MaxX-r.MinX) }

// Height returns the number of rows in the rectangle.
func (r Rect) Height() int { return max(0, r.MaxY-r.MinY) }

// Area returns the number of tiles in the rectangle.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Contains returns true if the tile is inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.MinX && c.X < r.MaxX && c.Y >= r.MinY && c.Y < r.MaxY
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX < other.MaxX &&
		r.MaxX > other.MinX &&
		r.MinY < other.MaxY &&
		r.MaxY > other.MinY
}

// Intersect returns the overlap of two rectangles, or false if they are disjoint.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	return Rect{
		MinX: max(r.MinX, other.MinX),
		MinY: max(r.MinY, other.MinY),
		MaxX: min(r.MaxX, other.MaxX),
		MaxY: min(r.MaxY, other.MaxY),
	}, true
}

// Regions returns every region overlapping the rectangle, row by row.
func (r Rect) Regions() []Region {
	if r.Area() == 0 {
		return nil
	}
	minX, minY := RegionCoord(Coord{X: r.MinX, Y: r.MinY})
	maxX, maxY := RegionCoord(Coord{X: r.MaxX - 1, Y: r.MaxY - 1})

	regions := make([]Region, 0, (maxX-minX+1)*(maxY-minY+1))
	for by := minY; by <= maxY; by++ {
		for bx := minX; bx <= maxX; bx++ {
			regions = append(regions, Region{X: bx, Y: by})
		}
	}
	return regions
}

// Region is one RegionSize x RegionSize block of tiles sharing a biome.
type Region struct {
	X, Y  int // Block coordinates: FloorDiv(tile, RegionSize)
	Biome int // Biome id for every tile in the block
}

// RegionCoord returns the block coordinates containing a tile.
func RegionCoord(c Coord) (int, int) {
	return FloorDiv(c.X, RegionSize), FloorDiv(c.Y, RegionSize)
}

// Origin returns the top-left tile of the region.
func (r Region) Origin() Coord {
	return Coord{X: r.X * RegionSize, Y: r.Y * RegionSize}
}

// Bounds returns the tiles covered by the region.
func (r Region) Bounds() Rect {
	o := r.Origin()
	return Rect{MinX: o.X, MinY: o.Y, MaxX: o.X + RegionSize, MaxY: o.Y + RegionSize}
}

// Contains returns true if the tile belongs to the region.
func (r Region) Contains(c Coord) bool {
	return r.Bounds().Contains(c)
}
