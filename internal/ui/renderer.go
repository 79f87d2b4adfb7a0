package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/relicfield/internal/gamedata"
	"github.com/samdwyer/relicfield/internal/input"
	"github.com/samdwyer/relicfield/internal/sim"
	"github.com/samdwyer/relicfield/internal/world"
)

const (
	// A tile is two cells wide and one row tall, which looks roughly square
	// in most terminal fonts.
	tileCols = 2
	tileRows = 1

	// windowMargin is the extra ring of tiles drawn around the viewport.
	windowMargin = 2

	speckleThreshold = 0.92
	speckleAlpha     = 0.15

	joystickRingRadius  = 24.0 // pixels
	joystickRingWidth   = 5.0
	joystickRingAlpha   = 0.18
	joystickThumbRadius = 10.0
	joystickThumbAlpha  = 0.25
)

// Marker glyphs.
const (
	glyphRelic    = '●'
	glyphCreature = '◇'
	glyphSpeckle  = '·'
	glyphRing     = '·'
	glyphThumb    = '◉'
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// CellMetrics is the size of one terminal cell in world/pointer pixels, the
// terminal counterpart of a device pixel ratio.
type CellMetrics struct {
	Width, Height float64
}

// ToPixels converts a cell position to the pixel position of the cell's centre.
func (m CellMetrics) ToPixels(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * m.Width, (float64(y) + 0.5) * m.Height
}

// ToCell converts a pixel position to the cell containing it.
func (m CellMetrics) ToCell(px, py float64) (int, int) {
	return int(math.Floor(px / m.Width)), int(math.Floor(py / m.Height))
}

// Frame is everything the renderer reads for one frame.
type Frame struct {
	View     sim.View
	Joystick *input.Joystick // nil when no joystick is active
}

// Renderer draws the world around the player. It only reads state.
type Renderer struct {
	surface Surface
	metrics CellMetrics
}

// NewRenderer creates a new renderer for the given surface.
func NewRenderer(surface Surface, metrics CellMetrics) *Renderer {
	return &Renderer{surface: surface, metrics: metrics}
}

// VisibleWindow returns the tiles to draw for a viewport of the given cell
// size centred on the player's tile.
func VisibleWindow(viewW, viewH int, center world.Coord) world.Rect {
	cols := ceilDiv(viewW, tileCols)
	rows := ceilDiv(viewH, tileRows)
	return world.RectAround(center, cols/2+windowMargin, rows/2+windowMargin)
}

// TileToCell returns the screen cell of a tile's left column for a player at
// (px, py) on a viewport of the given size.
func TileToCell(viewW, viewH int, px, py float64, tile world.Coord) (int, int) {
	center := world.TileOf(px, py)

	// Horizontal sub-tile scroll: one cell once the player is past the tile's midpoint
	frac := px/world.TileSize - math.Floor(px/world.TileSize)
	subX := int(frac * tileCols)

	originX := viewW/2 - subX
	originY := viewH / 2
	return originX + (tile.X-center.X)*tileCols, originY + (tile.Y-center.Y)*tileRows
}

// Render clears the surface and draws the world, the player and the joystick overlay.
// It does not call Show; the caller flushes once the HUD is drawn too.
func (r *Renderer) Render(frame Frame) {
	r.surface.Clear()
	w, h := r.surface.Size()

	player := frame.View.Player()
	gen := frame.View.Generator()

	// Biomes are looked up once per region rather than once per tile
	window := VisibleWindow(w, h, world.TileOf(player.PX, player.PY))
	for _, region := range gen.Regions(window) {
		clip, ok := region.Bounds().Intersect(window)
		if !ok {
			continue
		}
		biome := gen.Catalog().Biome(region.Biome)
		for ty := clip.MinY; ty < clip.MaxY; ty++ {
			for tx := clip.MinX; tx < clip.MaxX; tx++ {
				x, y := TileToCell(w, h, player.PX, player.PY, world.Coord{X: tx, Y: ty})
				if x+tileCols <= 0 || x >= w || y+tileRows <= 0 || y >= h {
					continue
				}
				r.drawTile(gen, biome, tx, ty, x, y)
			}
		}
	}

	// The world scrolls; the player stays at the centre
	r.setForeground(w/2, h/2, player.Symbol, white, true)

	if frame.Joystick != nil {
		r.drawJoystick(*frame.Joystick)
	}
}

func (r *Renderer) drawTile(gen *world.Generator, biome *gamedata.BiomeDef, tx, ty, x, y int) {
	noise := gen.TileNoise(tx, ty)
	base := biome.PaletteColor(world.NoiseBand(noise))

	style := tcell.StyleDefault.Background(gamedata.TCellColor(base))
	for dx := 0; dx < tileCols; dx++ {
		r.surface.SetContent(x+dx, y, ' ', style)
	}

	if noise > speckleThreshold {
		r.surface.SetContent(x, y, glyphSpeckle, style.Foreground(gamedata.TCellColor(base.BlendRgb(white, speckleAlpha))))
	}

	if relic, ok := gen.RelicAt(tx, ty); ok {
		r.surface.SetContent(x, y, glyphRelic, style.Foreground(gamedata.TCellColor(relic.RGB())))
	}
	if creature, ok := gen.CreatureAt(tx, ty); ok {
		r.surface.SetContent(x+tileCols-1, y, glyphCreature, style.Foreground(gamedata.TCellColor(creature.RGB())))
	}
}

// drawJoystick overlays the anchor ring and the thumb, blending white into the
// cells underneath.
func (r *Renderer) drawJoystick(js input.Joystick) {
	w, h := r.surface.Size()

	minX, minY := r.metrics.ToCell(js.SX-joystickRingRadius-joystickRingWidth, js.SY-joystickRingRadius-joystickRingWidth)
	maxX, maxY := r.metrics.ToCell(js.SX+joystickRingRadius+joystickRingWidth, js.SY+joystickRingRadius+joystickRingWidth)
	for y := max(0, minY); y <= min(h-1, maxY); y++ {
		for x := max(0, minX); x <= min(w-1, maxX); x++ {
			px, py := r.metrics.ToPixels(x, y)
			d := math.Hypot(px-js.SX, py-js.SY)
			if math.Abs(d-joystickRingRadius) <= joystickRingWidth {
				r.blend(x, y, glyphRing, joystickRingAlpha)
			}
		}
	}

	minX, minY = r.metrics.ToCell(js.X-joystickThumbRadius, js.Y-joystickThumbRadius)
	maxX, maxY = r.metrics.ToCell(js.X+joystickThumbRadius, js.Y+joystickThumbRadius)
	for y := max(0, minY); y <= min(h-1, maxY); y++ {
		for x := max(0, minX); x <= min(w-1, maxX); x++ {
			px, py := r.metrics.ToPixels(x, y)
			if math.Hypot(px-js.X, py-js.Y) <= joystickThumbRadius {
				r.blend(x, y, 0, joystickThumbAlpha)
			}
		}
	}

	tx, ty := r.metrics.ToCell(js.X, js.Y)
	if tx >= 0 && tx < w && ty >= 0 && ty < h {
		r.blend(tx, ty, glyphThumb, joystickThumbAlpha)
	}
}

// blend mixes white into a cell's background at alpha. A zero glyph keeps the
// cell's current rune.
func (r *Renderer) blend(x, y int, glyph rune, alpha float64) {
	cur, style := r.surface.GetContent(x, y)
	_, bg, _ := style.Decompose()
	mixed := toColorful(bg).BlendRgb(white, alpha)

	if glyph == 0 {
		glyph = cur
	}
	style = style.Background(gamedata.TCellColor(mixed))
	if glyph != ' ' {
		style = style.Foreground(gamedata.TCellColor(mixed.BlendRgb(white, 0.5)))
	}
	r.surface.SetContent(x, y, glyph, style)
}

// setForeground draws a glyph keeping the cell's background.
func (r *Renderer) setForeground(x, y int, glyph rune, fg colorful.Color, bold bool) {
	_, style := r.surface.GetContent(x, y)
	r.surface.SetContent(x, y, glyph, style.Foreground(gamedata.TCellColor(fg)).Bold(bold))
}

// toColorful converts a tcell colour; unset colours count as black.
func toColorful(c tcell.Color) colorful.Color {
	if !c.Valid() {
		return black
	}
	rr, gg, bb := c.RGB()
	if rr < 0 {
		return black
	}
	return colorful.Color{R: float64(rr) / 255, G: float64(gg) / 255, B: float64(bb) / 255}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
