// Package input turns held keys and a pointer joystick into a per-frame
// movement intent.
package input

import (
	"math"
	"strings"
	"time"
)

// DeadZone is the joystick displacement, in pixels, below which it contributes nothing.
const DeadZone = 6.0

// Key names recognised for movement, lower-cased.
const (
	KeyUp       = "arrowup"
	KeyDown     = "arrowdown"
	KeyLeft     = "arrowleft"
	KeyRight    = "arrowright"
	KeyInteract = " "
)

var (
	upKeys    = []string{"w", KeyUp}
	downKeys  = []string{"s", KeyDown}
	leftKeys  = []string{"a", KeyLeft}
	rightKeys = []string{"d", KeyRight}
)

// Intent is what the controller asks of the simulation for one frame.
type Intent struct {
	DX, DY   float64 // Unit direction, or zero when idle
	Interact bool    // An interaction was requested since the last frame
}

// Joystick is the single active pointer joystick.
type Joystick struct {
	ID     int     // Pointer id that owns the joystick
	SX, SY float64 // Anchor (pointer-down position)
	X, Y   float64 // Current thumb position
}

// Displacement returns the thumb offset from the anchor and its length.
func (j Joystick) Displacement() (dx, dy, mag float64) {
	dx = j.X - j.SX
	dy = j.Y - j.SY
	return dx, dy, math.Hypot(dx, dy)
}

// Controller aggregates key and pointer input. Event handlers only record
// state; Intent is read once per frame by the game loop.
type Controller struct {
	keys          map[string]time.Time // Zero time means held until KeyUp
	holdFor       time.Duration
	joystick      *Joystick
	viewportWidth float64
	interact      bool
}

// NewController creates a controller. holdFor is how long a press without a
// matching release keeps a key held; terminals only report presses and
// auto-repeat refreshes the hold.
func NewController(holdFor time.Duration) *Controller {
	return &Controller{
		keys:    make(map[string]time.Time),
		holdFor: holdFor,
	}
}

// SetViewportWidth sets the pointer-space width used to split the screen into
// the joystick half and the interaction half.
func (c *Controller) SetViewportWidth(w float64) {
	c.viewportWidth = w
}

func normalizeKey(name string) string {
	if name == " " {
		return name
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// KeyDown marks a key as held until KeyUp. Space also queues an interaction.
func (c *Controller) KeyDown(name string) {
	name = normalizeKey(name)
	c.keys[name] = time.Time{}
	if name == KeyInteract {
		c.interact = true
	}
}

// KeyUp releases a held key.
func (c *Controller) KeyUp(name string) {
	delete(c.keys, normalizeKey(name))
}

// KeyPress marks a key as held until now+holdFor. Space also queues an interaction.
func (c *Controller) KeyPress(name string, now time.Time) {
	name = normalizeKey(name)
	c.keys[name] = now.Add(c.holdFor)
	if name == KeyInteract {
		c.interact = true
	}
}

// Expire releases keys whose press-hold has run out.
func (c *Controller) Expire(now time.Time) {
	for k, until := range c.keys {
		if !until.IsZero() && !now.Before(until) {
			delete(c.keys, k)
		}
	}
}

// PointerDown starts a joystick on the left half of the viewport, or queues an
// interaction on the right half. A second pointer while a joystick is active
// on the left half is ignored.
func (c *Controller) PointerDown(id int, x, y float64) {
	if x < c.viewportWidth*0.5 {
		if c.joystick == nil {
			c.joystick = &Joystick{ID: id, SX: x, SY: y, X: x, Y: y}
		}
		return
	}
	c.interact = true
}

// PointerMove moves the joystick thumb if id owns the joystick.
func (c *Controller) PointerMove(id int, x, y float64) {
	if c.joystick != nil && c.joystick.ID == id {
		c.joystick.X = x
		c.joystick.Y = y
	}
}

// PointerUp releases the joystick if id owns it.
func (c *Controller) PointerUp(id int) {
	if c.joystick != nil && c.joystick.ID == id {
		c.joystick = nil
	}
}

// Joystick returns a copy of the active joystick.
func (c *Controller) Joystick() (Joystick, bool) {
	if c.joystick == nil {
		return Joystick{}, false
	}
	return *c.joystick, true
}

// Direction sums the key and joystick contributions and normalises the result.
// A zero-length sum stays zero.
func (c *Controller) Direction() (float64, float64) {
	var dx, dy float64
	if c.anyHeld(upKeys) {
		dy--
	}
	if c.anyHeld(downKeys) {
		dy++
	}
	if c.anyHeld(leftKeys) {
		dx--
	}
	if c.anyHeld(rightKeys) {
		dx++
	}

	if c.joystick != nil {
		jdx, jdy, mag := c.joystick.Displacement()
		if mag > DeadZone {
			dx += jdx / mag
			dy += jdy / mag
		}
	}

	return Normalize(dx, dy)
}

// Intent returns the frame's direction and drains the interaction request.
func (c *Controller) Intent() Intent {
	dx, dy := c.Direction()
	intent := Intent{DX: dx, DY: dy, Interact: c.interact}
	c.interact = false
	return intent
}

func (c *Controller) anyHeld(names []string) bool {
	for _, n := range names {
		if _, ok := c.keys[n]; ok {
			return true
		}
	}
	return false
}

// Normalize scales (dx, dy) to unit length. A zero vector divides by 1
// instead of 0 and so stays zero.
func Normalize(dx, dy float64) (float64, float64) {
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		mag = 1
	}
	return dx / mag, dy / mag
}
