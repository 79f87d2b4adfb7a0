package input

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestDirectionKeys(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		dx, dy float64
	}{
		{"idle", nil, 0, 0},
		{"right", []string{"d"}, 1, 0},
		{"arrow up", []string{"ArrowUp"}, 0, -1},
		{"diagonal", []string{"w", "d"}, math.Sqrt2 / 2, -math.Sqrt2 / 2},
		{"opposing cancel", []string{"a", "d"}, 0, 0},
		{"duplicate axis", []string{"s", "arrowdown"}, 0, 1},
		{"unknown key", []string{"x"}, 0, 0},
	}

	for _, tt := range tests {
		c := NewController(0)
		for _, k := range tt.keys {
			c.KeyDown(k)
		}
		dx, dy := c.Direction()
		if !approx(dx, tt.dx) || !approx(dy, tt.dy) {
			t.Errorf("%s: Direction() = (%v,%v), want (%v,%v)", tt.name, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestKeyUpReleases(t *testing.T) {
	c := NewController(0)
	c.KeyDown("D")
	if dx, _ := c.Direction(); dx != 1 {
		t.Fatalf("Direction().dx = %v after KeyDown(D), want 1", dx)
	}
	c.KeyUp("d")
	if dx, _ := c.Direction(); dx != 0 {
		t.Errorf("Direction().dx = %v after KeyUp, want 0", dx)
	}
}

func TestKeyPressHoldExpires(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewController(150 * time.Millisecond)

	c.KeyPress("a", start)
	c.Expire(start.Add(100 * time.Millisecond))
	if dx, _ := c.Direction(); dx != -1 {
		t.Fatal("key should still be held inside the hold window")
	}

	// Auto-repeat refreshes the hold
	c.KeyPress("a", start.Add(120*time.Millisecond))
	c.Expire(start.Add(200 * time.Millisecond))
	if dx, _ := c.Direction(); dx != -1 {
		t.Fatal("refreshed key should still be held")
	}

	c.Expire(start.Add(270 * time.Millisecond))
	if dx, _ := c.Direction(); dx != 0 {
		t.Error("key should be released once its hold runs out")
	}

	// KeyDown holds are never expired
	c.KeyDown("w")
	c.Expire(start.Add(time.Hour))
	if _, dy := c.Direction(); dy != -1 {
		t.Error("KeyDown hold should survive Expire")
	}
}

func TestSpaceQueuesInteract(t *testing.T) {
	c := NewController(0)
	c.KeyDown(" ")

	if !c.Intent().Interact {
		t.Error("space should queue an interaction")
	}
	if c.Intent().Interact {
		t.Error("interaction should be drained after one Intent()")
	}

	c.KeyPress(KeyInteract, time.Now())
	if !c.Intent().Interact {
		t.Error("space press should queue an interaction")
	}
}

func TestJoystickLeftHalf(t *testing.T) {
	c := NewController(0)
	c.SetViewportWidth(800)

	c.PointerDown(7, 100, 300)
	js, ok := c.Joystick()
	if !ok || js.ID != 7 || js.SX != 100 || js.SY != 300 {
		t.Fatalf("Joystick() = %+v, %v; want anchor at (100,300) owned by 7", js, ok)
	}

	// Inside the dead zone: no movement
	c.PointerMove(7, 104, 300)
	if dx, dy := c.Direction(); dx != 0 || dy != 0 {
		t.Errorf("dead-zone displacement moved the player: (%v,%v)", dx, dy)
	}

	c.PointerMove(7, 100, 260)
	if dx, dy := c.Direction(); !approx(dx, 0) || !approx(dy, -1) {
		t.Errorf("Direction() = (%v,%v), want (0,-1)", dx, dy)
	}

	// Another pointer cannot move or release the joystick
	c.PointerMove(8, 400, 400)
	c.PointerUp(8)
	if js, ok := c.Joystick(); !ok || js.X != 100 || js.Y != 260 {
		t.Errorf("foreign pointer changed the joystick: %+v, %v", js, ok)
	}

	// A second left-half press does not replace the active joystick
	c.PointerDown(9, 50, 50)
	if js, _ := c.Joystick(); js.ID != 7 {
		t.Errorf("second pointer replaced joystick owner: %d", js.ID)
	}

	c.PointerUp(7)
	if _, ok := c.Joystick(); ok {
		t.Error("joystick should be released by its owner")
	}
}

func TestPointerRightHalfInteracts(t *testing.T) {
	c := NewController(0)
	c.SetViewportWidth(800)

	c.PointerDown(1, 600, 100)
	if _, ok := c.Joystick(); ok {
		t.Error("right-half press should not start a joystick")
	}
	if !c.Intent().Interact {
		t.Error("right-half press should queue an interaction")
	}
}

func TestJoystickAndKeysCombine(t *testing.T) {
	c := NewController(0)
	c.SetViewportWidth(800)
	c.KeyDown("d")
	c.PointerDown(0, 100, 100)
	c.PointerMove(0, 100, 200)

	dx, dy := c.Direction()
	if !approx(dx, math.Sqrt2/2) || !approx(dy, math.Sqrt2/2) {
		t.Errorf("Direction() = (%v,%v), want normalised (1,1)", dx, dy)
	}
	if !approx(math.Hypot(dx, dy), 1) {
		t.Errorf("combined direction length = %v, want 1", math.Hypot(dx, dy))
	}
}

func TestNormalizeZero(t *testing.T) {
	dx, dy := Normalize(0, 0)
	if dx != 0 || dy != 0 || math.IsNaN(dx) || math.IsNaN(dy) {
		t.Errorf("Normalize(0,0) = (%v,%v), want (0,0)", dx, dy)
	}

	dx, dy = Normalize(3, 4)
	if !approx(dx, 0.6) || !approx(dy, 0.8) {
		t.Errorf("Normalize(3,4) = (%v,%v), want (0.6,0.8)", dx, dy)
	}
}
