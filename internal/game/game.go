package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/relicfield/internal/gamedata"
	"github.com/samdwyer/relicfield/internal/input"
	"github.com/samdwyer/relicfield/internal/logger"
	"github.com/samdwyer/relicfield/internal/sim"
	"github.com/samdwyer/relicfield/internal/telemetry"
	"github.com/samdwyer/relicfield/internal/ui"
	"github.com/samdwyer/relicfield/internal/world"
)

// censusRadius is the half-size, in tiles, of the area sampled around the
// spawn point for the start-up density summary.
const censusRadius = 64

// pointerID is the id the mouse uses as a pointer.
const pointerID = 0

// Game hosts one session in the terminal.
type Game struct {
	cfg        Config
	clock      sim.Clock
	screen     *ui.Screen
	renderer   *ui.Renderer
	hud        *ui.HUD
	controller *input.Controller
	session    *sim.Session
	log        *logrus.Entry
	state      State
	mouseDown  bool
}

// New creates a new game on the real terminal.
func New(cfg Config) (*Game, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(cfg, s, sim.SystemClock{})
}

// NewWithScreen creates a game on an existing tcell screen, such as a
// simulation screen.
func NewWithScreen(cfg Config, s tcell.Screen, clock sim.Clock) (*Game, error) {
	screen, err := ui.NewScreenFrom(s)
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	cfg = cfg.Resolved()
	if err := cfg.Validate(); err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		cfg:        cfg,
		clock:      clock,
		screen:     screen,
		renderer:   ui.NewRenderer(screen, cfg.CellMetrics()),
		hud:        ui.NewHUD(cfg.ToastDuration),
		controller: input.NewController(cfg.KeyHold),
		log: logger.Log.WithFields(logrus.Fields{
			"session_id": cfg.SessionID,
			"seed":       cfg.Seed,
		}),
		state: StatePlaying,
	}, nil
}

// init builds the world and the session.
func (g *Game) init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("load catalog: %w", err)
	}

	gen := world.NewGenerator(g.cfg.Seed, catalog)
	sessionCfg := g.cfg.SessionConfig()
	g.session = sim.NewSession(gen, g.clock, sessionCfg)
	g.updateViewport()

	census := gen.Sample(ctx, world.RectAround(sessionCfg.Start, censusRadius, censusRadius))

	span.SetAttributes(
		attribute.String("session.id", g.cfg.SessionID),
		attribute.Int64("world.seed", g.cfg.Seed),
		attribute.Int("player.start_x", sessionCfg.Start.X),
		attribute.Int("player.start_y", sessionCfg.Start.Y),
		attribute.Int("census.relics", census.Relics),
		attribute.Int("census.creatures", census.Creatures),
	)

	g.log.WithFields(logrus.Fields{
		"tiles":         census.Tiles,
		"relics":        census.Relics,
		"creatures":     census.Creatures,
		"relic_rate":    census.RelicRate(),
		"creature_rate": census.CreatureRate(),
		"biomes":        census.Biomes,
	}).Info("world census around spawn")

	return nil
}

// Run executes the main game loop until a quit key is pressed or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.init(ctx); err != nil {
		return err
	}
	g.log.WithField("tick_rate", g.cfg.TickRate).Info("session started")

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	g.step(ctx, g.clock.Now())

	for {
		select {
		case <-ctx.Done():
			g.log.Info("session cancelled")
			return nil

		case ev := <-events:
			g.handleEvent(ev, g.clock.Now())
			if g.state == StateQuitting {
				g.logSummary()
				return nil
			}

		case <-ticker.C:
			g.step(ctx, g.clock.Now())
		}
	}
}

// step advances the session one frame and redraws.
func (g *Game) step(ctx context.Context, now time.Time) {
	g.controller.Expire(now)

	events := g.session.Step(ctx, g.controller.Intent())
	for _, ev := range events {
		g.hud.Handle(ev, now)
		g.logEvent(ev)
	}
	g.hud.Update(g.session.Summary())

	g.draw(now)
}

func (g *Game) draw(now time.Time) {
	frame := ui.Frame{View: g.session}
	if js, ok := g.controller.Joystick(); ok {
		frame.Joystick = &js
	}
	g.renderer.Render(frame)
	g.hud.Draw(g.screen, now)
	g.screen.Show()
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev, now)
	case *tcell.EventMouse:
		g.handleMouseEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
		g.updateViewport()
	}
}

// handleKeyEvent processes keyboard input. Terminals report presses only, so
// each press holds its key for the configured hold window.
func (g *Game) handleKeyEvent(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.state = StateQuitting

	case tcell.KeyUp:
		g.controller.KeyPress(input.KeyUp, now)
	case tcell.KeyDown:
		g.controller.KeyPress(input.KeyDown, now)
	case tcell.KeyLeft:
		g.controller.KeyPress(input.KeyLeft, now)
	case tcell.KeyRight:
		g.controller.KeyPress(input.KeyRight, now)

	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			g.state = StateQuitting
		default:
			g.controller.KeyPress(string(r), now)
		}
	}
}

// handleMouseEvent maps the primary button onto pointer 0. Motion with the
// button held is a drag; a report without it after a press is the release.
func (g *Game) handleMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	px, py := g.cfg.CellMetrics().ToPixels(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !g.mouseDown:
		g.mouseDown = true
		g.controller.PointerDown(pointerID, px, py)
	case pressed:
		g.controller.PointerMove(pointerID, px, py)
	case g.mouseDown:
		g.mouseDown = false
		g.controller.PointerUp(pointerID)
	}
}

func (g *Game) updateViewport() {
	w, _ := g.screen.Size()
	g.controller.SetViewportWidth(float64(w) * g.cfg.CellWidth)
}

func (g *Game) logEvent(ev sim.Event) {
	entry := g.log.WithFields(logrus.Fields{
		"outcome": ev.Kind.String(),
		"tile":    ev.Tile.String(),
	})
	switch ev.Kind {
	case sim.EventBiomeChanged:
		entry.WithField("biome", ev.Biome.ID).Info("entered biome")
	case sim.EventDiscovered:
		entry.WithFields(logrus.Fields{"creature": ev.Creature.Name, "new": ev.New}).Info("creature encountered")
	case sim.EventCollected:
		entry.WithField("relic", ev.Relic.Name).Info("relic collected")
	default:
		entry.Debug("nothing here")
	}
}

func (g *Game) logSummary() {
	summary := g.session.Summary()
	g.log.WithFields(logrus.Fields{
		"relics":     summary.Relics,
		"discovered": summary.Discovered,
		"creatures":  g.session.Journal().Discovered(),
		"tile":       summary.CoordText(),
		"frames":     summary.Frame,
	}).Info("session ended")
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
