package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/relicfield/internal/sim"
)

// DefaultToastDuration is how long a notification stays visible.
const DefaultToastDuration = 1200 * time.Millisecond

const keyHints = "WASD/arrows move  space interact  q quit"

// Toast is a single transient notification. Showing a new one replaces the
// previous text and restarts the timer.
type Toast struct {
	text     string
	until    time.Time
	duration time.Duration
}

// NewToast creates an empty toast with the given visibility window.
func NewToast(duration time.Duration) *Toast {
	return &Toast{duration: duration}
}

// Show displays text starting at now.
func (t *Toast) Show(text string, now time.Time) {
	t.text = text
	t.until = now.Add(t.duration)
}

// Text returns the visible text, or "" once the toast has expired.
func (t *Toast) Text(now time.Time) string {
	if t.text == "" || !now.Before(t.until) {
		return ""
	}
	return t.text
}

// HUD displays the biome name, law, counters and coordinates, plus the toast.
type HUD struct {
	summary sim.Summary
	toast   *Toast
}

// NewHUD creates a HUD whose toast lasts toastDuration.
func NewHUD(toastDuration time.Duration) *HUD {
	return &HUD{toast: NewToast(toastDuration)}
}

// Update replaces the displayed summary.
func (h *HUD) Update(summary sim.Summary) {
	h.summary = summary
}

// Handle turns a session event into a toast.
func (h *HUD) Handle(ev sim.Event, now time.Time) {
	if msg := ev.Message(); msg != "" {
		h.toast.Show(msg, now)
	}
}

// StatusLine returns the bottom status text.
func (h *HUD) StatusLine() string {
	return fmt.Sprintf("Relics %d  Creatures %d  %s", h.summary.Relics, h.summary.Discovered, h.summary.CoordText())
}

// TitleLine returns the top line: the biome and its law.
func (h *HUD) TitleLine() string {
	if h.summary.BiomeName == "" {
		return ""
	}
	return h.summary.BiomeName + " · " + h.summary.Law
}

// Draw writes the HUD over whatever the renderer drew.
func (h *HUD) Draw(s Surface, now time.Time) {
	w, height := s.Size()
	if w <= 0 || height <= 0 {
		return
	}

	bar := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	fillRow(s, 0, w, bar)
	drawText(s, 1, 0, w-1, h.TitleLine(), bar.Bold(true))

	if height > 1 {
		fillRow(s, height-1, w, bar)
		status := h.StatusLine()
		drawText(s, 1, height-1, w-1, status, bar)

		// Hints go right-aligned when there is room
		hintX := w - 1 - runewidth.StringWidth(keyHints)
		if hintX > runewidth.StringWidth(status)+3 {
			drawText(s, hintX, height-1, w-1, keyHints, bar.Foreground(tcell.ColorGray))
		}
	}

	if msg := h.toast.Text(now); msg != "" && height > 3 {
		text := " " + msg + " "
		x := max(0, (w-runewidth.StringWidth(text))/2)
		drawText(s, x, height-3, w, text, tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite))
	}
}

func fillRow(s Surface, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', style)
	}
}

// drawText writes msg from x, clipped before maxX. Wide runes take two cells.
func drawText(s Surface, x, y, maxX int, msg string, style tcell.Style) int {
	for _, ch := range msg {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+cw > maxX {
			break
		}
		s.SetContent(x, y, ch, style)
		x += cw
	}
	return x
}
