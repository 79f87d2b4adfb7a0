package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/relicfield/internal/sim"
	"github.com/samdwyer/relicfield/internal/ui"
)

// ErrInvalidConfig is returned by Validate and ConfigFromEnv.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed      = "RELICFIELD_SEED"
	EnvBaseSpeed = "RELICFIELD_BASE_SPEED"
	EnvTickRate  = "RELICFIELD_TICK_RATE"
	EnvKeyHold   = "RELICFIELD_KEY_HOLD"
)

// Config holds game configuration options.
type Config struct {
	// Seed for world generation. The same seed always yields the same world.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SessionID tags logs and traces. Resolved generates one when empty.
	SessionID string

	BaseSpeed float64 // World pixels per frame before biome scaling
	TickRate  int     // Frames per second

	// Pixel size of a terminal cell, used to map mouse positions into
	// pointer space.
	CellWidth  float64
	CellHeight float64

	// How long a key press counts as held. It has to outlast the terminal's
	// auto-repeat delay or a held key stutters after the first press.
	KeyHold          time.Duration
	InteractCooldown time.Duration
	ToastDuration    time.Duration
}

// DefaultKeyHold covers the common 250-500ms auto-repeat delays. Terminals
// with a longer delay (xset's default is 660ms) need RELICFIELD_KEY_HOLD.
const DefaultKeyHold = 500 * time.Millisecond

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:             1337,
		BaseSpeed:        sim.DefaultBaseSpeed,
		TickRate:         60,
		CellWidth:        8,
		CellHeight:       16,
		KeyHold:          DefaultKeyHold,
		InteractCooldown: sim.DefaultCooldown,
		ToastDuration:    ui.DefaultToastDuration,
	}
}

// ConfigFromEnv returns DefaultConfig overlaid with any RELICFIELD_*
// environment variables that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvBaseSpeed); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvBaseSpeed, v, err)
		}
		cfg.BaseSpeed = speed
	}
	if v := os.Getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvTickRate, v, err)
		}
		cfg.TickRate = rate
	}
	if v := os.Getenv(EnvKeyHold); v != "" {
		hold, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvKeyHold, v, err)
		}
		cfg.KeyHold = hold
	}

	return cfg, cfg.Validate()
}

// Validate checks that every tunable is usable.
func (c Config) Validate() error {
	switch {
	case c.BaseSpeed <= 0:
		return fmt.Errorf("%w: base speed must be positive, got %v", ErrInvalidConfig, c.BaseSpeed)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %vx%v", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	case c.KeyHold <= 0:
		return fmt.Errorf("%w: key hold must be positive, got %v", ErrInvalidConfig, c.KeyHold)
	case c.InteractCooldown < 0:
		return fmt.Errorf("%w: interaction cooldown must not be negative, got %v", ErrInvalidConfig, c.InteractCooldown)
	case c.ToastDuration <= 0:
		return fmt.Errorf("%w: toast duration must be positive, got %v", ErrInvalidConfig, c.ToastDuration)
	}
	return nil
}

// Resolved returns a copy with a random seed in place of 0 and a fresh
// session id if none is set.
func (c Config) Resolved() Config {
	for c.Seed == 0 {
		c.Seed = rand.Int64()
	}
	if c.SessionID == "" {
		c.SessionID = uuid.NewString()
	}
	return c
}

// TickInterval returns the duration of one frame.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// SessionConfig returns the simulation tunables.
func (c Config) SessionConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.BaseSpeed = c.BaseSpeed
	cfg.Cooldown = c.InteractCooldown
	return cfg
}

// CellMetrics returns the cell-to-pixel mapping.
func (c Config) CellMetrics() ui.CellMetrics {
	return ui.CellMetrics{Width: c.CellWidth, Height: c.CellHeight}
}
