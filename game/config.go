package game

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int `toml:"screen_height"`

	// Gravity is added to the player's vertical velocity every second
	Gravity float64 `toml:"gravity"`

	// JumpImpulse is the vertical velocity set on a grounded jump (negative is up)
	JumpImpulse float64 `toml:"jump_impulse"`

	// PlayerRadius is the player's collision radius in pixels
	PlayerRadius float64 `toml:"player_radius"`

	// PlayerSpeed is the horizontal velocity target while a direction is held
	PlayerSpeed float64 `toml:"player_speed"`

	// PlayerStartY is the player's spawn height; x is always the screen center
	PlayerStartY float64 `toml:"player_start_y"`

	// HazardRadius is the collision radius shared by every hazard
	HazardRadius float64 `toml:"hazard_radius"`

	// HazardSpeed is the hazard speed in pixels per second
	HazardSpeed float64 `toml:"hazard_speed"`

	// SpawnMargin keeps spawn x away from the side edges
	SpawnMargin float64 `toml:"spawn_margin"`

	// SpawnY is the vertical spawn coordinate, just above the visible area
	SpawnY float64 `toml:"spawn_y"`

	// SpawnPeriod is the number of seconds between hazard spawns
	SpawnPeriod float64 `toml:"spawn_period"`

	// DespawnDelay is how long a sliced hazard lingers before removal
	DespawnDelay float64 `toml:"despawn_delay"`

	// TopBounceMargin is how far above the top edge a hazard may rise before bouncing
	TopBounceMargin float64 `toml:"top_bounce_margin"`

	// MaxFrameTime caps the measured frame delta in seconds
	MaxFrameTime float64 `toml:"max_frame_time"`

	// InstantRemoval removes sliced hazards immediately, with no dying state
	InstantRemoval bool `toml:"instant_removal"`

	// Seed fixes the spawn RNG; zero picks a random seed
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     800,
		ScreenHeight:    600,
		Gravity:         80.0,
		JumpImpulse:     -25.0,
		PlayerRadius:    10.0,
		PlayerSpeed:     15.0,
		PlayerStartY:    30.0,
		HazardRadius:    15.0,
		HazardSpeed:     500.0,
		SpawnMargin:     30.0,
		SpawnY:          -15.0,
		SpawnPeriod:     0.5,
		DespawnDelay:    0.3,
		TopBounceMargin: 30.0,
		MaxFrameTime:    0.1,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate reports every setting that would break the simulation
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.PlayerRadius <= 0 {
		errs = append(errs, fmt.Errorf("player_radius must be positive, got %g", c.PlayerRadius))
	}
	if c.HazardRadius <= 0 {
		errs = append(errs, fmt.Errorf("hazard_radius must be positive, got %g", c.HazardRadius))
	}
	if c.HazardSpeed < 0 {
		errs = append(errs, fmt.Errorf("hazard_speed must not be negative, got %g", c.HazardSpeed))
	}
	if c.SpawnMargin < 0 {
		errs = append(errs, fmt.Errorf("spawn_margin must not be negative, got %g", c.SpawnMargin))
	}
	if c.SpawnPeriod <= 0 {
		errs = append(errs, fmt.Errorf("spawn_period must be positive, got %g", c.SpawnPeriod))
	}
	if c.DespawnDelay < 0 {
		errs = append(errs, fmt.Errorf("despawn_delay must not be negative, got %g", c.DespawnDelay))
	}
	if c.MaxFrameTime <= 0 {
		errs = append(errs, fmt.Errorf("max_frame_time must be positive, got %g", c.MaxFrameTime))
	}
	return errors.Join(errs...)
}
