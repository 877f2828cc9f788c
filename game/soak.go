package game

import (
	"fmt"
	"log/slog"
)

// SoakOptions configures a headless run
type SoakOptions struct {
	Frames     uint64  // frame limit; the run stops early on a fatal collision
	FrameTime  float64 // fixed dt per frame
	JumpChance float64 // autopilot jump probability per frame
	Logger     *slog.Logger
}

// Soak plays a session without a window, driven by the autopilot at a fixed
// frame time. It returns the stats and the fatal collision error, if any.
func Soak(config Config, opts SoakOptions) (SessionStats, error) {
	if err := config.Validate(); err != nil {
		return SessionStats{}, fmt.Errorf("invalid config: %w", err)
	}
	if opts.FrameTime <= 0 {
		return SessionStats{}, fmt.Errorf("frame time must be positive, got %g", opts.FrameTime)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	screen := StaticScreen{W: float64(config.ScreenWidth), H: float64(config.ScreenHeight)}
	session := NewSession(config, NewRand(config.Seed), screen, WithLogger(logger))
	pilot := NewAutopilot(config.Seed+1, opts.JumpChance)
	orchestrator := NewFrameOrchestrator(session, FixedClock(opts.FrameTime), pilot, screen, NopCanvas{})

	for session.Stats().Frames < opts.Frames {
		pilot.Advance()
		if err := orchestrator.Tick(); err != nil {
			return session.Stats(), err
		}
	}
	return session.Stats(), nil
}
