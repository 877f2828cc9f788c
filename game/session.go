package game

import (
	"log/slog"
	"time"
)

// SessionStats counts what happened during a run
type SessionStats struct {
	Frames    uint64
	Elapsed   float64
	Spawned   int
	Sliced    int
	Despawned int
}

// LogValue renders the stats as a structured log group
func (s SessionStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frames", s.Frames),
		slog.Duration("elapsed", time.Duration(s.Elapsed*float64(time.Second))),
		slog.Int("spawned", s.Spawned),
		slog.Int("sliced", s.Sliced),
		slog.Int("despawned", s.Despawned),
	)
}

// Session owns everything one run mutates: the player, the live hazards
// and the spawner. Nothing outside a Session is touched by Step.
type Session struct {
	config   Config
	player   *Player
	hazards  []*Hazard
	spawner  *HazardSpawner
	resolver *CollisionResolver
	logger   *slog.Logger
	stats    SessionStats
}

// SessionOption customizes a new Session
type SessionOption func(*Session)

// WithLogger routes session events to logger
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession places the player for the given screen and starts the spawn timer
func NewSession(config Config, rng RandomSource, screen Screen, opts ...SessionOption) *Session {
	s := &Session{
		config:   config,
		player:   NewPlayer(config, screen.Width()),
		hazards:  make([]*Hazard, 0, 64),
		spawner:  NewHazardSpawner(config, rng),
		resolver: NewCollisionResolver(config),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step runs one frame: player, spawner, then a single pass over the hazards
// in insertion order. It returns a *FatalCollisionError when a hazard
// touches the player; the session must not be stepped after that.
func (s *Session) Step(dt float64, controls Controls, screen Screen, r Renderer) error {
	s.stats.Frames++
	s.stats.Elapsed += dt

	s.player.Update(dt, controls, screen.Height(), r)

	if hazard := s.spawner.Tick(dt, s.player, screen); hazard != nil {
		s.hazards = append(s.hazards, hazard)
		s.stats.Spawned++
		s.logger.Debug("hazard spawned",
			"id", hazard.ID,
			"x", hazard.Position.X,
			"vx", hazard.Velocity.X,
			"vy", hazard.Velocity.Y)
	}

	kept := s.hazards[:0]
	for i, hazard := range s.hazards {
		wasDying := hazard.Dying()
		hazard.Advance(dt, screen, s.config.TopBounceMargin)

		outcome := s.resolver.Resolve(hazard, s.player, r)
		if !wasDying && (hazard.Dying() || (outcome == OutcomeRemoved && s.resolver.InstantRemoval)) {
			s.stats.Sliced++
			s.logger.Debug("hazard sliced", "id", hazard.ID, "frame", s.stats.Frames)
		}

		switch outcome {
		case OutcomeRemoved:
			s.stats.Despawned++
			s.logger.Debug("hazard removed", "id", hazard.ID, "frame", s.stats.Frames)
		case OutcomeFatal:
			// Keep the unvisited tail so the collection stays consistent.
			kept = append(kept, s.hazards[i:]...)
			s.hazards = kept
			return &FatalCollisionError{
				HazardID:       hazard.ID,
				HazardState:    hazard.State,
				HazardPosition: hazard.Position,
				PlayerPosition: s.player.Position,
				Frame:          s.stats.Frames,
			}
		default:
			kept = append(kept, hazard)
		}
	}
	clear(s.hazards[len(kept):])
	s.hazards = kept

	return nil
}

// Player returns the session's player
func (s *Session) Player() *Player {
	return s.player
}

// Hazards returns the live hazards in iteration order
func (s *Session) Hazards() []*Hazard {
	return s.hazards
}

// Spawner returns the session's hazard spawner
func (s *Session) Spawner() *HazardSpawner {
	return s.spawner
}

// Stats returns a snapshot of the run counters
func (s *Session) Stats() SessionStats {
	return s.stats
}

// Config returns the configuration the session was created with
func (s *Session) Config() Config {
	return s.config
}
