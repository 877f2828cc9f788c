package game

// spawnFallbackDirection aims a hazard straight down when it spawns exactly
// on top of the player.
var spawnFallbackDirection = Vec2{X: 0, Y: 1}

// HazardSpawner creates a hazard every SpawnPeriod seconds, aimed at the
// player's position at spawn time.
type HazardSpawner struct {
	timer  CountdownTimer
	rng    RandomSource
	config Config
}

// NewHazardSpawner creates a spawner whose timer is already running
func NewHazardSpawner(config Config, rng RandomSource) *HazardSpawner {
	s := &HazardSpawner{
		timer:  NewCountdownTimer(config.SpawnPeriod),
		rng:    rng,
		config: config,
	}
	s.timer.Start()
	return s
}

// Tick advances the spawn timer and returns the new hazard when one is due.
// The timer rearms itself after every spawn.
func (s *HazardSpawner) Tick(dt float64, player *Player, screen Screen) *Hazard {
	s.timer.Update(dt)
	if !s.timer.IsDone() {
		return nil
	}

	hazard := s.Spawn(player, screen)
	s.timer.Reset()
	s.timer.Start()
	return hazard
}

// Spawn creates a hazard just above the top edge at a random x
func (s *HazardSpawner) Spawn(player *Player, screen Screen) *Hazard {
	position := Vec2{
		X: s.spawnX(screen.Width()),
		Y: s.config.SpawnY,
	}
	direction := player.Position.Sub(position).NormalizeOr(spawnFallbackDirection)

	return NewHazard(
		position,
		direction.Scale(s.config.HazardSpeed),
		s.config.HazardRadius,
		s.config.HazardSpeed,
		s.config.DespawnDelay,
	)
}

// TimeUntilNext returns the seconds left before the next spawn
func (s *HazardSpawner) TimeUntilNext() float64 {
	return s.timer.TimeLeft()
}

func (s *HazardSpawner) spawnX(width float64) float64 {
	lo := s.config.SpawnMargin
	hi := width - s.config.SpawnMargin
	if hi <= lo {
		return width * 0.5
	}
	return s.rng.Uniform(lo, hi)
}
