package game

import "github.com/google/uuid"

// HazardState is the lifecycle stage of a hazard
type HazardState int

const (
	// HazardAlive hazards are untouched and still deadly
	HazardAlive HazardState = iota
	// HazardDying hazards were sliced and are waiting out their despawn timer
	HazardDying
)

func (s HazardState) String() string {
	switch s {
	case HazardAlive:
		return "alive"
	case HazardDying:
		return "dying"
	default:
		return "unknown"
	}
}

// Hazard is an incoming circle the player must dodge or slice
type Hazard struct {
	ID uuid.UUID

	Position Vec2

	// Velocity in pixels per second
	Velocity Vec2

	Radius float64
	Speed  float64

	State   HazardState
	Despawn CountdownTimer
}

// NewHazard creates an alive hazard with a stopped despawn timer
func NewHazard(position, velocity Vec2, radius, speed, despawnDelay float64) *Hazard {
	return &Hazard{
		ID:       uuid.New(),
		Position: position,
		Velocity: velocity,
		Radius:   radius,
		Speed:    speed,
		State:    HazardAlive,
		Despawn:  NewCountdownTimer(despawnDelay),
	}
}

// Advance ticks the despawn timer, integrates motion and bounces the hazard
// off the playfield edges. The top edge allows topMargin of overshoot so
// freshly spawned hazards are not reflected immediately.
func (h *Hazard) Advance(dt float64, screen Screen, topMargin float64) {
	h.Despawn.Update(dt)

	h.Position = h.Position.Add(h.Velocity.Scale(dt))

	width := screen.Width()
	height := screen.Height()

	if h.Position.X+h.Radius > width || h.Position.X-h.Radius < 0 {
		h.Velocity.X = -h.Velocity.X
	}
	if h.Position.Y+h.Radius > height || h.Position.Y-h.Radius < -topMargin {
		h.Velocity.Y = -h.Velocity.Y
	}
}

// Slice marks the hazard as killed. Repeated slices leave the running
// countdown untouched.
func (h *Hazard) Slice() {
	h.Despawn.Start()
	h.State = HazardDying
}

// Dying reports whether the hazard has been sliced
func (h *Hazard) Dying() bool {
	return h.State == HazardDying
}

// Expired reports whether a sliced hazard has finished its despawn countdown
func (h *Hazard) Expired() bool {
	return h.State == HazardDying && h.Despawn.IsDone()
}
