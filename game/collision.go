package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/google/uuid"
)

// ErrFatalCollision ends the session: a hazard touched the player
var ErrFatalCollision = errors.New("player hit by hazard")

// FatalCollisionError describes the collision that ended the session
type FatalCollisionError struct {
	HazardID       uuid.UUID
	HazardState    HazardState
	HazardPosition Vec2
	PlayerPosition Vec2
	Frame          uint64
}

func (e *FatalCollisionError) Error() string {
	return fmt.Sprintf("%v: hazard %s (%s) at (%.1f, %.1f), player at (%.1f, %.1f), frame %d",
		ErrFatalCollision, e.HazardID, e.HazardState,
		e.HazardPosition.X, e.HazardPosition.Y,
		e.PlayerPosition.X, e.PlayerPosition.Y, e.Frame)
}

func (e *FatalCollisionError) Unwrap() error {
	return ErrFatalCollision
}

// Outcome is the verdict for one hazard in one frame
type Outcome int

const (
	// OutcomeRetained keeps the hazard for the next frame
	OutcomeRetained Outcome = iota
	// OutcomeRemoved drops the hazard from the collection
	OutcomeRemoved
	// OutcomeFatal ends the session
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRetained:
		return "retained"
	case OutcomeRemoved:
		return "removed"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// CollisionResolver decides, per hazard and frame, between slicing,
// removal and the fatal hit.
type CollisionResolver struct {
	// InstantRemoval drops sliced hazards at once instead of letting them
	// wait out their despawn timer.
	InstantRemoval bool
}

// NewCollisionResolver creates a resolver for the given config
func NewCollisionResolver(config Config) *CollisionResolver {
	return &CollisionResolver{InstantRemoval: config.InstantRemoval}
}

// Resolve runs the slice check, then removal, then the fatal overlap check,
// in that order. A hazard removed this frame can never be fatal. Surviving
// hazards are drawn.
func (c *CollisionResolver) Resolve(h *Hazard, player *Player, r Renderer) Outcome {
	if IsSliced(h, player) {
		if c.InstantRemoval {
			return OutcomeRemoved
		}
		h.Slice()
	}

	if h.Expired() {
		return OutcomeRemoved
	}

	if Overlaps(h, player) {
		return OutcomeFatal
	}

	if r != nil {
		r.DrawCircle(h.Position.X, h.Position.Y, h.Radius, c.hazardColor(h))
	}
	return OutcomeRetained
}

func (c *CollisionResolver) hazardColor(h *Hazard) color.Color {
	if h.Dying() && !c.InstantRemoval {
		return colorHazardDying
	}
	return colorHazardAlive
}

// IsSliced reports whether the player, positioned above the hazard, swept
// across its x coordinate. The sweep spans position ± velocity on the x axis.
func IsSliced(h *Hazard, player *Player) bool {
	if player.Position.Y >= h.Position.Y {
		return false
	}
	back := player.Position.X - player.Velocity.X
	front := player.Position.X + player.Velocity.X
	x := h.Position.X
	return (back <= x && x <= front) || (front <= x && x <= back)
}

// Overlaps reports whether the hazard and player circles intersect
func Overlaps(h *Hazard, player *Player) bool {
	reach := h.Radius + player.Radius
	return h.Position.DistanceSq(player.Position) < reach*reach
}
