package game

// Blend factors per second for horizontal velocity smoothing
const (
	steerBlendRate   = 10.0 // direction held
	releaseBlendRate = 20.0 // no direction
)

// Player is the avatar the user steers
type Player struct {
	Position Vec2

	// Velocity is a per-frame displacement, not a per-second rate. The
	// slice sweep reads it directly as the player's recent travel.
	Velocity Vec2

	Radius float64
	Speed  float64

	gravity     float64
	jumpImpulse float64
}

// NewPlayer creates a player centered horizontally at the configured height
func NewPlayer(config Config, screenWidth float64) *Player {
	return &Player{
		Position:    Vec2{X: screenWidth * 0.5, Y: config.PlayerStartY},
		Radius:      config.PlayerRadius,
		Speed:       config.PlayerSpeed,
		gravity:     config.Gravity,
		jumpImpulse: config.JumpImpulse,
	}
}

// Update applies gravity, floor contact, jumping and horizontal steering.
// The player is drawn at its position from the previous frame, before this
// frame's movement is integrated.
func (p *Player) Update(dt float64, controls Controls, floorY float64, r Renderer) {
	p.Velocity.Y += p.gravity * dt

	if p.Position.Y >= floorY-p.Radius {
		p.Position.Y = floorY - p.Radius
		p.Velocity.Y = 0
		if controls.Jump {
			p.Velocity.Y = p.jumpImpulse
		}
	}

	direction := controls.Direction()

	if r != nil {
		r.DrawCircle(p.Position.X, p.Position.Y, p.Radius, colorPlayer)
	}

	p.Position = p.Position.Add(p.Velocity)

	rate := releaseBlendRate
	if direction != 0 {
		rate = steerBlendRate
	}
	p.Velocity.X = lerp(p.Velocity.X, direction*p.Speed, clamp01(rate*dt))
}

// Grounded reports whether the player rests on the floor
func (p *Player) Grounded(floorY float64) bool {
	return p.Position.Y >= floorY-p.Radius && p.Velocity.Y == 0
}
