package game

// Autopilot is an InputSource that mashes keys at random. Each call to
// Advance picks the key state for the next frame; a direction is held for
// several frames at a time so the player actually travels.
type Autopilot struct {
	rng       *Rand
	held      Key
	holding   bool
	holdLeft  int
	jumpNow   bool
	jumpEvery float64
}

// NewAutopilot creates a seeded autopilot that jumps with the given
// per-frame probability.
func NewAutopilot(seed uint64, jumpChance float64) *Autopilot {
	return &Autopilot{
		rng:       NewRand(seed),
		jumpEvery: clamp01(jumpChance),
	}
}

// Advance rolls the key state for the next frame
func (a *Autopilot) Advance() {
	if a.holdLeft <= 0 {
		a.holdLeft = int(a.rng.Uniform(5, 30))
		a.holding = a.rng.Uniform(0, 1) < 0.8
		a.held = KeyLeft
		if a.rng.Bool() {
			a.held = KeyRight
		}
	}
	a.holdLeft--
	a.jumpNow = a.rng.Uniform(0, 1) < a.jumpEvery
}

// IsHeld reports the direction currently held
func (a *Autopilot) IsHeld(key Key) bool {
	return a.holding && key == a.held
}

// IsPressed reports a jump on frames where one was rolled
func (a *Autopilot) IsPressed(key Key) bool {
	return key == KeyJump && a.jumpNow
}
