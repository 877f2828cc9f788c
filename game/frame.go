package game

import "time"

// FrameOrchestrator drives one session iteration per rendered frame. The
// host loop calls Tick once per frame and presents the canvas afterwards.
type FrameOrchestrator struct {
	session *Session
	clock   Clock
	input   InputSource
	screen  Screen
	canvas  Canvas
}

// NewFrameOrchestrator wires a session to its collaborators
func NewFrameOrchestrator(session *Session, clock Clock, input InputSource, screen Screen, canvas Canvas) *FrameOrchestrator {
	return &FrameOrchestrator{
		session: session,
		clock:   clock,
		input:   input,
		screen:  screen,
		canvas:  canvas,
	}
}

// Tick measures the frame time, clears the canvas and steps the session.
// A non-nil error is the fatal collision and ends the loop.
func (f *FrameOrchestrator) Tick() error {
	dt := f.clock.Elapsed()
	f.canvas.Clear()
	return f.session.Step(dt, ReadControls(f.input), f.screen, f.canvas)
}

// Session returns the driven session
func (f *FrameOrchestrator) Session() *Session {
	return f.session
}

// FrameClock measures wall time between frames, capped at a maximum delta
type FrameClock struct {
	now      func() time.Time
	last     time.Time
	maxDelta float64
}

// NewFrameClock creates a clock whose first frame starts now
func NewFrameClock(maxDelta float64) *FrameClock {
	return newFrameClock(time.Now, maxDelta)
}

func newFrameClock(now func() time.Time, maxDelta float64) *FrameClock {
	return &FrameClock{
		now:      now,
		last:     now(),
		maxDelta: maxDelta,
	}
}

// Elapsed returns the seconds since the previous call
func (c *FrameClock) Elapsed() float64 {
	now := c.now()
	deltaTime := now.Sub(c.last).Seconds()
	c.last = now

	// Clamp delta time to prevent large jumps
	if deltaTime > c.maxDelta {
		deltaTime = c.maxDelta
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	return deltaTime
}

// FixedClock reports the same delta every frame
type FixedClock float64

// Elapsed returns the fixed delta
func (c FixedClock) Elapsed() float64 {
	return float64(c)
}
