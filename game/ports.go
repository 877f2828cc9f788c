package game

import "image/color"

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . Renderer,RandomSource

// Renderer accepts fire-and-forget draw requests for the current frame
type Renderer interface {
	DrawCircle(x, y, radius float64, clr color.Color)
}

// Canvas is a Renderer whose frame can be wiped before a new pass
type Canvas interface {
	Renderer
	Clear()
}

// Key identifies a logical control
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
)

// InputSource answers level-triggered (held) and edge-triggered (pressed
// this frame) key queries.
type InputSource interface {
	IsHeld(key Key) bool
	IsPressed(key Key) bool
}

// Clock reports seconds elapsed since the previous frame
type Clock interface {
	Elapsed() float64
}

// Screen reports the live playfield size in pixels
type Screen interface {
	Width() float64
	Height() float64
}

// RandomSource draws uniform floats in [min, max)
type RandomSource interface {
	Uniform(min, max float64) float64
}

// Controls is the per-frame input snapshot handed to the player
type Controls struct {
	HeldLeft  bool
	HeldRight bool
	Jump      bool
}

// ReadControls samples an InputSource once for the current frame
func ReadControls(in InputSource) Controls {
	if in == nil {
		return Controls{}
	}
	return Controls{
		HeldLeft:  in.IsHeld(KeyLeft),
		HeldRight: in.IsHeld(KeyRight),
		Jump:      in.IsPressed(KeyJump),
	}
}

// Direction resolves horizontal intent; opposing keys cancel
func (c Controls) Direction() float64 {
	var direction float64
	if c.HeldRight {
		direction += 1
	}
	if c.HeldLeft {
		direction -= 1
	}
	return direction
}

// StaticScreen is a fixed-size Screen
type StaticScreen struct {
	W, H float64
}

// Width returns the fixed width
func (s StaticScreen) Width() float64 { return s.W }

// Height returns the fixed height
func (s StaticScreen) Height() float64 { return s.H }
