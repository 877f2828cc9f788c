package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// circleCommand is one recorded draw request
type circleCommand struct {
	x, y, radius float64
	clr          color.Color
}

// DrawList is a Canvas that records circles during Update so Draw can
// replay them onto the ebiten screen.
type DrawList struct {
	commands []circleCommand
}

// NewDrawList creates an empty draw list
func NewDrawList() *DrawList {
	return &DrawList{
		commands: make([]circleCommand, 0, 128),
	}
}

// DrawCircle records a filled circle
func (d *DrawList) DrawCircle(x, y, radius float64, clr color.Color) {
	d.commands = append(d.commands, circleCommand{x: x, y: y, radius: radius, clr: clr})
}

// Clear drops every recorded circle
func (d *DrawList) Clear() {
	d.commands = d.commands[:0]
}

// Len returns the number of recorded circles
func (d *DrawList) Len() int {
	return len(d.commands)
}

// Render fills the background and replays the recorded circles in order
func (d *DrawList) Render(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for _, c := range d.commands {
		radius := c.radius
		if radius < 1 {
			radius = 1
		}
		vector.DrawFilledCircle(screen, float32(c.x), float32(c.y), float32(radius), c.clr, true)
	}
}

// NopCanvas discards all draw requests
type NopCanvas struct{}

// DrawCircle does nothing
func (NopCanvas) DrawCircle(x, y, radius float64, clr color.Color) {}

// Clear does nothing
func (NopCanvas) Clear() {}
