package game

import (
	"testing"

	"go.uber.org/mock/gomock"
	"hazardrun/game/mocks"
)

const testFloor = 600.0

func newTestPlayer() *Player {
	return NewPlayer(DefaultConfig(), 800)
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	if p.Position != (Vec2{X: 400, Y: 30}) {
		t.Errorf("Position = %+v, want (400, 30)", p.Position)
	}
	if p.Velocity != (Vec2{}) {
		t.Errorf("Velocity = %+v, want zero", p.Velocity)
	}
	if p.Radius != 10 || p.Speed != 15 {
		t.Errorf("Radius, Speed = %v, %v, want 10, 15", p.Radius, p.Speed)
	}
}

func TestPlayer_DrawsBeforeMoving(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().DrawCircle(400.0, 30.0, 10.0, colorPlayer)

	p := newTestPlayer()
	p.Update(0.1, Controls{}, testFloor, renderer)

	// Gravity 80/s over 0.1s, then added as a per-frame displacement.
	if !approxEqual(p.Velocity.Y, 8) {
		t.Errorf("Velocity.Y = %v, want 8", p.Velocity.Y)
	}
	if !approxEqual(p.Position.Y, 38) {
		t.Errorf("Position.Y = %v, want 38", p.Position.Y)
	}
}

func TestPlayer_LandsOnFloor(t *testing.T) {
	p := newTestPlayer()
	p.Position = Vec2{X: 400, Y: 595}
	p.Velocity = Vec2{X: 0, Y: 30}

	p.Update(0.1, Controls{}, testFloor, nil)

	if p.Position.Y != 590 {
		t.Errorf("Position.Y = %v, want 590", p.Position.Y)
	}
	if p.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, want 0", p.Velocity.Y)
	}
	if !p.Grounded(testFloor) {
		t.Error("player should be grounded")
	}
}

func TestPlayer_Jump(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		jump     bool
		wantVelY float64
		wantPosY float64
	}{
		{"grounded jump", 590, true, -25, 565},
		{"grounded no jump", 590, false, 0, 590},
		{"airborne jump ignored", 300, true, 8, 308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Position = Vec2{X: 400, Y: tt.startY}

			p.Update(0.1, Controls{Jump: tt.jump}, testFloor, nil)

			if !approxEqual(p.Velocity.Y, tt.wantVelY) {
				t.Errorf("Velocity.Y = %v, want %v", p.Velocity.Y, tt.wantVelY)
			}
			if !approxEqual(p.Position.Y, tt.wantPosY) {
				t.Errorf("Position.Y = %v, want %v", p.Position.Y, tt.wantPosY)
			}
		})
	}
}

func TestControls_Direction(t *testing.T) {
	tests := []struct {
		name     string
		controls Controls
		want     float64
	}{
		{"none", Controls{}, 0},
		{"right", Controls{HeldRight: true}, 1},
		{"left", Controls{HeldLeft: true}, -1},
		{"both cancel", Controls{HeldLeft: true, HeldRight: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.controls.Direction(); got != tt.want {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayer_HorizontalSmoothing(t *testing.T) {
	tests := []struct {
		name     string
		startVX  float64
		controls Controls
		wantVX   float64
	}{
		// blend 10*dt toward +speed
		{"accelerate right", 0, Controls{HeldRight: true}, 1.5},
		{"accelerate left", 0, Controls{HeldLeft: true}, -1.5},
		// blend 20*dt toward zero
		{"release", 10, Controls{}, 8},
		{"both held decelerates", 10, Controls{HeldLeft: true, HeldRight: true}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Position = Vec2{X: 400, Y: 590}
			p.Velocity.X = tt.startVX

			p.Update(0.01, tt.controls, testFloor, nil)

			if !approxEqual(p.Velocity.X, tt.wantVX) {
				t.Errorf("Velocity.X = %v, want %v", p.Velocity.X, tt.wantVX)
			}
			// Position moved by the velocity from before smoothing.
			if !approxEqual(p.Position.X, 400+tt.startVX) {
				t.Errorf("Position.X = %v, want %v", p.Position.X, 400+tt.startVX)
			}
		})
	}
}

func TestPlayer_BlendFactorIsClamped(t *testing.T) {
	p := newTestPlayer()
	p.Position = Vec2{X: 400, Y: 590}
	p.Velocity.X = 10

	p.Update(0.5, Controls{}, testFloor, nil)

	if p.Velocity.X != 0 {
		t.Errorf("Velocity.X = %v, want 0 without overshoot", p.Velocity.X)
	}
}
