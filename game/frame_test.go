package game

import (
	"testing"
	"time"
)

func TestFrameOrchestrator_Tick(t *testing.T) {
	session := NewSession(DefaultConfig(), fixedRandom(t, 400), testScreen)
	canvas := NewDrawList()
	canvas.DrawCircle(1, 1, 1, colorHazardAlive) // left over from the previous frame
	input := fakeInput{held: map[Key]bool{KeyRight: true}}

	orchestrator := NewFrameOrchestrator(session, FixedClock(0.1), input, testScreen, canvas)

	if err := orchestrator.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if canvas.Len() != 1 {
		t.Fatalf("canvas holds %d circles, want only the player", canvas.Len())
	}
	if got := canvas.commands[0]; got.x != 400 || got.y != 30 || got.clr != colorPlayer {
		t.Errorf("drew %+v, want the player at (400, 30)", got)
	}
	// Blend factor 10*0.1 reaches full speed in one frame.
	if vx := session.Player().Velocity.X; !approxEqual(vx, 15) {
		t.Errorf("Velocity.X = %v, want 15", vx)
	}
	if orchestrator.Session() != session {
		t.Error("Session() returned a different session")
	}
}

func TestFrameOrchestrator_NilInput(t *testing.T) {
	session := NewSession(DefaultConfig(), fixedRandom(t, 400), testScreen)
	orchestrator := NewFrameOrchestrator(session, FixedClock(0.1), nil, testScreen, NopCanvas{})

	if err := orchestrator.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if vx := session.Player().Velocity.X; vx != 0 {
		t.Errorf("Velocity.X = %v, want 0 with no input", vx)
	}
}

func TestFrameOrchestrator_SpawnScenario(t *testing.T) {
	session := NewSession(DefaultConfig(), fixedRandom(t, 400), testScreen)
	orchestrator := NewFrameOrchestrator(session, FixedClock(0.1), nil, testScreen, NewDrawList())

	for range 4 {
		if err := orchestrator.Tick(); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}
	if n := len(session.Hazards()); n != 0 {
		t.Fatalf("%d hazards after 4 frames, want 0", n)
	}
	if err := orchestrator.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if n := len(session.Hazards()); n != 1 {
		t.Errorf("%d hazards after 5 frames, want 1", n)
	}
}

func TestFrameClock_Elapsed(t *testing.T) {
	start := time.Unix(1000, 0)
	now := start
	clock := newFrameClock(func() time.Time { return now }, 0.1)

	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{"regular frame", 16 * time.Millisecond, 0.016},
		{"no time passed", 0, 0},
		{"long stall is capped", 2 * time.Second, 0.1},
		{"clock went backwards", -time.Second, 0},
	}

	for _, tt := range tests {
		now = now.Add(tt.advance)
		if got := clock.Elapsed(); !approxEqual(got, tt.want) {
			t.Errorf("%s: Elapsed() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFixedClock(t *testing.T) {
	clock := FixedClock(1.0 / 60.0)
	for range 3 {
		if got := clock.Elapsed(); got != 1.0/60.0 {
			t.Errorf("Elapsed() = %v, want %v", got, 1.0/60.0)
		}
	}
}

func TestDrawList_Clear(t *testing.T) {
	d := NewDrawList()
	d.DrawCircle(10, 20, 5, colorPlayer)
	d.DrawCircle(30, 40, 15, colorHazardDying)

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	if d.commands[1].clr != colorHazardDying {
		t.Errorf("second circle color = %v, want dying color", d.commands[1].clr)
	}

	d.Clear()

	if d.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", d.Len())
	}
}
