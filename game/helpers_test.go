package game

import (
	"math"
	"testing"

	"go.uber.org/mock/gomock"
	"hazardrun/game/mocks"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// fixedRandom returns a RandomSource mock that always yields x
func fixedRandom(t *testing.T, x float64) *mocks.MockRandomSource {
	t.Helper()
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandomSource(ctrl)
	rng.EXPECT().Uniform(gomock.Any(), gomock.Any()).Return(x).AnyTimes()
	return rng
}

// fakeInput is an InputSource with fixed key states
type fakeInput struct {
	held    map[Key]bool
	pressed map[Key]bool
}

func (f fakeInput) IsHeld(key Key) bool    { return f.held[key] }
func (f fakeInput) IsPressed(key Key) bool { return f.pressed[key] }

// testScreen is the default 800x600 playfield
var testScreen = StaticScreen{W: 800, H: 600}
