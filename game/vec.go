package game

import "math"

// Vec2 is a 2D point or vector in screen space (y grows downward)
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceSq returns the squared distance between two points
func (v Vec2) DistanceSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// NormalizeOr returns the unit vector along v, or fallback when v has no
// usable direction (zero length or non-finite components).
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return fallback
	}
	return Vec2{v.X / length, v.Y / length}
}

// lerp blends a toward b by factor f
func lerp(a, b, f float64) float64 {
	return a + f*(b-a)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}
