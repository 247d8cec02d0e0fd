// Package sim implements the motion and collision core of the arcade
// simulation: 2D vector math, circle/rect bounds with pairwise intersection
// testing, a fixed-tick body integrator with interpolated render positions,
// and a world that drives spawn, integration, collision and culling.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package sim

import (
	"fmt"
	"math"
)

// Vec2 is a two-dimensional float vector. Operations return new values;
// only Normalize mutates in place.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the exact Euclidean norm of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize rescales v to unit length in place, using a length the caller
// has already computed so the norm is not taken twice. Panics if length
// is not positive: normalizing a zero vector is a contract violation and
// the caller must guard against it.
func (v *Vec2) Normalize(length float64) {
	if length <= 0 {
		panic(fmt.Sprintf("sim: normalize with non-positive length %v", length))
	}
	v.X /= length
	v.Y /= length
}
