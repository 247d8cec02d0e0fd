package sim

import (
	"math"
	"testing"
)

func TestBodyIntegrationTrace(t *testing.T) {
	// Known two-tick trace: start at rest, accelerate (1, 0) with
	// thrust 2 and no speed cap.
	b := NewBody(Vec2{}, 4, 4, 0, 2)

	b.Accel = Vec2{1, 0}
	b.Update()
	if b.Accel != (Vec2{2, 0}) {
		t.Errorf("tick 1 accel = %v, expected (2, 0)", b.Accel)
	}
	if b.Vel != (Vec2{2, 0}) {
		t.Errorf("tick 1 vel = %v, expected (2, 0)", b.Vel)
	}
	if b.Pos != (Vec2{2, 0}) {
		t.Errorf("tick 1 pos = %v, expected (2, 0)", b.Pos)
	}

	b.Accel = Vec2{1, 0}
	b.Update()
	if b.Vel != (Vec2{4, 0}) {
		t.Errorf("tick 2 vel = %v, expected (4, 0)", b.Vel)
	}
	if b.Pos != (Vec2{6, 0}) {
		t.Errorf("tick 2 pos = %v, expected (6, 0)", b.Pos)
	}
}

func TestBodyAccelerationClamp(t *testing.T) {
	// An oversized diagonal input must be normalized before thrust
	// scaling, so the applied acceleration magnitude equals thrust, not
	// thrust times the raw length.
	const thrust = 2.0
	b := NewBody(Vec2{}, 4, 4, 0, thrust)
	b.Accel = Vec2{1, 1}.Scale(3 / math.Sqrt2) // length 3 toward (1, 1)

	b.Update()

	if got := b.Accel.Length(); math.Abs(got-thrust) > 1e-12 {
		t.Errorf("post-tick accel magnitude = %v, expected %v", got, thrust)
	}
	if math.Abs(b.Accel.X-b.Accel.Y) > 1e-12 {
		t.Errorf("clamp should preserve direction, got %v", b.Accel)
	}
}

func TestBodyUnitInputNotClamped(t *testing.T) {
	// Inputs already inside the unit disk scale by thrust untouched.
	b := NewBody(Vec2{}, 4, 4, 0, 3)
	b.Accel = Vec2{0.5, 0}

	b.Update()

	if b.Accel != (Vec2{1.5, 0}) {
		t.Errorf("accel = %v, expected (1.5, 0)", b.Accel)
	}
}

func TestBodyDeterminism(t *testing.T) {
	// Two independent runs over the same input sequence must produce
	// bit-identical state.
	inputs := []Vec2{{1, 0}, {0.5, -1}, {-2, 2}, {0, 0}, {1, 1}, {-0.25, 0.75}}

	run := func() *Body {
		b := NewBody(Vec2{10, 10}, 4, 4, 0, 1.5)
		for _, in := range inputs {
			b.Accel = in
			b.Update()
		}
		return b
	}

	b1 := run()
	b2 := run()

	if b1.Pos != b2.Pos {
		t.Errorf("positions diverged: %v vs %v", b1.Pos, b2.Pos)
	}
	if b1.Vel != b2.Vel {
		t.Errorf("velocities diverged: %v vs %v", b1.Vel, b2.Vel)
	}
}

func TestBodyVelocityShaper(t *testing.T) {
	// A speed-cap shaper runs after velocity integration and before the
	// position advances.
	b := NewBody(Vec2{}, 4, 4, 1, 10)
	b.SetVelocityShaper(func(b *Body) {
		if l := b.Vel.Length(); l > b.TargetSpeed {
			b.Vel.Normalize(l)
			b.Vel = b.Vel.Scale(b.TargetSpeed)
		}
	})

	b.Accel = Vec2{1, 0}
	b.Update()

	if b.Vel != (Vec2{1, 0}) {
		t.Errorf("capped vel = %v, expected (1, 0)", b.Vel)
	}
	if b.Pos != (Vec2{1, 0}) {
		t.Errorf("pos should advance by the shaped velocity, got %v", b.Pos)
	}
}

func TestBodyRenderPos(t *testing.T) {
	b := NewBody(Vec2{10, 20}, 4, 4, 0, 1)
	b.Vel = Vec2{4, -2}

	// At fraction 0 the render position is the last committed position.
	if got := b.RenderPos(0); got != b.Pos {
		t.Errorf("RenderPos(0) = %v, expected %v", got, b.Pos)
	}

	// Halfway toward the next tick.
	if got := b.RenderPos(0.5); got != (Vec2{12, 19}) {
		t.Errorf("RenderPos(0.5) = %v, expected (12, 19)", got)
	}

	// Approaching 1 the render position approaches pos + vel.
	want := b.Pos.Add(b.Vel)
	got := b.RenderPos(0.999)
	if math.Abs(got.X-want.X) > 0.01 || math.Abs(got.Y-want.Y) > 0.01 {
		t.Errorf("RenderPos(0.999) = %v, expected near %v", got, want)
	}
}

func TestBodyShapes(t *testing.T) {
	b := NewBody(Vec2{5, 7}, 6, 4, 0, 1)

	r := b.Rect()
	if r.Shape() != ShapeRect || r.X() != 5 || r.Y() != 7 || r.Width() != 6 || r.Height() != 4 {
		t.Errorf("Rect() = %+v, expected 6x4 box at (5, 7)", r)
	}

	c := b.Circle()
	if c.Shape() != ShapeCircle || c.Width() != 6 || c.Radius() != 3 {
		t.Errorf("Circle() = %+v, expected size-6 circle", c)
	}

	// Default complex decomposition is the single circle.
	complex := b.Complex()
	if len(complex) != 1 || complex[0] != c {
		t.Errorf("Complex() = %v, expected the single circle", complex)
	}

	// An installed decomposition takes precedence.
	b.SetComplexShape(func(b *Body) []Bounds {
		half := b.Width / 2
		return []Bounds{
			NewCircle(b.Pos.X, b.Pos.Y, half),
			NewCircle(b.Pos.X+half, b.Pos.Y, half),
		}
	})
	complex = b.Complex()
	if len(complex) != 2 {
		t.Fatalf("Complex() returned %d shapes, expected 2", len(complex))
	}
	if complex[1].X() != 8 {
		t.Errorf("second circle at x=%v, expected 8", complex[1].X())
	}
}
