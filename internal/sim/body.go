package sim

// VelocityShaper adjusts a body's velocity right after acceleration is
// applied and before the position advances. It is the extension point for
// per-kind motion policies: the player caps its speed, meteors drift
// untouched. A nil shaper leaves the velocity as integrated.
type VelocityShaper func(b *Body)

// ComplexShape produces an ordered sequence of circles approximating a
// body's silhouette for finer-grained collision testing. A nil function
// falls back to the body's single circle.
type ComplexShape func(b *Body) []Bounds

// Body is a moving entity integrated under acceleration/velocity/position
// semantics with a fixed per-tick order. The acceleration vector is an
// input: a collaborator (input mapping, spawner AI) writes it before each
// tick and Update consumes it.
type Body struct {
	Pos   Vec2
	Vel   Vec2
	Accel Vec2

	// TargetSpeed is the speed cap a velocity shaper may enforce. The
	// integrator itself never reads it.
	TargetSpeed float64

	// Thrust scales the (clamped) acceleration input each tick.
	Thrust float64

	Width  float64
	Height float64

	shaper  VelocityShaper
	complex ComplexShape
}

// NewBody constructs a body at the given position and size with no
// velocity or acceleration. TargetSpeed and thrust must be non-negative.
func NewBody(pos Vec2, width, height, targetSpeed, thrust float64) *Body {
	if targetSpeed < 0 || thrust < 0 {
		panic("sim: body with negative target speed or thrust")
	}
	return &Body{
		Pos:         pos,
		TargetSpeed: targetSpeed,
		Thrust:      thrust,
		Width:       width,
		Height:      height,
	}
}

// SetVelocityShaper installs the velocity-shaping hook run during Update.
func (b *Body) SetVelocityShaper(s VelocityShaper) {
	b.shaper = s
}

// SetComplexShape installs a multi-circle decomposition used by Complex.
func (b *Body) SetComplexShape(c ComplexShape) {
	b.complex = c
}

// Update advances the body by one tick in fixed order: clamp and scale the
// acceleration input, integrate velocity, run the shaping hook, integrate
// position.
func (b *Body) Update() {
	b.applyThrust()
	b.Vel = b.Vel.Add(b.Accel)
	if b.shaper != nil {
		b.shaper(b)
	}
	b.Pos = b.Pos.Add(b.Vel)
}

// applyThrust limits the raw acceleration input to the unit disk and
// scales it by thrust. The radial clamp keeps diagonal inputs from
// out-accelerating axis-aligned ones.
func (b *Body) applyThrust() {
	length := b.Accel.Length()
	if length > 1 {
		b.Accel.Normalize(length)
	}
	b.Accel = b.Accel.Scale(b.Thrust)
}

// RenderPos returns the interpolated draw position for the current frame:
// the last committed position advanced by alpha of the current velocity,
// alpha in [0,1) being the render-time progress toward the next tick. It
// is recomputed on every call, never cached.
func (b *Body) RenderPos(alpha float64) Vec2 {
	return b.Pos.Add(b.Vel.Scale(alpha))
}

// Rect returns the body's axis-aligned box at its current position.
func (b *Body) Rect() Bounds {
	return NewRect(b.Pos.X, b.Pos.Y, b.Width, b.Height)
}

// Circle returns the body's single-circle bounds, sized to its width and
// anchored at its position.
func (b *Body) Circle() Bounds {
	return NewCircle(b.Pos.X, b.Pos.Y, b.Width)
}

// Complex returns the body's multi-circle decomposition, or the single
// circle when none is installed.
func (b *Body) Complex() []Bounds {
	if b.complex != nil {
		return b.complex(b)
	}
	return []Bounds{b.Circle()}
}
