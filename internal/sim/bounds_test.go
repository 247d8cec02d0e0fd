package sim

import "testing"

func TestBoundsIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Bounds
		expected bool
	}{
		{
			name:     "overlapping circles",
			a:        NewCircle(0, 0, 10),
			b:        NewCircle(5, 5, 10),
			expected: true,
		},
		{
			name:     "distant circles",
			a:        NewCircle(0, 0, 10),
			b:        NewCircle(100, 0, 10),
			expected: false,
		},
		{
			// Center distance exactly equals the radius sum: the circle
			// test is non-strict, so tangency counts.
			name:     "tangent circles",
			a:        NewCircle(0, 0, 10),
			b:        NewCircle(10, 0, 10),
			expected: true,
		},
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			// Rects sharing exactly one edge: the AABB test is strict,
			// so touching does not count.
			name:     "edge-adjacent rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "circle center inside rect",
			a:        NewCircle(5, 5, 4),
			b:        NewRect(0, 0, 20, 20),
			expected: true,
		},
		{
			name:     "circle overlapping rect corner",
			a:        NewCircle(18, 18, 8),
			b:        NewRect(0, 0, 20, 20),
			expected: true,
		},
		{
			name:     "circle clear of rect",
			a:        NewCircle(50, 50, 4),
			b:        NewRect(0, 0, 20, 20),
			expected: false,
		},
		{
			// Closest point on the rect is the corner (30, 30); circle
			// center (35, 35) with radius 5 misses it by sqrt(50) > 5.
			name:     "circle diagonal of rect corner",
			a:        NewCircle(30, 30, 10),
			b:        NewRect(0, 0, 30, 30),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// The relation must be commutative across all shape pairs.
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsReflexive(t *testing.T) {
	circle := NewCircle(3, 7, 12)
	if !circle.Intersects(circle) {
		t.Error("a circle should intersect itself")
	}

	rect := NewRect(3, 7, 12, 8)
	if !rect.Intersects(rect) {
		t.Error("a rect should intersect itself")
	}

	// A zero-size rect has no interior; under strict inequalities it does
	// not even intersect itself.
	empty := NewRect(3, 7, 0, 10)
	if empty.Intersects(empty) {
		t.Error("a zero-width rect should not intersect anything")
	}
	if empty.Intersects(rect) || rect.Intersects(empty) {
		t.Error("a zero-width rect should not intersect an overlapping rect")
	}
}

func TestBoundsAccessors(t *testing.T) {
	c := NewCircle(10, 20, 8)
	if c.Shape() != ShapeCircle {
		t.Errorf("Shape() = %v, expected circle", c.Shape())
	}
	if c.Radius() != 4 {
		t.Errorf("Radius() = %v, expected 4", c.Radius())
	}
	// Top-left anchoring: center is offset by one radius on each axis.
	if c.CenterX() != 14 || c.CenterY() != 24 {
		t.Errorf("center = (%v, %v), expected (14, 24)", c.CenterX(), c.CenterY())
	}

	r := NewRect(1, 2, 6, 4)
	if r.Shape() != ShapeRect {
		t.Errorf("Shape() = %v, expected rect", r.Shape())
	}
	if r.CenterX() != 4 || r.CenterY() != 4 {
		t.Errorf("center = (%v, %v), expected (4, 4)", r.CenterX(), r.CenterY())
	}
}

func TestBoundsNegativeSizePanics(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewCircle with negative size should panic")
			}
		}()
		NewCircle(0, 0, -1)
	})

	t.Run("rect", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewRect with negative size should panic")
			}
		}()
		NewRect(0, 0, 5, -1)
	})
}
