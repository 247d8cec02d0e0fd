package sim

import "fmt"

// Shape is the tag of a Bounds variant. The set is closed: every Bounds
// built through the constructors is either a circle or a rect.
type Shape int

const (
	// ShapeCircle is a circle anchored at the top-left of its bounding box.
	ShapeCircle Shape = iota
	// ShapeRect is an axis-aligned rectangle anchored at its top-left corner.
	ShapeRect
)

// String returns a human-readable name for the shape tag.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Bounds is a tagged circle-or-rectangle shape used for overlap testing.
//
// Both variants share the top-left anchoring convention: a circle of size s
// occupies the box [x, x+s]x[y, y+s], so its radius is s/2 and its center
// sits at (x+s/2, y+s/2). Mixing this with true-center storage silently
// shifts collision boundaries by one radius, so every constructor and
// every intersection case below sticks to the anchored form.
type Bounds struct {
	shape Shape
	x, y  float64
	w, h  float64
}

// NewCircle constructs circle bounds of the given size (diameter) anchored
// at (x, y). Panics if size is negative.
func NewCircle(x, y, size float64) Bounds {
	if size < 0 {
		panic(fmt.Sprintf("sim: circle with negative size %v", size))
	}
	return Bounds{shape: ShapeCircle, x: x, y: y, w: size, h: size}
}

// NewRect constructs rectangle bounds anchored at (x, y). Panics if width
// or height is negative.
func NewRect(x, y, w, h float64) Bounds {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("sim: rect with negative size %vx%v", w, h))
	}
	return Bounds{shape: ShapeRect, x: x, y: y, w: w, h: h}
}

// Shape returns the variant tag.
func (b Bounds) Shape() Shape {
	return b.shape
}

// X returns the left edge of the bounding box.
func (b Bounds) X() float64 { return b.x }

// Y returns the top edge of the bounding box.
func (b Bounds) Y() float64 { return b.y }

// Width returns the bounding box width.
func (b Bounds) Width() float64 { return b.w }

// Height returns the bounding box height.
func (b Bounds) Height() float64 { return b.h }

// Radius returns half the width. Meaningful for circle bounds, where
// width and height are equal by construction.
func (b Bounds) Radius() float64 {
	return b.w / 2
}

// CenterX returns the x-coordinate of the bounding box center.
func (b Bounds) CenterX() float64 {
	return b.x + b.w/2
}

// CenterY returns the y-coordinate of the bounding box center.
func (b Bounds) CenterY() float64 {
	return b.y + b.h/2
}

// Intersects reports whether b and o overlap, dispatching on the pair of
// shape tags. The relation is commutative: Intersects(a, b) and
// Intersects(b, a) always agree.
func (b Bounds) Intersects(o Bounds) bool {
	switch b.shape {
	case ShapeCircle:
		switch o.shape {
		case ShapeCircle:
			return circleOverlapsCircle(b, o)
		case ShapeRect:
			return circleOverlapsRect(b, o)
		}
	case ShapeRect:
		switch o.shape {
		case ShapeRect:
			return rectOverlapsRect(b, o)
		case ShapeCircle:
			return circleOverlapsRect(o, b)
		}
	}
	panic(fmt.Sprintf("sim: intersection between %v and %v bounds", b.shape, o.shape))
}

// circleOverlapsCircle tests two circles by comparing the squared distance
// between their centers against the squared sum of radii. The comparison is
// non-strict: exactly tangent circles count as intersecting.
func circleOverlapsCircle(a, b Bounds) bool {
	dx := (a.x + a.Radius()) - (b.x + b.Radius())
	dy := (a.y + a.Radius()) - (b.y + b.Radius())
	rr := a.Radius() + b.Radius()
	return dx*dx+dy*dy <= rr*rr
}

// rectOverlapsRect is the classic AABB test with strict inequalities:
// rects that merely share an edge do not intersect.
func rectOverlapsRect(a, b Bounds) bool {
	return a.x < b.x+b.w && a.x+a.w > b.x &&
		a.y < b.y+b.h && a.y+a.h > b.y
}

// circleOverlapsRect clamps the circle center to the rect's x/y ranges to
// find the closest point on the rect, then compares the squared distance
// from that point to the center against the squared radius.
func circleOverlapsRect(c, r Bounds) bool {
	closestX := clip(c.CenterX(), r.x, r.x+r.w)
	closestY := clip(c.CenterY(), r.y, r.y+r.h)

	dx := c.CenterX() - closestX
	dy := c.CenterY() - closestY
	rad := c.Radius()
	return dx*dx+dy*dy <= rad*rad
}

// clip forces value into [min, max], returning the nearer bound when out
// of range.
func clip(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
