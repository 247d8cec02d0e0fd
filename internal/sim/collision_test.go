package sim

import "testing"

// bodyAt builds a size-6 body anchored at (x, y) for collision tests.
func bodyAt(x, y float64) *Body {
	return NewBody(Vec2{x, y}, 6, 6, 0, 1)
}

func TestOverlapsReportsPairs(t *testing.T) {
	a := bodyAt(0, 0)
	b := bodyAt(3, 0)    // overlaps a
	c := bodyAt(100, 0)  // clear of both
	d := bodyAt(102, 0)  // overlaps c

	pairs := Overlaps([]*Body{a, b, c, d})

	if len(pairs) != 2 {
		t.Fatalf("Overlaps() returned %d pairs, expected 2", len(pairs))
	}
	if pairs[0].A != a || pairs[0].B != b {
		t.Errorf("first pair = (%v, %v), expected (a, b)", pairs[0].A.Pos, pairs[0].B.Pos)
	}
	if pairs[1].A != c || pairs[1].B != d {
		t.Errorf("second pair = (%v, %v), expected (c, d)", pairs[1].A.Pos, pairs[1].B.Pos)
	}
}

func TestOverlapsNoMutation(t *testing.T) {
	a := bodyAt(0, 0)
	b := bodyAt(3, 0)
	a.Vel = Vec2{1, 2}

	Overlaps([]*Body{a, b})

	if a.Pos != (Vec2{0, 0}) || a.Vel != (Vec2{1, 2}) {
		t.Error("collision pass must not mutate body state")
	}
}

func TestOverlapsEmptyAndSingle(t *testing.T) {
	if pairs := Overlaps(nil); len(pairs) != 0 {
		t.Errorf("Overlaps(nil) = %v, expected none", pairs)
	}
	if pairs := Overlaps([]*Body{bodyAt(0, 0)}); len(pairs) != 0 {
		t.Errorf("Overlaps(single) = %v, expected none", pairs)
	}
}

func TestEachOverlapCallback(t *testing.T) {
	a := bodyAt(0, 0)
	b := bodyAt(3, 0)

	calls := 0
	EachOverlap([]*Body{a, b}, func(x, y *Body) {
		calls++
		if x != a || y != b {
			t.Errorf("callback got (%v, %v), expected (a, b)", x.Pos, y.Pos)
		}
	})

	if calls != 1 {
		t.Errorf("callback invoked %d times, expected 1", calls)
	}
}

func TestOverlapsUsesComplexDecomposition(t *testing.T) {
	// Two bodies whose single circles are clear of each other, but one
	// carries a decomposition circle reaching into the other.
	a := bodyAt(0, 0)
	b := bodyAt(20, 0)
	a.SetComplexShape(func(body *Body) []Bounds {
		return []Bounds{
			body.Circle(),
			NewCircle(body.Pos.X+16, body.Pos.Y, body.Width),
		}
	})

	if a.Circle().Intersects(b.Circle()) {
		t.Fatal("test setup: simple circles should be clear")
	}

	pairs := Overlaps([]*Body{a, b})
	if len(pairs) != 1 {
		t.Fatalf("Overlaps() returned %d pairs, expected the complex hit", len(pairs))
	}
}
