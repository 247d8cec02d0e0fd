package sim

// Pair is an unordered pair of bodies whose shapes overlapped during a
// collision pass. A holds the body with the lower index in the scanned
// slice.
type Pair struct {
	A, B *Body
}

// Overlaps runs a collision pass over the ordered body slice and returns
// every unordered pair whose shapes overlap. The pass reads body state but
// never mutates it; what happens to a colliding pair is the caller's
// policy.
//
// Each pair is tested with the bodies' complex decompositions so a
// multi-circle hull gets per-circle accuracy, and the pair is reported as
// soon as any constituent shapes intersect. The scan is the naive O(n^2)
// over all pairs, which is fine at tens of bodies but is the first thing
// to revisit if the population ever grows past that.
func Overlaps(bodies []*Body) []Pair {
	var pairs []Pair
	EachOverlap(bodies, func(a, b *Body) {
		pairs = append(pairs, Pair{A: a, B: b})
	})
	return pairs
}

// EachOverlap is the callback form of Overlaps: fn is invoked once per
// overlapping unordered pair, in scan order, without allocating a result
// slice.
func EachOverlap(bodies []*Body, fn func(a, b *Body)) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if shapesOverlap(bodies[i].Complex(), bodies[j].Complex()) {
				fn(bodies[i], bodies[j])
			}
		}
	}
}

// shapesOverlap reports whether any shape from a intersects any shape
// from b.
func shapesOverlap(a, b []Bounds) bool {
	for _, sa := range a {
		for _, sb := range b {
			if sa.Intersects(sb) {
				return true
			}
		}
	}
	return false
}
