package sim

// Spawner injects new bodies into the world at the start of each tick.
// Implementations decide count and placement; the world only requires the
// result to be finite. The existing slice is read-only input for
// population-aware policies.
type Spawner interface {
	Produce(existing []*Body) []*Body
}

// SpawnerFunc adapts a plain function to the Spawner interface.
type SpawnerFunc func(existing []*Body) []*Body

// Produce calls f.
func (f SpawnerFunc) Produce(existing []*Body) []*Body {
	return f(existing)
}

// World owns the ordered collection of live bodies and drives the
// per-tick update order: spawn, integrate, collide, cull. Index 0 is
// reserved for the player body when one is set.
//
// The world is single-threaded by design: bodies are mutated only inside
// Tick, and render passes only read.
type World struct {
	bodies    []*Body
	spawner   Spawner
	playfield Bounds
	player    *Body
}

// NewWorld creates a world bounded by the given playfield rectangle.
// Bodies whose circle bounds stop intersecting the playfield are culled
// at the end of each tick. A nil spawner means no bodies are injected.
func NewWorld(playfield Bounds, spawner Spawner) *World {
	return &World{
		playfield: playfield,
		spawner:   spawner,
	}
}

// SetPlayfield replaces the outer boundary, e.g. after a screen resize.
func (w *World) SetPlayfield(playfield Bounds) {
	w.playfield = playfield
}

// SetPlayer installs the player-controlled body at index 0, replacing any
// previous player. Collaborators that need "the player" go through Player
// rather than assuming an index.
func (w *World) SetPlayer(b *Body) {
	if w.player != nil && len(w.bodies) > 0 && w.bodies[0] == w.player {
		w.bodies[0] = b
	} else {
		w.bodies = append([]*Body{b}, w.bodies...)
	}
	w.player = b
}

// Player returns the player body, or nil if none is set. It returns nil
// after the player has been culled.
func (w *World) Player() *Body {
	return w.player
}

// Add appends a body after the existing ones.
func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// Bodies returns the live collection in order. Callers must treat it as
// read-only outside the tick phase.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Tick advances the world by one simulation step and returns the pairs
// that overlapped after integration. Order is fixed: the spawner injects
// new bodies, every body integrates exactly once in collection order, the
// collision pass runs over the post-integration state, and finally bodies
// whose circle bounds left the playfield are removed. The tick always
// runs to completion.
func (w *World) Tick() []Pair {
	if w.spawner != nil {
		w.bodies = append(w.bodies, w.spawner.Produce(w.bodies)...)
	}

	for _, b := range w.bodies {
		b.Update()
	}

	pairs := Overlaps(w.bodies)

	w.cull()
	return pairs
}

// cull removes off-playfield bodies with an in-place compaction so the
// scan neither skips nor revisits elements while removing mid-iteration.
func (w *World) cull() {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if b.Circle().Intersects(w.playfield) {
			kept = append(kept, b)
			continue
		}
		if b == w.player {
			w.player = nil
		}
	}
	for i := len(kept); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = kept
}

// EachRender invokes fn for every body with its interpolated position for
// the given fraction of progress toward the next tick. The pass is
// read-only; fn must not mutate body state.
func (w *World) EachRender(alpha float64, fn func(b *Body, pos Vec2)) {
	for _, b := range w.bodies {
		fn(b, b.RenderPos(alpha))
	}
}
