package sim

import "testing"

func testPlayfield() Bounds {
	return NewRect(0, 0, 100, 100)
}

func TestWorldTickOrder(t *testing.T) {
	// The spawner's bodies must be injected before integration: a body
	// spawned this tick already moves this tick.
	spawned := NewBody(Vec2{50, 50}, 4, 4, 0, 0)
	spawned.Vel = Vec2{1, 0}

	done := false
	w := NewWorld(testPlayfield(), SpawnerFunc(func(existing []*Body) []*Body {
		if done {
			return nil
		}
		done = true
		return []*Body{spawned}
	}))

	w.Tick()

	if w.Len() != 1 {
		t.Fatalf("world has %d bodies, expected 1", w.Len())
	}
	if spawned.Pos != (Vec2{51, 50}) {
		t.Errorf("spawned body pos = %v, expected (51, 50): spawn must precede integration", spawned.Pos)
	}
}

func TestWorldPlayerHandle(t *testing.T) {
	w := NewWorld(testPlayfield(), nil)
	w.Add(NewBody(Vec2{30, 30}, 4, 4, 0, 0))

	player := NewBody(Vec2{50, 50}, 4, 4, 2, 1)
	w.SetPlayer(player)

	if w.Player() != player {
		t.Error("Player() should return the installed body")
	}
	if w.Bodies()[0] != player {
		t.Error("player should occupy index 0")
	}
	if w.Len() != 2 {
		t.Errorf("world has %d bodies, expected 2", w.Len())
	}
}

func TestWorldCull(t *testing.T) {
	w := NewWorld(testPlayfield(), nil)

	inside := NewBody(Vec2{50, 50}, 4, 4, 0, 0)
	// Straddles the boundary: circle still intersects the playfield.
	partial := NewBody(Vec2{98, 50}, 4, 4, 0, 0)
	// Entirely outside.
	outside := NewBody(Vec2{200, 50}, 4, 4, 0, 0)

	w.Add(inside)
	w.Add(partial)
	w.Add(outside)

	w.Tick()

	if w.Len() != 2 {
		t.Fatalf("world has %d bodies after cull, expected 2", w.Len())
	}
	for _, b := range w.Bodies() {
		if b == outside {
			t.Error("off-playfield body survived the cull")
		}
	}
	if w.Bodies()[0] != inside || w.Bodies()[1] != partial {
		t.Error("cull must preserve the order of surviving bodies")
	}
}

func TestWorldCullClearsPlayerHandle(t *testing.T) {
	w := NewWorld(testPlayfield(), nil)
	player := NewBody(Vec2{500, 500}, 4, 4, 0, 0)
	w.SetPlayer(player)

	w.Tick()

	if w.Len() != 0 {
		t.Errorf("world has %d bodies, expected 0", w.Len())
	}
	if w.Player() != nil {
		t.Error("Player() should be nil after the player is culled")
	}
}

func TestWorldTickReportsOverlaps(t *testing.T) {
	w := NewWorld(testPlayfield(), nil)
	a := NewBody(Vec2{50, 50}, 6, 6, 0, 0)
	b := NewBody(Vec2{53, 50}, 6, 6, 0, 0)
	w.Add(a)
	w.Add(b)

	pairs := w.Tick()

	if len(pairs) != 1 {
		t.Fatalf("Tick() reported %d pairs, expected 1", len(pairs))
	}
	if pairs[0].A != a || pairs[0].B != b {
		t.Error("reported pair does not match the overlapping bodies")
	}
}

func TestWorldEndToEnd(t *testing.T) {
	// Player accelerates right under thrust 2; a drifting hazard enters
	// from the left edge, crosses the playfield and is culled once its
	// circle bounds leave it.
	w := NewWorld(testPlayfield(), nil)
	player := NewBody(Vec2{0, 0}, 4, 4, 0, 2)
	w.SetPlayer(player)

	hazard := NewBody(Vec2{90, 20}, 4, 4, 0, 0)
	hazard.Vel = Vec2{5, 0}
	w.Add(hazard)

	player.Accel = Vec2{1, 0}
	w.Tick()
	if player.Pos != (Vec2{2, 0}) {
		t.Errorf("tick 1 player pos = %v, expected (2, 0)", player.Pos)
	}

	player.Accel = Vec2{1, 0}
	w.Tick()
	if player.Pos != (Vec2{6, 0}) {
		t.Errorf("tick 2 player pos = %v, expected (6, 0)", player.Pos)
	}

	// Hazard at x=100: its circle touches the boundary, so it survives;
	// one more tick pushes it fully out.
	if w.Len() != 2 {
		t.Fatalf("hazard culled too early at %v", hazard.Pos)
	}
	player.Accel = Vec2{}
	w.Tick()
	if w.Len() != 1 {
		t.Errorf("world has %d bodies, expected the hazard to be culled", w.Len())
	}
	if w.Player() != player {
		t.Error("player should survive inside the playfield")
	}
}

func TestWorldEachRenderReadOnly(t *testing.T) {
	w := NewWorld(testPlayfield(), nil)
	b := NewBody(Vec2{10, 10}, 4, 4, 0, 0)
	b.Vel = Vec2{2, 0}
	w.Add(b)

	var got Vec2
	w.EachRender(0.5, func(body *Body, pos Vec2) {
		got = pos
	})

	if got != (Vec2{11, 10}) {
		t.Errorf("render pos = %v, expected (11, 10)", got)
	}
	if b.Pos != (Vec2{10, 10}) {
		t.Error("render pass must not move bodies")
	}
}
