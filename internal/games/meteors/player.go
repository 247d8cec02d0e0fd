package meteors

import (
	"github.com/ndsky/meteorfield/internal/config"
	"github.com/ndsky/meteorfield/internal/core"
	"github.com/ndsky/meteorfield/internal/sim"
)

// newPlayer builds the player ship body from config, starting at the
// bottom center of the screen. The ship gets a speed-capping velocity
// shaper and a two-circle hull decomposition for collision accuracy.
func newPlayer(conf config.PlayerConfig, screenW, screenH int) *sim.Body {
	pos := sim.Vec2{
		X: float64(screenW)/2 - conf.Width/2,
		Y: float64(screenH) - conf.Height - 2,
	}
	p := sim.NewBody(pos, conf.Width, conf.Height, conf.TargetSpeed, conf.Thrust)
	p.SetVelocityShaper(shapePlayerVelocity)
	p.SetComplexShape(shipHull)
	return p
}

// shapePlayerVelocity is the player's velocity policy: coast to a stop
// when there is no thrust input, and never exceed the target speed.
func shapePlayerVelocity(b *sim.Body) {
	// Thrust has already scaled the input, so a zero acceleration here
	// means the player pressed nothing this tick.
	if b.Accel == (sim.Vec2{}) {
		b.Vel = b.Vel.Scale(playerFriction)
		if b.Vel.Length() < restSpeed {
			b.Vel = sim.Vec2{}
		}
	}

	if l := b.Vel.Length(); l > b.TargetSpeed {
		b.Vel.Normalize(l)
		b.Vel = b.Vel.Scale(b.TargetSpeed)
	}
}

// shipHull decomposes the wide, flat ship into two small circles instead
// of the single fat circle, which would overhang the sprite vertically
// and register phantom hits.
func shipHull(b *sim.Body) []sim.Bounds {
	half := b.Width / 2
	return []sim.Bounds{
		sim.NewCircle(b.Pos.X, b.Pos.Y, half),
		sim.NewCircle(b.Pos.X+half, b.Pos.Y, half),
	}
}

// applyInput maps this tick's directional actions onto the player's
// acceleration vector. The sim core clamps diagonals to the unit disk
// before thrust scaling.
func applyInput(p *sim.Body, in core.InputFrame) {
	dx, dy := in.Direction()
	p.Accel = sim.Vec2{X: dx, Y: dy}
}

// clampToScreen keeps the ship inside the visible field after
// integration, killing the velocity component that pushed it against an
// edge. The world's cull never fires for the player because of this; a
// ship leaving the field is a game-layer bug, not a registry decision.
func clampToScreen(p *sim.Body, screenW, screenH int) {
	minX, maxX := 0.0, float64(screenW)-p.Width
	minY, maxY := float64(hudRows), float64(screenH)-p.Height-1

	if p.Pos.X < minX || p.Pos.X > maxX {
		p.Pos.X = core.ClampF(p.Pos.X, minX, maxX)
		p.Vel.X = 0
	}
	if p.Pos.Y < minY || p.Pos.Y > maxY {
		p.Pos.Y = core.ClampF(p.Pos.Y, minY, maxY)
		p.Vel.Y = 0
	}
}
