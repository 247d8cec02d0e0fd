package meteors

import (
	"math/rand"

	"github.com/ndsky/meteorfield/internal/config"
	"github.com/ndsky/meteorfield/internal/sim"
)

// MeteorSpawner injects meteors above the top edge of the field on a
// difficulty-scaled cadence. It implements sim.Spawner; the world calls
// Produce exactly once per tick before integration.
type MeteorSpawner struct {
	rng        *rand.Rand
	conf       config.MeteorConfig
	difficulty *config.DifficultyManager
	screenW    int

	ticks     int // ticks since reset, drives time-based difficulty
	countdown int // ticks until the next spawn
}

// NewMeteorSpawner creates a seeded spawner for a field of the given width.
func NewMeteorSpawner(seed int64, conf config.MeteorConfig, difficulty *config.DifficultyManager, screenW int) *MeteorSpawner {
	s := &MeteorSpawner{
		conf:       conf,
		difficulty: difficulty,
		screenW:    screenW,
	}
	s.Reset(seed)
	return s
}

// Reset reseeds the spawner and restarts its cadence.
func (s *MeteorSpawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.ticks = 0
	s.countdown = s.conf.SpawnInterval
}

// SetScreenWidth updates the horizontal spawn range after a resize.
func (s *MeteorSpawner) SetScreenWidth(screenW int) {
	s.screenW = screenW
}

// Produce returns the meteors to inject this tick: at most one, and none
// while the cadence countdown runs or the population cap is reached.
func (s *MeteorSpawner) Produce(existing []*sim.Body) []*sim.Body {
	s.ticks++

	if s.countdown > 0 {
		s.countdown--
		return nil
	}
	if len(existing) > s.conf.MaxCount {
		return nil
	}

	s.countdown = s.difficulty.SpawnInterval(s.conf.SpawnInterval, 0, s.ticks)
	return []*sim.Body{s.spawnMeteor()}
}

// spawnMeteor rolls a meteor just above the visible field with a
// downward, slightly sideways drift velocity. Meteors carry no thrust
// and no velocity shaping: they move in a straight line until culled.
func (s *MeteorSpawner) spawnMeteor() *sim.Body {
	size := s.conf.MinSize + s.rng.Float64()*(s.conf.MaxSize-s.conf.MinSize)

	maxX := float64(s.screenW) - size
	if maxX < 0 {
		maxX = 0
	}
	x := s.rng.Float64() * maxX

	speed := s.conf.MinSpeed + s.rng.Float64()*(s.conf.MaxSpeed-s.conf.MinSpeed)
	speed = s.difficulty.Speed(speed, 0, s.ticks)
	drift := (s.rng.Float64()*2 - 1) * s.conf.Drift

	m := sim.NewBody(sim.Vec2{X: x, Y: -size}, size, size, 0, 0)
	m.Vel = sim.Vec2{X: drift, Y: speed}
	return m
}
