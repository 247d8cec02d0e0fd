// Package meteors implements the Meteors game: the player pilots a ship
// through a field of falling meteors for as long as possible. Motion and
// collision run on the sim package's fixed-tick core; rendering draws at
// interpolated positions between ticks.
package meteors

import (
	"fmt"

	"github.com/ndsky/meteorfield/internal/config"
	"github.com/ndsky/meteorfield/internal/core"
	"github.com/ndsky/meteorfield/internal/registry"
	"github.com/ndsky/meteorfield/internal/sim"
)

// Gameplay tuning not exposed through YAML config.
const (
	hudRows        = 1    // rows reserved for the score line
	playerFriction = 0.90 // per-tick velocity decay while coasting
	restSpeed      = 0.01 // below this the ship snaps to a stop
	ticksPerPoint  = 10   // survival ticks per score point
)

// Visual characters for rendering.
const (
	shipBodyChar   = '█'
	shipNoseChar   = '▲'
	meteorChar     = '●'
	meteorLargeMin = 6 // diameter from which meteors render in the large style
)

// Game implements the Meteors game logic on top of the sim core.
type Game struct {
	conf       config.MeteorsConfig
	difficulty *config.DifficultyManager

	world   *sim.World
	player  *sim.Body
	spawner *MeteorSpawner

	score     int
	gameOver  bool
	paused    bool
	tickCount int
	showDebug bool

	cfg core.RuntimeConfig
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Meteors game with the given configuration.
func New(conf config.MeteorsConfig) *Game {
	return &Game{
		conf:       conf,
		difficulty: config.NewDifficultyManager(conf.Difficulty),
	}
}

// NewDefault creates a Meteors game using the CLI-selected config path
// and difficulty preset, falling back to the embedded defaults.
func NewDefault() *Game {
	conf, err := config.LoadMeteors(configPath)
	if err != nil {
		conf = config.DefaultMeteorsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMeteorsPreset(&conf, difficultyPreset)
	}
	return New(conf)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "meteors"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Meteors"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.spawner == nil {
		g.spawner = NewMeteorSpawner(cfg.Seed, g.conf.Meteors, g.difficulty, cfg.ScreenW)
	} else {
		g.spawner.SetScreenWidth(cfg.ScreenW)
		g.spawner.Reset(cfg.Seed)
	}

	g.world = sim.NewWorld(g.playfield(), g.spawner)
	g.player = newPlayer(g.conf.Player, cfg.ScreenW, cfg.ScreenH)
	g.world.SetPlayer(g.player)
}

// playfield returns the cull boundary: the screen extended by a margin on
// every side so meteors spawn above the visible field and die only after
// they have fully left it.
func (g *Game) playfield() sim.Bounds {
	margin := g.conf.Meteors.MaxSize + 2
	return sim.NewRect(
		-margin,
		-margin,
		float64(g.cfg.ScreenW)+2*margin,
		float64(g.cfg.ScreenH)+2*margin,
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.showDebug = !g.showDebug
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	applyInput(g.player, in)
	pairs := g.world.Tick()
	clampToScreen(g.player, g.cfg.ScreenW, g.cfg.ScreenH)

	// The collision pass only reports overlaps; resolving them is game
	// policy. A pair involving the ship ends the run, meteor-on-meteor
	// contact is ignored.
	for _, p := range pairs {
		if p.A == g.player || p.B == g.player {
			g.gameOver = true
			break
		}
	}

	g.score = g.tickCount / ticksPerPoint

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen at interpolation
// fraction alpha. Read-only: body state is untouched.
func (g *Game) Render(dst *core.Screen, alpha float64) {
	dst.Clear()

	g.world.EachRender(alpha, func(b *sim.Body, pos sim.Vec2) {
		if b == g.player {
			g.drawShip(dst, pos)
		} else {
			g.drawMeteor(dst, b, pos)
		}
	})

	if g.showDebug {
		g.drawDebugBounds(dst, alpha)
	}

	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawShip renders the player at its interpolated position.
func (g *Game) drawShip(dst *core.Screen, pos sim.Vec2) {
	x, y := int(pos.X), int(pos.Y)
	w, h := int(g.player.Width), int(g.player.Height)

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(x+dx, y+dy, shipBodyChar, core.ColorCyan)
		}
	}
	// Nose marker on the top row center
	dst.SetCell(x+w/2, y, shipNoseChar, core.ColorBrightWhite)
}

// drawMeteor renders a meteor as a filled disk at its interpolated
// position. Size picks the color: big rocks run hot.
func (g *Game) drawMeteor(dst *core.Screen, b *sim.Body, pos sim.Vec2) {
	radius := b.Width / 2
	cx := int(pos.X + radius)
	cy := int(pos.Y + radius)

	color := core.ColorGray
	if b.Width >= meteorLargeMin {
		color = core.ColorOrange
	}
	dst.DrawCircle(cx, cy, radius, meteorChar, color)
}

// drawDebugBounds overlays every body's collision shapes: the rect as a
// box outline and the complex decomposition as dotted disks.
func (g *Game) drawDebugBounds(dst *core.Screen, alpha float64) {
	g.world.EachRender(alpha, func(b *sim.Body, pos sim.Vec2) {
		rect := core.NewRect(int(pos.X), int(pos.Y), int(b.Width), int(b.Height))
		dst.DrawBox(rect)

		for _, c := range b.Complex() {
			// Shift the shape by the interpolation offset so the overlay
			// tracks the drawn position, not the committed one.
			cx := int(c.CenterX() + pos.X - b.Pos.X)
			cy := int(c.CenterY() + pos.Y - b.Pos.Y)
			dst.DrawCircle(cx, cy, c.Radius(), '·', core.ColorGreen)
		}
	})
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("meteors", func() registry.Game {
		return NewDefault()
	})
}
