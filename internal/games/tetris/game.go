// Package tetris drives the playfield engine for the platform. It owns the
// driver clock, maps input actions to engine commands, applies gravity at
// the configured interval and renders the board into a screen buffer.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// ID and Title identify the game to the platform.
const (
	ID    = "tetris"
	Title = "Tetris"
)

// FrameListener receives a snapshot after every engine tick.
type FrameListener interface {
	OnFrame(Snapshot)
}

// binding maps a platform action to an engine command.
type binding struct {
	action  platformcore.Action
	command core.Command
}

var bindings = [...]binding{
	{platformcore.ActionLeft, core.MoveLeft},
	{platformcore.ActionRight, core.MoveRight},
	{platformcore.ActionRotateCW, core.RotateCW},
	{platformcore.ActionRotateCCW, core.RotateCCW},
}

// Game runs one playfield at the driver tick rate.
type Game struct {
	cfg    config.TetrisConfig
	rng    *rand.Rand
	engine *core.Engine
	seed   int64

	tick           uint64
	gravityTicks   int
	gravityCounter int
	repeat         repeatLimiter
	quitHold       holdTracker
	lastStep       core.StepResult

	lines  int
	paused bool
	quit   bool

	// Screen dimensions
	screenW int
	screenH int
	layout  layout

	listeners []core.Listener
	frames    []FrameListener
}

// New creates a game using cfg for timing, input and theme. Call Reset
// before the first Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset starts a new game. The engine draws its pieces from a math/rand
// source seeded with cfg.Seed, so equal seeds and inputs replay exactly.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if cfg.TickRate > 0 {
		g.cfg.Timing.TickRate = cfg.TickRate
	}

	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = core.New(g.rng)
	g.engine.Subscribe(core.ListenerFunc(g.onEvent))
	for _, l := range g.listeners {
		g.engine.Subscribe(l)
	}

	g.tick = 0
	g.gravityCounter = 0
	g.gravityTicks = g.cfg.GravityTicks()
	g.repeat = newRepeatLimiter(g.cfg.RepeatTicks())
	g.quitHold = newHoldTracker(g.cfg.QuitHoldTicks(), g.cfg.RepeatTicks())
	g.lastStep = core.StepResult{}
	g.lines = 0
	g.paused = false
	g.quit = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout = computeLayout(cfg.ScreenW, cfg.ScreenH)
}

// Subscribe forwards engine events to l, across restarts.
func (g *Game) Subscribe(l core.Listener) {
	g.listeners = append(g.listeners, l)
	if g.engine != nil {
		g.engine.Subscribe(l)
	}
}

// AddFrameListener registers f to receive a snapshot after each engine tick.
func (g *Game) AddFrameListener(f FrameListener) {
	g.frames = append(g.frames, f)
}

func (g *Game) onEvent(ev core.Event) {
	if ev.Type == core.EventRowsCleared {
		g.lines += len(ev.Rows)
	}
}

// Step advances the driver by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	held := g.quitHold.observe(in.Has(platformcore.ActionHoldQuit), g.tick)
	if in.Has(platformcore.ActionQuit) || held {
		g.quit = true
	}
	if g.quit {
		return platformcore.StepResult{State: g.State()}
	}

	if g.engine.Over() != nil {
		if in.Has(platformcore.ActionRestart) {
			g.restart()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
		g.repeat.reset()
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	for _, b := range bindings {
		if in.Has(b.action) && g.repeat.allow(b.command, g.tick) {
			g.engine.Apply(b.command)
		}
	}

	g.gravityCounter++
	if g.gravityCounter >= g.gravityTicks {
		g.gravityCounter = 0
		g.lastStep = g.engine.Tick()
		g.publish()
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) restart() {
	g.Reset(platformcore.RuntimeConfig{
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: g.cfg.Timing.TickRate,
		Seed:     g.rng.Int63(),
	})
}

func (g *Game) publish() {
	if len(g.frames) == 0 {
		return
	}
	s := g.Snapshot()
	for _, f := range g.frames {
		f.OnFrame(s)
	}
}

// Resize recomputes the layout for a new window size. Gameplay is unaffected.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = computeLayout(width, height)
	g.engine.Resize(width, height)
}

// State returns the current driver status.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Pieces:   g.engine.Spawned(),
		Lines:    g.lines,
		GameOver: g.engine.Over() != nil,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Engine exposes the underlying engine for tools and tests.
func (g *Game) Engine() *core.Engine {
	return g.engine
}
