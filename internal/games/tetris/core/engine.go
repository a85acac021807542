package core

import "fmt"

// Phase describes what the next Tick will do.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Step identifies the work a Tick performed.
type Step int

const (
	StepSpawned Step = iota
	StepCleared
	StepLocked
	StepAdvanced
	StepHalted
)

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepSpawned:
		return "spawned"
	case StepCleared:
		return "cleared"
	case StepLocked:
		return "locked"
	case StepAdvanced:
		return "advanced"
	case StepHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// CommandOutcome records whether a queued command was applied.
type CommandOutcome struct {
	Command  Command
	Accepted bool
}

// StepResult describes one Tick.
type StepResult struct {
	Tick     uint64
	Step     Step
	Commands []CommandOutcome
	// Rows holds the cleared row indices when Step is StepCleared.
	Rows []int
	// Err is set when this tick ended the game.
	Err error
}

// Engine is a single playfield simulation. It is not safe for concurrent
// use; callers serialize all calls.
type Engine struct {
	grid      Grid
	active    Piece
	hasActive bool
	queue     commandQueue
	src       Source
	tick      uint64
	spawned   int
	over      error
	listeners []Listener
}

// New creates an engine with an empty grid that draws variants from src.
func New(src Source) *Engine {
	if src == nil {
		panic("core: nil random source")
	}
	return &Engine{src: src}
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) emit(ev Event) {
	ev.Tick = e.tick
	for _, l := range e.listeners {
		l.OnEvent(ev)
	}
}

// Reset clears the playfield, the queue and any game-over condition. The
// random source keeps its position.
func (e *Engine) Reset() {
	e.grid = Grid{}
	e.active = Piece{}
	e.hasActive = false
	e.queue.reset()
	e.tick = 0
	e.spawned = 0
	e.over = nil
}

// Resize notifies listeners that the viewport changed. Gameplay state is
// not affected by window geometry.
func (e *Engine) Resize(width, height int) {
	e.emit(Event{Type: EventResized, Width: width, Height: height})
}

// SpawnIfEmpty places a new random piece when none is active.
// It returns ErrSpawnBlocked (wrapped) when the spawn cells are occupied,
// which ends the game.
func (e *Engine) SpawnIfEmpty() error {
	if e.over != nil {
		return ErrGameOver
	}
	if e.hasActive {
		return nil
	}
	return e.spawn()
}

func (e *Engine) spawn() error {
	v := Variants[e.src.Intn(variantCount)]
	p := newPiece(v)
	if !fits(&e.grid, p.Cells) {
		err := fmt.Errorf("spawn %s: %w", v, ErrSpawnBlocked)
		e.gameOver(err)
		return err
	}
	e.active = p
	e.hasActive = true
	e.spawned++
	e.emit(Event{Type: EventSpawned, Variant: v})
	return nil
}

func (e *Engine) gameOver(err error) {
	e.halt(err)
	e.emit(Event{Type: EventGameOver, Err: err})
}

// halt stops the engine without notifying listeners.
func (e *Engine) halt(err error) {
	e.over = err
	e.queue.reset()
}

// Submit queues a command for the next Tick.
func (e *Engine) Submit(c Command) error {
	if e.over != nil {
		return ErrGameOver
	}
	if !e.queue.push(c) {
		return ErrQueueFull
	}
	return nil
}

// Pending returns the number of queued commands.
func (e *Engine) Pending() int {
	return e.queue.len()
}

// Apply performs c immediately and reports whether it was accepted.
func (e *Engine) Apply(c Command) bool {
	switch c {
	case MoveLeft:
		return e.Translate(-1)
	case MoveRight:
		return e.Translate(1)
	case RotateCW:
		return e.Rotate(Clockwise)
	case RotateCCW:
		return e.Rotate(CounterClockwise)
	default:
		return false
	}
}

// Translate shifts the active piece one column. offset must be -1 or +1.
// The move is rejected, leaving the piece unchanged, if any shifted cell
// would leave the field or overlap a locked cell.
func (e *Engine) Translate(offset int) bool {
	if offset != -1 && offset != 1 {
		panic(fmt.Sprintf("core: invalid translate offset %d", offset))
	}
	if !e.hasActive || e.over != nil {
		return false
	}
	target := e.active.Shifted(offset, 0)
	if !fits(&e.grid, target) {
		return false
	}
	e.active.Cells = target
	return true
}

// Rotate turns the active piece about its origin cell. The O piece accepts
// the request without moving. Other pieces are left unchanged if any
// rotated cell would be invalid.
func (e *Engine) Rotate(dir Direction) bool {
	if !e.hasActive || e.over != nil {
		return false
	}
	target, ok := e.active.Rotated(dir)
	if !ok {
		return true
	}
	if !fits(&e.grid, target) {
		return false
	}
	e.active.Cells = target
	return true
}

// Tick applies queued commands in submission order and then performs one
// step: spawn, clear, lock or advance.
func (e *Engine) Tick() StepResult {
	if e.over != nil {
		return StepResult{Tick: e.tick, Step: StepHalted, Err: e.over}
	}
	e.tick++
	res := StepResult{Tick: e.tick}

	for {
		c, ok := e.queue.pop()
		if !ok {
			break
		}
		res.Commands = append(res.Commands, CommandOutcome{Command: c, Accepted: e.Apply(c)})
	}

	switch {
	case !e.hasActive:
		res.Step = StepSpawned
		if err := e.spawn(); err != nil {
			res.Step = StepHalted
			res.Err = err
		}
	case e.clearFullRows(&res):
		res.Step = StepCleared
	case e.blockedBelow():
		e.lock()
		res.Step = StepLocked
	default:
		e.advance()
		res.Step = StepAdvanced
	}
	return res
}

// clearFullRows removes every full row and reports whether any existed.
func (e *Engine) clearFullRows(res *StepResult) bool {
	rows := e.grid.FullRows()
	if len(rows) == 0 {
		return false
	}
	e.grid.ClearRows(rows)
	res.Rows = rows

	// Block-out is resolved before any listener sees the cleared grid.
	blockOut := e.hasActive && !fits(&e.grid, e.active.Cells)
	if blockOut {
		e.active = Piece{}
		e.hasActive = false
		e.halt(ErrBlockOut)
		res.Err = ErrBlockOut
	}
	e.emit(Event{Type: EventRowsCleared, Rows: rows})
	if blockOut {
		e.emit(Event{Type: EventGameOver, Err: ErrBlockOut})
	}
	return true
}

func (e *Engine) blockedBelow() bool {
	return !fits(&e.grid, e.active.Shifted(0, 1))
}

func (e *Engine) lock() {
	for _, p := range e.active.Cells {
		e.grid.Lock(p)
	}
	v := e.active.Variant
	e.active = Piece{}
	e.hasActive = false
	e.emit(Event{Type: EventLocked, Variant: v})
}

func (e *Engine) advance() {
	e.active.Cells = e.active.Shifted(0, 1)
}

// Phase reports what the next Tick will do.
func (e *Engine) Phase() Phase {
	switch {
	case e.over != nil:
		return PhaseGameOver
	case !e.hasActive:
		return PhaseIdle
	case len(e.grid.FullRows()) > 0:
		return PhaseClearing
	case e.blockedBelow():
		return PhaseLocking
	default:
		return PhaseFalling
	}
}

// Active returns the active piece, if any.
func (e *Engine) Active() (Piece, bool) {
	return e.active, e.hasActive
}

// Grid returns a copy of the settled cells.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Over returns the reason the game ended, or nil while it is running.
func (e *Engine) Over() error {
	return e.over
}

// Spawned returns the number of pieces spawned since the last Reset.
func (e *Engine) Spawned() int {
	return e.spawned
}

// Ticks returns the number of completed steps since the last Reset.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
