// Package bot runs a Lua script that chooses commands for the active piece.
//
// A script defines a global function decide(board). board is a table with
// the fields tick, phase, spawned, game_over, rows (1-based array of row
// strings, '#' locked, '@' active, '.' empty) and active (nil or a table
// with variant and a 1-based cells array of {col=, row=}). decide returns
// nil, a single command name, or an array of command names; names are
// those accepted by core.ParseCommand.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// DefaultBudget bounds a single decide call.
const DefaultBudget = 250 * time.Millisecond

// ErrNoDecide is returned when a script does not define decide.
var ErrNoDecide = errors.New("bot: script does not define decide(board)")

// Bot owns a Lua state. It is not safe for concurrent use.
type Bot struct {
	state  *lua.LState
	decide *lua.LFunction
	budget time.Duration
}

// New loads script and looks up its decide function.
func New(script string) (*Bot, error) {
	L := lua.NewState()
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("bot: load script: %w", err)
	}
	fn, ok := L.GetGlobal("decide").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNoDecide
	}
	return &Bot{state: L, decide: fn, budget: DefaultBudget}, nil
}

// SetBudget changes the per-call time limit. Zero disables it.
func (b *Bot) SetBudget(d time.Duration) {
	b.budget = d
}

// Decide calls the script with the board and returns the parsed commands.
func (b *Bot) Decide(s core.Snapshot) ([]core.Command, error) {
	ctx := context.Background()
	if b.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.budget)
		defer cancel()
	}
	b.state.SetContext(ctx)
	defer b.state.RemoveContext()

	err := b.state.CallByParam(lua.P{
		Fn:      b.decide,
		NRet:    1,
		Protect: true,
	}, b.boardTable(s))
	if err != nil {
		return nil, fmt.Errorf("bot: decide at tick %d: %w", s.Tick, err)
	}
	ret := b.state.Get(-1)
	b.state.Pop(1)

	return parseResult(ret)
}

// Close releases the Lua state.
func (b *Bot) Close() {
	b.state.Close()
}

func (b *Bot) boardTable(s core.Snapshot) *lua.LTable {
	t := b.state.NewTable()
	t.RawSetString("tick", lua.LNumber(s.Tick))
	t.RawSetString("phase", lua.LString(s.Phase.String()))
	t.RawSetString("spawned", lua.LNumber(s.Spawned))
	t.RawSetString("game_over", lua.LBool(s.GameOver))
	t.RawSetString("width", lua.LNumber(core.Columns))
	t.RawSetString("height", lua.LNumber(core.Rows))

	rows := b.state.CreateTable(len(s.Rows), 0)
	for i, r := range s.Rows {
		rows.RawSetInt(i+1, lua.LString(r))
	}
	t.RawSetString("rows", rows)

	if s.Active != nil {
		active := b.state.NewTable()
		active.RawSetString("variant", lua.LString(s.Active.Variant.String()))
		cells := b.state.CreateTable(len(s.Active.Cells), 0)
		for i, c := range s.Active.Cells {
			cell := b.state.NewTable()
			cell.RawSetString("col", lua.LNumber(c.Col))
			cell.RawSetString("row", lua.LNumber(c.Row))
			cells.RawSetInt(i+1, cell)
		}
		active.RawSetString("cells", cells)
		t.RawSetString("active", active)
	}
	return t
}

func parseResult(v lua.LValue) ([]core.Command, error) {
	switch v := v.(type) {
	case *lua.LNilType:
		return nil, nil
	case lua.LString:
		c, err := core.ParseCommand(string(v))
		if err != nil {
			return nil, fmt.Errorf("bot: %w", err)
		}
		return []core.Command{c}, nil
	case *lua.LTable:
		n := v.Len()
		cmds := make([]core.Command, 0, n)
		for i := 1; i <= n; i++ {
			s, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				return nil, fmt.Errorf("bot: result[%d] is %s, expected string", i, v.RawGetInt(i).Type())
			}
			c, err := core.ParseCommand(string(s))
			if err != nil {
				return nil, fmt.Errorf("bot: result[%d]: %w", i, err)
			}
			cmds = append(cmds, c)
		}
		return cmds, nil
	default:
		return nil, fmt.Errorf("bot: decide returned %s", v.Type())
	}
}
