package bot

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func spawnedSnapshot(t *testing.T) core.Snapshot {
	t.Helper()
	e := core.New(rand.New(rand.NewSource(1)))
	e.Tick()
	s := e.Snapshot()
	require.NotNil(t, s.Active)
	return s
}

func TestDecideList(t *testing.T) {
	b, err := New(`
function decide(board)
  if board.active == nil then return nil end
  return {"l", "move-left", "rotate-cw"}
end`)
	require.NoError(t, err)
	defer b.Close()

	cmds, err := b.Decide(spawnedSnapshot(t))
	require.NoError(t, err)
	assert.Equal(t, []core.Command{core.MoveLeft, core.MoveLeft, core.RotateCW}, cmds)
}

func TestDecideSeesBoard(t *testing.T) {
	b, err := New(`
function decide(board)
  assert(#board.rows == board.height)
  assert(string.len(board.rows[1]) == board.width)
  assert(#board.active.cells == 4)
  if board.active.cells[1].col > 0 then
    return "a"
  end
  return "r"
end`)
	require.NoError(t, err)
	defer b.Close()

	cmds, err := b.Decide(spawnedSnapshot(t))
	require.NoError(t, err)
	assert.Equal(t, []core.Command{core.RotateCCW}, cmds)
}

func TestDecideNilWithoutActivePiece(t *testing.T) {
	b, err := New(`function decide(board) if board.active == nil then return nil end return "l" end`)
	require.NoError(t, err)
	defer b.Close()

	e := core.New(rand.New(rand.NewSource(1)))
	cmds, err := b.Decide(e.Snapshot())
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestScriptErrors(t *testing.T) {
	_, err := New(`this is not lua`)
	assert.Error(t, err)

	_, err = New(`x = 1`)
	assert.ErrorIs(t, err, ErrNoDecide)

	b, err := New(`function decide(board) return {"jump"} end`)
	require.NoError(t, err)
	defer b.Close()
	_, err = b.Decide(spawnedSnapshot(t))
	assert.ErrorContains(t, err, "jump")
}

func TestRuntimeErrorAndBudget(t *testing.T) {
	b, err := New(`function decide(board) error("boom") end`)
	require.NoError(t, err)
	_, err = b.Decide(spawnedSnapshot(t))
	assert.ErrorContains(t, err, "boom")
	b.Close()

	b, err = New(`function decide(board) while true do end end`)
	require.NoError(t, err)
	defer b.Close()
	b.SetBudget(20 * time.Millisecond)
	_, err = b.Decide(spawnedSnapshot(t))
	assert.Error(t, err)
}

func TestBotDrivesEngine(t *testing.T) {
	b, err := New(`
function decide(board)
  if board.active == nil then return nil end
  return {"l"}
end`)
	require.NoError(t, err)
	defer b.Close()

	e := core.New(rand.New(rand.NewSource(3)))
	for range 500 {
		cmds, err := b.Decide(e.Snapshot())
		require.NoError(t, err)
		for _, c := range cmds {
			_ = e.Submit(c)
		}
		e.Tick()
		if e.Over() != nil {
			break
		}
	}
	assert.Greater(t, e.Snapshot().Spawned, 1)
}
