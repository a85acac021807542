package main

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/bot"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("l, l;c;;move-right,a")
	require.NoError(t, err)
	assert.Equal(t, [][]core.Command{
		{core.MoveLeft, core.MoveLeft},
		{core.RotateCW},
		nil,
		{core.MoveRight, core.RotateCCW},
	}, moves)

	_, err = parseMoves("l;jump")
	assert.ErrorContains(t, err, "moves entry 2")
}

func TestSimulateIsDeterministic(t *testing.T) {
	moves, err := parseMoves("l;;c;r,r;;a;l")
	require.NoError(t, err)

	opts := simOptions{Seed: 99, Ticks: 400, Moves: moves}
	a, err := simulate(opts)
	require.NoError(t, err)
	b, err := simulate(opts)
	require.NoError(t, err)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged:\n%s\nvs\n%s", a.Board, b.Board)
	}
}

func TestSimulateAppliesMovesBeforeTick(t *testing.T) {
	// Tick 1 spawns; the left moves land on tick 2 and stop at the wall.
	moves, err := parseMoves(";l,l,l,l,l,l")
	require.NoError(t, err)

	res, err := simulate(simOptions{Seed: 5, Ticks: 2, Moves: moves})
	require.NoError(t, err)
	require.NotNil(t, res.Board.Active)

	minCol := core.Columns
	for _, c := range res.Board.Active.Cells {
		minCol = min(minCol, c.Col)
	}
	assert.Equal(t, 0, minCol)
	assert.GreaterOrEqual(t, res.Rejected, 2)
}

func TestSimulateRejectsMovesWithoutPiece(t *testing.T) {
	res, err := simulate(simOptions{Seed: 5, Ticks: 1, Moves: [][]core.Command{{core.MoveLeft}}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, 1, res.Board.Spawned)
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	res, err := simulate(simOptions{Seed: 1, Ticks: 100000})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Over)
	assert.True(t, res.Board.GameOver)
	assert.Less(t, res.Ticks, 100000)
}

func TestSimulateWithBot(t *testing.T) {
	b, err := bot.New(`
function decide(board)
  if board.active == nil then return nil end
  if board.tick % 2 == 0 then return "r" end
  return {"c"}
end`)
	require.NoError(t, err)
	defer b.Close()

	res, err := simulate(simOptions{Seed: 3, Ticks: 300, Bot: b})
	require.NoError(t, err)
	assert.Positive(t, res.Board.Spawned)
}

func TestPrintResult(t *testing.T) {
	res, err := simulate(simOptions{Seed: 8, Ticks: 10})
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, printResult(&text, res, false))
	lines := strings.Split(text.String(), "\n")
	assert.Len(t, lines[0], core.Columns)
	assert.Contains(t, text.String(), "seed 8  ticks 10")

	var js bytes.Buffer
	require.NoError(t, printResult(&js, res, true))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.EqualValues(t, 8, decoded["seed"])
	board := decoded["board"].(map[string]any)
	assert.Len(t, board["rows"], core.Rows)
}
