package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/bot"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

var (
	flagTicks  int
	flagScript string
	flagMoves  string
	flagJSON   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine headless and print the board",
	Long: `Runs the engine without a terminal UI, one engine tick per step, and
prints the final board.

Commands come from --moves, a semicolon-separated list with one entry per
tick; each entry is a comma-separated list of l, r, c, a (or their long
names). They can also come from a Lua script (--script) that defines
decide(board). Commands are queued before the tick that applies them.

Examples:
  tetris simulate --seed 7 --ticks 100
  tetris simulate --moves "l,l;c;;r,r" --seed 1
  tetris simulate --script ./bot.lua --ticks 2000 --json`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 200, "Maximum engine ticks to run")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Lua script that picks commands")
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Per-tick commands, e.g. \"l,l;c;;r\"")
	simulateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

// simOptions configures a headless run.
type simOptions struct {
	Seed   int64
	Ticks  int
	Moves  [][]core.Command
	Bot    *bot.Bot
	Logger *log.Logger
}

// simResult summarizes a headless run.
type simResult struct {
	Seed     int64         `json:"seed"`
	Ticks    int           `json:"ticks"`
	Lines    int           `json:"lines"`
	Rejected int           `json:"rejected"`
	Over     string        `json:"game_over,omitempty"`
	Board    core.Snapshot `json:"board"`
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), "simulate")
	if err != nil {
		return err
	}
	defer closeLog()

	opts := simOptions{
		Seed:   flagSeed,
		Ticks:  flagTicks,
		Logger: logger,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if flagMoves != "" {
		opts.Moves, err = parseMoves(flagMoves)
		if err != nil {
			return err
		}
	}
	if flagScript != "" {
		src, err := os.ReadFile(flagScript)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		b, err := bot.New(string(src))
		if err != nil {
			return err
		}
		defer b.Close()
		opts.Bot = b
	}

	res, err := simulate(opts)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), res, flagJSON)
}

// parseMoves parses "l,l;c;;r" into per-tick command lists.
func parseMoves(s string) ([][]core.Command, error) {
	ticks := strings.Split(s, ";")
	out := make([][]core.Command, len(ticks))
	for i, t := range ticks {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		for _, name := range strings.Split(t, ",") {
			c, err := core.ParseCommand(strings.TrimSpace(name))
			if err != nil {
				return nil, fmt.Errorf("moves entry %d: %w", i+1, err)
			}
			out[i] = append(out[i], c)
		}
	}
	return out, nil
}

// simulate runs the engine until opts.Ticks ticks pass or the game ends.
func simulate(opts simOptions) (simResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := core.New(core.NewSeededSource(opts.Seed))
	res := simResult{Seed: opts.Seed}
	e.Subscribe(core.ListenerFunc(func(ev core.Event) {
		switch ev.Type {
		case core.EventRowsCleared:
			res.Lines += len(ev.Rows)
			logger.Debug("rows cleared", "tick", ev.Tick, "rows", ev.Rows)
		case core.EventGameOver:
			logger.Info("game over", "tick", ev.Tick, "reason", ev.Err)
		}
	}))

	for i := range opts.Ticks {
		var cmds []core.Command
		if i < len(opts.Moves) {
			cmds = append(cmds, opts.Moves[i]...)
		}
		if opts.Bot != nil {
			decided, err := opts.Bot.Decide(e.Snapshot())
			if err != nil {
				return res, err
			}
			cmds = append(cmds, decided...)
		}
		for _, c := range cmds {
			if err := e.Submit(c); err != nil {
				logger.Warn("command dropped", "tick", i+1, "command", c, "error", err)
				res.Rejected++
			}
		}

		step := e.Tick()
		res.Ticks++
		for _, o := range step.Commands {
			if !o.Accepted {
				res.Rejected++
			}
		}
		logger.Debug("tick", "tick", step.Tick, "step", step.Step, "commands", len(step.Commands))

		if err := e.Over(); err != nil {
			res.Over = err.Error()
			break
		}
	}

	res.Board = e.Snapshot()
	return res, nil
}

func printResult(w io.Writer, res simResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if _, err := fmt.Fprintln(w, res.Board.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nseed %d  ticks %d  pieces %d  lines %d  rejected %d\n",
		res.Seed, res.Ticks, res.Board.Spawned, res.Lines, res.Rejected)
	if err == nil && res.Over != "" {
		_, err = fmt.Fprintf(w, "game over: %s\n", res.Over)
	}
	return err
}
