package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/audio"
	"github.com/vovakirdan/tui-tetris/internal/platform/spectate"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagConfig   string
	flagSound    bool
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, a/d   - Move
  Up, w, x          - Rotate clockwise
  z                 - Rotate counter-clockwise
  P/Space           - Pause
  R                 - Restart (after game over)
  Esc (hold)        - Quit
  Q/Ctrl+C          - Quit now
  Ctrl+S            - Screenshot
  ?                 - Help

Config is read from --config, then ~/.tetris/configs/tetris.yaml, then
./configs/tetris.yaml, falling back to built-in defaults.

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml
  tetris play --sound
  tetris play --spectate :8080`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound cues (overrides config)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve the board to websocket spectators on this address")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alt screen owns stdout; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "tetris")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}
	if flagSpectate != "" {
		cfg.Spectate.Address = flagSpectate
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     seed,
	}

	game := tetris.New(cfg)

	if cfg.Sound.Enabled {
		player := audio.NewPlayer(cfg.Sound.Volume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			game.Subscribe(player)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var spectateErr chan error
	if cfg.Spectate.Address != "" {
		hub := spectate.NewHub(logger.WithPrefix("spectate"))
		game.AddFrameListener(hub)
		spectateErr = make(chan error, 1)
		go func() {
			spectateErr <- hub.Serve(ctx, cfg.Spectate.Address)
		}()
	}

	logger.Info("starting", "seed", seed, "fps", cfg.Timing.TickRate)
	runErr := tui.Run(game, rc, logger)

	cancel()
	if spectateErr != nil {
		if err := <-spectateErr; err != nil {
			logger.Error("spectator server", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
