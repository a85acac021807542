package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagFPS, flagSeed, flagLogLevel, flagLogFile = 0, 0, "info", ""
	flagTicks, flagScript, flagMoves, flagJSON = 200, "", "", false
	flagConfig, flagSound, flagSpectate = "", false, ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimulateCommandPrintsBoard(t *testing.T) {
	out, err := execute(t, "simulate", "--seed", "4", "--ticks", "12", "--moves", ";l;c")
	require.NoError(t, err)
	assert.Contains(t, out, "seed 4  ticks 12")
}

func TestCommandErrorsAreReturned(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "tetris.log")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad moves", []string{"simulate", "--moves", "l;jump"}, "moves entry 2"},
		{"missing script", []string{"simulate", "--script", filepath.Join(dir, "nope.lua")}, "reading script"},
		{"bad log level", []string{"simulate", "--log-level", "loud"}, "--log-level"},
		{"missing config", []string{"play", "--log-file", logFile, "--config", filepath.Join(dir, "nope.yaml")}, "config: read"},
		{"missing serve config", []string{"serve", "--config", filepath.Join(dir, "nope.yaml")}, "config: read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	// The log file was opened before the config failed and closed on return.
	_, err := os.Stat(logFile)
	assert.NoError(t, err)
}

func TestSimulateCommandRunsScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bot.lua")
	require.NoError(t, os.WriteFile(script, []byte(`function decide(board) return "l" end`), 0o600))

	out, err := execute(t, "simulate", "--seed", "2", "--ticks", "30", "--script", script, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"seed": 2`)
}
