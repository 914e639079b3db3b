package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-ricrob/slidesolver/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBoard(t *testing.T, w *board.Walls) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "walls.txt")
	require.NoError(t, os.WriteFile(name, []byte(w.String()), 0o600))
	return name
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())
	name := writeBoard(t, board.NewWalls(4))

	tests := []struct {
		name   string
		args   []string
		output []string
	}{
		{"single slide", []string{"--robots", "0,0;3,3", "--robot", "0", "--goal", "3,0"},
			[]string{"moves: 1", "0:(0,0)->(3,0)"}},
		{"already there", []string{"--robots", "0,0;3,3", "--robot", "1", "--goal", "3,3"},
			[]string{"moves: 0"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append([]string{"--board", name, "--log-format", "json"}, test.args...)
			require.NoError(t, run(args, &stdout, &stderr), stderr.String())
			lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
			require.Len(t, lines, len(test.output))
			assert.True(t, strings.HasPrefix(lines[0], test.output[0]+" states: "), lines[0])
			assert.Equal(t, test.output[1:], lines[1:])
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	name := writeBoard(t, board.NewWalls(4))

	tests := map[string][]string{
		"missing board": {"--robots", "0,0", "--goal", "1,1"},
		"bad goal":      {"--board", name, "--robots", "0,0", "--goal", "1"},
		"no robots":     {"--board", name, "--goal", "1,1"},
		"off board":     {"--board", name, "--robots", "0,0", "--goal", "9,9"},
		"bad robot":     {"--board", name, "--robots", "0,0", "--robot", "2", "--goal", "1,1"},
		"unreachable":   {"--board", name, "--robots", "0,0", "--goal", "1,1"},
		"no file":       {"--board", "missing.txt", "--robots", "0,0", "--goal", "1,1"},
		"unknown flag":  {"--color", "red"},
		"board width":   {"--board", name, "--board-width", "16", "--robots", "0,0;3,3", "--goal", "3,0"},
		"robot count":   {"--board", name, "--robot-count", "5", "--robots", "0,0;3,3", "--goal", "3,0"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Error(t, run(args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunSizeFromInput(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SLIDESOLVER_SOLVER_ROBOT_COUNT", "9")
	t.Setenv("SLIDESOLVER_SOLVER_BOARD_WIDTH", "16")
	name := writeBoard(t, board.NewWalls(4))

	var stdout, stderr bytes.Buffer
	args := []string{"--board", name, "--robots", "0,0;3,3;3,0", "--robot", "0", "--goal", "0,3"}
	require.NoError(t, run(args, &stdout, &stderr), stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "moves: 1 "), stdout.String())
}
