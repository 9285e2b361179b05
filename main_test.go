package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/pkg/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func execute(args ...string) error {
	root := rootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	return root.Execute()
}

func TestReplayCommand(t *testing.T) {
	t.Run("Replays the file given by the config flag", func(t *testing.T) {
		// Given: a config where X completes the A row
		path := writeConfig(t, `
log-level: info
moves:
  - square: A1
    token: X
  - square: A2
    token: X
  - square: A3
    token: X
`)

		// When: running the replay command with that file
		err := execute("replay", "--config", path)

		// Then: the command succeeds
		require.NoError(t, err)
	})

	t.Run("Each command tree reads its own flag", func(t *testing.T) {
		// Given: one valid config and one that rejects a move
		good := writeConfig(t, "moves:\n  - square: B2\n    token: O\n")
		bad := writeConfig(t, "moves:\n  - square: B2\n    token: O\n  - square: B2\n    token: X\n")

		// When: running both in turn
		errBad := execute("replay", "--config", bad)
		errGood := execute("replay", "--config", good)

		// Then: only the rejected move fails
		require.ErrorIs(t, errBad, game.ErrOccupiedSquare)
		require.ErrorIs(t, errBad, apperror.ErrMoveRejected)
		require.NoError(t, errGood)
	})

	t.Run("Error on missing config file", func(t *testing.T) {
		// When: the flag points at nothing
		err := execute("replay", "--config", filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the load error is returned instead of a panic
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("Error on config with no token", func(t *testing.T) {
		// Given: a move without a token
		path := writeConfig(t, "moves:\n  - square: C1\n")

		// When: running the replay command
		err := execute("replay", "--config", path)

		// Then: the move is reported as invalid
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}
