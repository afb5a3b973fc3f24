package runner

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTaskSync(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("SHELL", "/bin/sh")

	t.Run("should map exit codes to a boolean", func(t *testing.T) {
		ok, err := RunTaskSync("exit 0", nil)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = RunTaskSync("exit 1", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should use the given shell verbatim", func(t *testing.T) {
		// Given: a shell config whose executable is `test` without -c
		// When: the command "-n" is appended
		ok, err := RunTaskSync("-n", []string{"test", "x"})

		// Then: `test x -n` is not a valid expression, so a -c was not injected
		// in front of the command
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = RunTaskSync("x", []string{"test", "-n"})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should return a spawn error for a missing shell", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing-shell")

		ok, err := RunTaskSync("exit 0", []string{missing, "-c"})

		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, IsSpawnError(err))
	})
}

func TestRunTask(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("SHELL", "/bin/sh")

	t.Run("should deliver the same outcome as the sync variant", func(t *testing.T) {
		for command, want := range map[string]bool{"exit 0": true, "exit 3": false} {
			res := <-RunTask(command, nil)

			require.NoError(t, res.Err, command)
			assert.Equal(t, want, res.Success, command)
		}
	})

	t.Run("should report spawn errors on the channel", func(t *testing.T) {
		if _, err := exec.LookPath("taskrun-no-such-shell"); err == nil {
			t.Skip("unexpected executable on PATH")
		}

		res := <-RunTask("exit 0", []string{"taskrun-no-such-shell"})

		require.Error(t, res.Err)
		assert.False(t, res.Success)
		assert.ErrorIs(t, res.Err, exec.ErrNotFound)
	})
}
