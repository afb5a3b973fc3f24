package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandRequired(t *testing.T) {
	err := CommandRequired()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "command is required")
	assert.Contains(t, err.Error(), "Usage: taskrun run")
	assert.Contains(t, err.Error(), "Examples:")
}

func TestTaskNameRequired(t *testing.T) {
	err := TaskNameRequired()

	assert.Contains(t, err.Error(), "task name is required")
	assert.Contains(t, err.Error(), "taskrun list")
}

func TestTaskNotFound(t *testing.T) {
	t.Run("with available tasks", func(t *testing.T) {
		err := TaskNotFound("deploy", []string{"build", "test"})

		assert.Contains(t, err.Error(), "task 'deploy' not found")
		assert.Contains(t, err.Error(), "Available tasks:")
		assert.Contains(t, err.Error(), "• build")
		assert.Contains(t, err.Error(), "• test")
	})

	t.Run("without tasks", func(t *testing.T) {
		err := TaskNotFound("deploy", nil)

		assert.Contains(t, err.Error(), "No tasks are configured.")
		assert.NotContains(t, err.Error(), "Available tasks:")
	})
}

func TestSpawnFailed(t *testing.T) {
	tests := []struct {
		name     string
		cause    error
		expected []string
	}{
		{
			name:     "not on PATH",
			cause:    &exec.Error{Name: "fish", Err: exec.ErrNotFound},
			expected: []string{"failed to start 'fish'", "Shell executable not found", "SHELL"},
		},
		{
			name:     "missing path",
			cause:    &fs.PathError{Op: "fork/exec", Path: "/no/shell", Err: fs.ErrNotExist},
			expected: []string{"Shell executable not found"},
		},
		{
			name:     "permission denied",
			cause:    &fs.PathError{Op: "fork/exec", Path: "/tmp/x", Err: fs.ErrPermission},
			expected: []string{"Cause: Permission denied"},
		},
		{
			name:     "other failure",
			cause:    stderrors.New("resource temporarily unavailable"),
			expected: []string{"Original error: resource temporarily unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SpawnFailed("fish", tt.cause)

			for _, want := range tt.expected {
				assert.Contains(t, err.Error(), want)
			}
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestCommandFailed(t *testing.T) {
	err := CommandFailed("  exit 7 ", "exited with code 7")
	assert.Equal(t, "command failed: exit 7\n\nStatus: exited with code 7", err.Error())

	err = CommandFailed("", "killed by signal: terminated")
	assert.Contains(t, err.Error(), "(empty command)")
}

func TestTasksFailed(t *testing.T) {
	err := TasksFailed([]string{"lint", "test"})

	assert.Contains(t, err.Error(), "2 task(s) failed:")
	assert.Contains(t, err.Error(), "• lint")
	assert.Contains(t, err.Error(), "• test")
}

func TestConfigErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := ConfigNotFound("/work/project")
		assert.Contains(t, err.Error(), "/work/project")
		assert.Contains(t, err.Error(), "taskrun init")
	})

	t.Run("parse failure", func(t *testing.T) {
		err := ConfigLoadFailed(".taskrun.yml", fmt.Errorf("failed to parse config file: bad indent"))
		assert.Contains(t, err.Error(), "Syntax error")
		assert.Contains(t, err.Error(), "Original error: failed to parse config file")
	})

	t.Run("validation failure", func(t *testing.T) {
		err := ConfigLoadFailed(".taskrun.yml", fmt.Errorf("invalid configuration: task requires 'run' field"))
		assert.Contains(t, err.Error(), "Configuration is not valid")
	})

	t.Run("permission failure", func(t *testing.T) {
		err := ConfigLoadFailed(".taskrun.yml", fmt.Errorf("failed to read config file: %w", fs.ErrPermission))
		assert.Contains(t, err.Error(), "Permission denied")
	})

	t.Run("already exists", func(t *testing.T) {
		err := ConfigAlreadyExists("/work/.taskrun.yml")
		assert.Contains(t, err.Error(), "configuration file already exists: /work/.taskrun.yml")
	})
}

func TestDirectoryAccessFailed(t *testing.T) {
	err := DirectoryAccessFailed("access current", ".", fs.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to access current directory: .")
	assert.Contains(t, err.Error(), "Directory does not exist")

	err = DirectoryAccessFailed("read", "/root", fs.ErrPermission)
	assert.Contains(t, err.Error(), "Permission denied")
}
