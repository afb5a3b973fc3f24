package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Common error messages with helpful context and suggestions

// Usage Errors
func CommandRequired() error {
	msg := `command is required

Usage: taskrun run [--shell <arg>]... [--] <command...>

Examples:
  • taskrun run 'go test ./...'
  • taskrun run --shell bash --shell -lc -- 'echo $BASH_VERSION'
  • taskrun run -- make build`
	return errors.New(msg)
}

func TaskNameRequired() error {
	msg := `task name is required

Usage: taskrun task <name>...

Tip: Run 'taskrun list' to see configured tasks`
	return errors.New(msg)
}

func TaskNotFound(name string, availableTasks []string) error {
	msg := fmt.Sprintf("task '%s' not found", name)

	if len(availableTasks) > 0 {
		msg += "\n\nAvailable tasks:"
		for _, task := range availableTasks {
			msg += fmt.Sprintf("\n  • %s", task)
		}
	} else {
		msg += "\n\nNo tasks are configured."
	}

	msg += "\n\nTip: Add tasks under 'tasks:' in .taskrun.yml"
	return errors.New(msg)
}

// Execution Errors
func SpawnFailed(executable string, spawnError error) error {
	msg := fmt.Sprintf("failed to start '%s'", executable)

	switch {
	case errors.Is(spawnError, exec.ErrNotFound) || errors.Is(spawnError, fs.ErrNotExist):
		msg += `

Cause: Shell executable not found
Solutions:
  • Check the --shell value or the 'shell' setting in .taskrun.yml
  • Check the SHELL (or COMSPEC on Windows) environment variable
  • Use an absolute path to the shell`
	case errors.Is(spawnError, fs.ErrPermission):
		msg += `

Cause: Permission denied
Solutions:
  • Ensure the shell executable has execute permission
  • Check access to the working directory`
	}

	return fmt.Errorf("%s\n\nOriginal error: %w", msg, spawnError)
}

func CommandFailed(command, status string) error {
	cleanCommand := strings.TrimSpace(command)
	if cleanCommand == "" {
		cleanCommand = "(empty command)"
	}

	return fmt.Errorf("command failed: %s\n\nStatus: %s", cleanCommand, status)
}

func TasksFailed(names []string) error {
	msg := fmt.Sprintf("%d task(s) failed:", len(names))
	for _, name := range names {
		msg += fmt.Sprintf("\n  • %s", name)
	}
	return errors.New(msg)
}

// Configuration Errors
func ConfigNotFound(startDir string) error {
	msg := fmt.Sprintf(`no configuration file found in %s or its parents

Solution: Run 'taskrun init' to create .taskrun.yml`, startDir)
	return errors.New(msg)
}

func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "failed to parse") {
		msg += `

Cause: Syntax error in configuration file
Solutions:
  • Check YAML indentation (or TOML table syntax for .taskrun.toml)
  • Run 'taskrun init' in an empty directory to see a working example`
	} else if strings.Contains(parseErrorStr, "invalid") {
		msg += `

Cause: Configuration is not valid
Solution: Every task needs a 'run' field, and a 'shell' list must start with an executable`
	} else if errors.Is(parseError, fs.ErrPermission) {
		msg += `

Cause: Permission denied reading configuration file
Solution: Check file permissions with 'ls -la .taskrun.yml'`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return errors.New(msg)
}

func ConfigAlreadyExists(configPath string) error {
	msg := fmt.Sprintf(`configuration file already exists: %s

Options:
  • Edit the existing file manually
  • Delete it and run 'taskrun init' again`, configPath)
	return errors.New(msg)
}

// File System Errors
func DirectoryAccessFailed(operation, path string, originalError error) error {
	msg := fmt.Sprintf("failed to %s directory: %s", operation, path)

	if errors.Is(originalError, fs.ErrPermission) {
		msg += `

Cause: Permission denied
Solutions:
  • Check directory permissions
  • Ensure you own the directory`
	} else if errors.Is(originalError, fs.ErrNotExist) {
		msg += `

Cause: Directory does not exist
Solutions:
  • Check the path spelling
  • Use an absolute path`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", originalError)
	return errors.New(msg)
}
