package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/taskrun/internal/config"
	"github.com/satococoa/taskrun/internal/errors"
)

const configTemplate = `# taskrun configuration
version: "1.0"

# Shell used by every task unless a task sets its own.
# Omit it to use $SHELL -c (or %COMSPEC% /c on Windows).
# shell: [bash, -lc]

tasks:
  hello:
    description: Print a greeting
    run: echo "Hello from taskrun"

  # More examples (commented out):
  # test:
  #   run: go test ./...
  # lint:
  #   run: golangci-lint run
  #   shell: [bash, -c]
  #   work_dir: tools
  #   env:
  #     GOFLAGS: -mod=mod
  #   env_file: .env
`

// NewInitCommand creates the init command definition
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:        "init",
		Usage:       "Initialize configuration file",
		Description: "Creates a .taskrun.yml configuration file in the current directory with example tasks.",
		Action:      initCommand,
	}
}

func initCommand(_ context.Context, cmd *cli.Command) error {
	cwd, err := projectGetwd()
	if err != nil {
		return errors.DirectoryAccessFailed("access current", ".", err)
	}

	return initConfig(outWriter(cmd), cwd)
}

func initConfig(w io.Writer, dir string) error {
	configPath := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.ConfigAlreadyExists(configPath)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0o600); err != nil {
		return errors.DirectoryAccessFailed("write to", dir, err)
	}

	fmt.Fprintf(w, "Configuration file created: %s\n", configPath)
	fmt.Fprintln(w, "Edit this file to add your tasks, then run 'taskrun task <name>'.")
	return nil
}
