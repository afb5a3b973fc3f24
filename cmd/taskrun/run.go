package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/taskrun/internal/errors"
	"github.com/satococoa/taskrun/internal/runner"
	"github.com/satococoa/taskrun/internal/shell"
)

// taskRunner is the part of runner.Runner the commands depend on.
type taskRunner interface {
	Status(task runner.Task) (runner.Status, error)
	Run(task runner.Task) <-chan runner.Result
}

// NewRunCommand creates the run command definition.
func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run a command through a shell",
		UsageText: "taskrun run [--shell <arg>]... [--dir <path>] [--async] [--] <command...>",
		Description: "Arguments are joined with single spaces into one command string, which is passed " +
			"verbatim as the last argument of the shell. Repeat --shell to give the executable and " +
			"its leading arguments, e.g. --shell bash --shell=-lc. Without --shell the platform " +
			"default is used.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "shell",
				Aliases: []string{"s"},
				Usage:   "Shell executable, then its leading arguments (repeatable)",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Usage:   "Run the command in this directory",
			},
			&cli.BoolFlag{
				Name:  "async",
				Usage: "Run on a background goroutine and wait for its result",
			},
		},
		Action: runCommand,
	}
}

func runCommand(_ context.Context, cmd *cli.Command) error {
	return runCommandWithRunner(cmd, runner.New())
}

func runCommandWithRunner(cmd *cli.Command, r taskRunner) error {
	command := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(command) == "" {
		return errors.CommandRequired()
	}

	task := runner.Task{
		Command: command,
		Shell:   cmd.StringSlice("shell"),
		WorkDir: cmd.String("dir"),
	}

	if cmd.Bool("async") {
		res := <-r.Run(task)
		return commandError(task, res.Success, res.Status.String(), res.Err)
	}

	status, err := r.Status(task)
	return commandError(task, status.Success(), status.String(), err)
}

// commandError maps one finished invocation to the CLI's error, or nil.
func commandError(task runner.Task, success bool, status string, err error) error {
	if err != nil {
		exe, _ := shell.Resolve(task.Shell)
		return errors.SpawnFailed(exe, err)
	}
	if !success {
		return errors.CommandFailed(task.Command, status)
	}
	return nil
}
