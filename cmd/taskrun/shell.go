package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/taskrun/internal/shell"
)

// NewShellCommand creates the shell command definition
func NewShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Show the shell invocation a command would use",
		Description: "Prints the executable and leading arguments taskrun resolves, one per line. " +
			"Pass --shell values to see how an override resolves, or a command to see the full argv.",
		UsageText: "taskrun shell [--shell <arg>]... [command...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "shell",
				Aliases: []string{"s"},
				Usage:   "Shell executable, then its leading arguments (repeatable)",
			},
		},
		Action: shellCommand,
	}
}

func shellCommand(_ context.Context, cmd *cli.Command) error {
	w := outWriter(cmd)

	cfg := shell.Config(cmd.StringSlice("shell"))
	argv := []string(shell.Select(cfg, shell.Default()))
	if cmd.Args().Present() {
		argv = cfg.Argv(strings.Join(cmd.Args().Slice(), " "))
	}

	for _, arg := range argv {
		fmt.Fprintln(w, strconv.Quote(arg))
	}
	return nil
}
