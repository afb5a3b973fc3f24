package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/satococoa/taskrun/internal/config"
)

// Display constants
const (
	nameHeaderDashes = 4
	minDescWidth     = 20
)

// Variables to allow mocking in tests
var getTerminalWidth = func() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 //nolint:mnd // Default terminal width
	}
	return width
}

// NewListCommand creates the list command definition
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Aliases:     []string{"ls"},
		Usage:       "List configured tasks",
		Description: "Shows every task in .taskrun.yml with its description, or its command when it has none.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only display task names",
			},
		},
		Action: listCommand,
	}
}

func listCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	return listTasks(outWriter(cmd), cfg, cmd.Bool("quiet"), getTerminalWidth())
}

func listTasks(w io.Writer, cfg *config.Config, quiet bool, width int) error {
	names := cfg.TaskNames()

	if quiet {
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	if len(names) == 0 {
		fmt.Fprintln(w, "No tasks configured")
		return nil
	}

	nameWidth := nameHeaderDashes
	for _, name := range names {
		nameWidth = max(nameWidth, len(name))
	}
	nameWidth += 2
	descWidth := max(width-nameWidth-1, minDescWidth)

	fmt.Fprintf(w, "%-*s %s\n", nameWidth, "TASK", "DESCRIPTION")
	fmt.Fprintf(w, "%-*s %s\n", nameWidth, strings.Repeat("-", nameHeaderDashes), strings.Repeat("-", len("DESCRIPTION")))

	for _, name := range names {
		task := cfg.Tasks[name]
		desc := task.Description
		if desc == "" {
			desc = task.Run
		}
		desc = strings.ReplaceAll(desc, "\n", " ")
		fmt.Fprintf(w, "%-*s %s\n", nameWidth, name, truncate(desc, descWidth))
	}

	return nil
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
