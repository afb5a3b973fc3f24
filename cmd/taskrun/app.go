package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "taskrun",
		Usage: "Run shell commands with inherited standard streams",
		Description: "taskrun runs a command string through a shell ($SHELL -c, or %COMSPEC% /c on Windows), " +
			"connects it to your terminal, and exits non-zero when the command fails. " +
			"Named tasks can be kept in .taskrun.yml.",
		Version:                   versionString(),
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging on stderr",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			NewRunCommand(),
			NewTaskCommand(),
			NewListCommand(),
			NewInitCommand(),
			NewShellCommand(),
		},
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	slog.SetDefault(newLogger(errWriter(cmd), cmd.Bool("verbose")))
	return ctx, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
