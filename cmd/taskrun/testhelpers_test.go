package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/satococoa/taskrun/internal/runner"
)

// parseTestCommand runs def under a minimal root with a no-op action so its
// flags and args are parsed exactly as the real binary would parse them.
func parseTestCommand(t *testing.T, def *cli.Command, args []string) *cli.Command {
	t.Helper()

	def.Action = func(_ context.Context, _ *cli.Command) error { return nil }
	app := &cli.Command{
		Name:                      "taskrun",
		DisableSliceFlagSeparator: true,
		Commands:                  []*cli.Command{def},
	}

	cmdArgs := append([]string{"taskrun", def.Name}, args...)
	require.NoError(t, app.Run(context.Background(), cmdArgs))
	return def
}

// captureRunner returns a real runner whose children write into a buffer.
func captureRunner() (*runner.Runner, *bytes.Buffer) {
	var out bytes.Buffer
	r := runner.New(runner.WithStreams(runner.Streams{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &out,
	}))
	return r, &out
}

type mockTaskRunner struct {
	executed []runner.Task
	statuses map[string]runner.Status
	errs     map[string]error
}

func (m *mockTaskRunner) Status(task runner.Task) (runner.Status, error) {
	m.executed = append(m.executed, task)
	if err := m.errs[task.Command]; err != nil {
		return runner.Status{}, err
	}
	return m.statuses[task.Command], nil
}

func (m *mockTaskRunner) Run(task runner.Task) <-chan runner.Result {
	status, err := m.Status(task)
	ch := make(chan runner.Result, 1)
	ch <- runner.Result{Success: err == nil && status.Success(), Status: status, Err: err}
	close(ch)
	return ch
}
