package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/satococoa/taskrun/internal/config"
	"github.com/satococoa/taskrun/internal/errors"
	"github.com/satococoa/taskrun/internal/runner"
)

// NewTaskCommand creates the task command definition.
func NewTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "task",
		Usage:     "Run tasks defined in .taskrun.yml",
		UsageText: "taskrun task [--parallel] <name>...",
		Description: "Runs the named tasks in order and stops at the first failure. With --parallel " +
			"all tasks start at once and every failure is reported.",
		ShellComplete: completeTaskNames,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "Start all tasks concurrently",
			},
		},
		Action: taskCommand,
	}
}

func taskCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	return taskCommandWithRunner(cmd, outWriter(cmd), cfg, runner.New())
}

type namedTask struct {
	name string
	task runner.Task
}

func taskCommandWithRunner(cmd *cli.Command, w io.Writer, cfg *config.Config, r taskRunner) error {
	names := cmd.Args().Slice()
	if len(names) == 0 {
		return errors.TaskNameRequired()
	}

	tasks := make([]namedTask, 0, len(names))
	for _, name := range names {
		if _, ok := cfg.Tasks[name]; !ok {
			return errors.TaskNotFound(name, cfg.TaskNames())
		}
		task, err := cfg.Task(name)
		if err != nil {
			return err
		}
		tasks = append(tasks, namedTask{name: name, task: task})
	}

	if cmd.Bool("parallel") {
		return runParallel(w, tasks, r)
	}
	return runSequential(w, tasks, r)
}

func runSequential(w io.Writer, tasks []namedTask, r taskRunner) error {
	for _, nt := range tasks {
		fmt.Fprintf(w, "▶ %s: %s\n", nt.name, nt.task.Command)

		status, err := r.Status(nt.task)
		if cmdErr := commandError(nt.task, status.Success(), status.String(), err); cmdErr != nil {
			return fmt.Errorf("task '%s': %w", nt.name, cmdErr)
		}
	}
	return nil
}

func runParallel(w io.Writer, tasks []namedTask, r taskRunner) error {
	results := make([]<-chan runner.Result, len(tasks))
	for i, nt := range tasks {
		fmt.Fprintf(w, "▶ %s: %s\n", nt.name, nt.task.Command)
		results[i] = r.Run(nt.task)
	}

	var (
		failed []string
		causes []error
	)
	for i, ch := range results {
		res := <-ch
		nt := tasks[i]
		if err := commandError(nt.task, res.Success, res.Status.String(), res.Err); err != nil {
			failed = append(failed, nt.name)
			causes = append(causes, fmt.Errorf("task '%s': %w", nt.name, err))
			fmt.Fprintf(w, "✗ %s\n", nt.name)
			continue
		}
		fmt.Fprintf(w, "✓ %s\n", nt.name)
	}

	if len(failed) > 0 {
		return stderrors.Join(append([]error{errors.TasksFailed(failed)}, causes...)...)
	}
	return nil
}

// completeTaskNames provides task name completion
func completeTaskNames(_ context.Context, cmd *cli.Command) {
	cfg, err := loadProjectConfig()
	if err != nil {
		return
	}

	w := outWriter(cmd)
	for _, name := range cfg.TaskNames() {
		fmt.Fprintln(w, name)
	}
}
