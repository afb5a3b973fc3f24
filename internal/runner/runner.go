// Package runner spawns shell commands with the caller's standard streams and
// reports whether they exited successfully.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/satococoa/taskrun/internal/shell"
)

// Task is a single command invocation.
type Task struct {
	Command string            // passed verbatim as the final interpreter argument
	Shell   shell.Config      // optional; empty means the platform default
	WorkDir string            // optional; empty means the current directory
	Env     map[string]string // optional; appended to the inherited environment
}

// Streams are the standard streams handed to the child. Nil fields mean the
// corresponding stream of the current process. *os.File values are passed to
// the child as-is, so interactive programs see the terminal directly. Other
// readers and writers are copied by os/exec, and the Runner serializes those
// copies when several children share them.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result is delivered by the asynchronous variant. Status is the zero value
// when Err is set.
type Result struct {
	Success bool
	Status  Status
	Err     error
}

// Runner executes tasks. A Runner is immutable after New and is safe for
// concurrent use; non-file streams are only touched under a lock.
type Runner struct {
	streams Streams
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithStreams overrides the streams given to children.
func WithStreams(s Streams) Option {
	return func(r *Runner) {
		r.streams = s
	}
}

// WithLogger sets the logger used for debug output. Without it the runner
// logs to slog.Default() as it is at call time.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	r.streams = r.streams.guard()
	return r
}

// RunSync runs task on the calling goroutine and blocks until the child
// exits. It returns true iff the child exited with code zero. A failure to
// start or wait for the child is returned as a *SpawnError.
func (r *Runner) RunSync(task Task) (bool, error) {
	status, err := r.Status(task)
	if err != nil {
		return false, err
	}
	return status.Success(), nil
}

// Run starts task on its own goroutine and returns immediately. The returned
// channel receives exactly one Result and is then closed.
func (r *Runner) Run(task Task) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		status, err := r.Status(task)
		ch <- Result{Success: err == nil && status.Success(), Status: status, Err: err}
	}()
	return ch
}

// Status runs task synchronously and reports how the child terminated.
func (r *Runner) Status(task Task) (Status, error) {
	exe, args := shell.Resolve(task.Shell)
	args = append(args, task.Command)

	// #nosec G204 - running caller-supplied commands is the purpose of this package
	cmd := exec.Command(exe, args...)
	cmd.Dir = task.WorkDir
	cmd.Env = buildEnv(task.Env)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	logger := r.log().With("run_id", uuid.NewString())
	logger.Debug("spawning task", "executable", exe, "args", args, "dir", task.WorkDir)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		logger.Debug("spawn failed", "error", err)
		return Status{}, &SpawnError{Executable: exe, Args: args, Op: OpStart, Err: err}
	}

	status, err := waitStatus(cmd)
	if err != nil {
		logger.Debug("wait failed", "error", err)
		return Status{}, &SpawnError{Executable: exe, Args: args, Op: OpWait, Err: err}
	}

	logger.Debug("task finished",
		"outcome", status.Outcome,
		"exit_code", status.ExitCode,
		"duration", time.Since(start))
	return status, nil
}

// waitStatus waits for cmd and folds exit failures into a Status. Only errors
// that are not about the child's exit are returned.
func waitStatus(cmd *exec.Cmd) (Status, error) {
	err := cmd.Wait()
	if err == nil {
		return statusOf(cmd.ProcessState), nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return statusOf(exitErr.ProcessState), nil
	}
	return Status{}, fmt.Errorf("wait for %s: %w", cmd.Path, err)
}

func buildEnv(extra map[string]string) []string {
	if len(extra) == 0 {
		return nil
	}
	env := os.Environ()
	for _, key := range slices.Sorted(maps.Keys(extra)) {
		env = append(env, fmt.Sprintf("%s=%s", key, extra[key]))
	}
	return env
}

func (r *Runner) stdin() io.Reader {
	if r.streams.Stdin != nil {
		return r.streams.Stdin
	}
	return os.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.streams.Stdout != nil {
		return r.streams.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.streams.Stderr != nil {
		return r.streams.Stderr
	}
	return os.Stderr
}

func (r *Runner) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}
