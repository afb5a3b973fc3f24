package runner

import (
	"fmt"
	"os"
)

// Outcome classifies how a child process terminated.
type Outcome int

const (
	// Succeeded means the child exited normally with code zero.
	Succeeded Outcome = iota
	// Exited means the child exited normally with a non-zero code.
	Exited
	// Signaled means the child was terminated by a signal and has no exit code.
	Signaled
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Exited:
		return "exited"
	case Signaled:
		return "signaled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Status describes a terminated child. ExitCode is -1 when Outcome is
// Signaled; Signal is set only in that case.
type Status struct {
	Outcome  Outcome
	ExitCode int
	Signal   string
}

// Success reports whether the child exited with code zero.
func (s Status) Success() bool {
	return s.Outcome == Succeeded
}

func (s Status) String() string {
	switch s.Outcome {
	case Succeeded:
		return "succeeded"
	case Signaled:
		return fmt.Sprintf("killed by signal: %s", s.Signal)
	default:
		return fmt.Sprintf("exited with code %d", s.ExitCode)
	}
}

func statusOf(ps *os.ProcessState) Status {
	if ps.Success() {
		return Status{Outcome: Succeeded}
	}
	if sig, ok := signalOf(ps); ok {
		return Status{Outcome: Signaled, ExitCode: -1, Signal: sig}
	}
	return Status{Outcome: Exited, ExitCode: ps.ExitCode()}
}
