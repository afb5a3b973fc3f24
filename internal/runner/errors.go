package runner

import (
	"errors"
	"fmt"
)

// Spawn stages reported by SpawnError.
const (
	OpStart = "start"
	OpWait  = "wait"
)

// SpawnError means the operating system could not start or wait for the
// child. A command that runs and exits non-zero is never a SpawnError.
type SpawnError struct {
	Executable string
	Args       []string
	Op         string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsSpawnError reports whether err wraps a *SpawnError.
func IsSpawnError(err error) bool {
	var spawnErr *SpawnError
	return errors.As(err, &spawnErr)
}
