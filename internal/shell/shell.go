// Package shell resolves which command interpreter a task runs under.
package shell

import (
	"os"
	"runtime"
)

const (
	posixShellEnv   = "SHELL"
	windowsShellEnv = "COMSPEC"

	posixFallback   = "/bin/sh"
	windowsFallback = "cmd.exe"

	posixCommandFlag   = "-c"
	windowsCommandFlag = "/c"
)

// Config is an interpreter invocation: the executable followed by its fixed
// leading arguments. The command string is appended after them.
type Config []string

// IsEmpty reports whether the config names no executable.
func (c Config) IsEmpty() bool {
	return len(c) == 0
}

// Argv returns the full argument vector used to run command under c.
func (c Config) Argv(command string) []string {
	exe, args := Resolve(c)
	argv := make([]string, 0, len(args)+2)
	argv = append(argv, exe)
	argv = append(argv, args...)
	return append(argv, command)
}

// Resolve splits cfg into the executable and its leading arguments. An empty
// cfg resolves to the platform default. Nothing is added to a caller-supplied
// config, and the executable is not checked for existence.
func Resolve(cfg Config) (executable string, args []string) {
	if cfg.IsEmpty() {
		cfg = Default()
	}
	args = make([]string, len(cfg)-1)
	copy(args, cfg[1:])
	return cfg[0], args
}

// Select returns the first non-empty candidate, or nil if there is none.
// Callers list candidates from most to least specific.
func Select(candidates ...Config) Config {
	for _, c := range candidates {
		if !c.IsEmpty() {
			return c
		}
	}
	return nil
}

// Default returns the platform default interpreter, read from the environment
// at call time.
func Default() Config {
	return DefaultFor(runtime.GOOS, os.Getenv)
}

// DefaultFor returns the default interpreter for goos. On windows this is
// %COMSPEC% /c (cmd.exe when unset), everywhere else $SHELL -c (/bin/sh when
// unset). An empty variable counts as unset.
func DefaultFor(goos string, getenv func(string) string) Config {
	if goos == "windows" {
		return Config{envOr(getenv, windowsShellEnv, windowsFallback), windowsCommandFlag}
	}
	return Config{envOr(getenv, posixShellEnv, posixFallback), posixCommandFlag}
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
