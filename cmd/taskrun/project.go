package main

import (
	stderrors "errors"
	"log/slog"
	"os"

	"github.com/satococoa/taskrun/internal/config"
	"github.com/satococoa/taskrun/internal/errors"
)

// Variables to allow mocking in tests
var (
	projectGetwd = os.Getwd
)

// loadProjectConfig finds the configuration for the current directory.
func loadProjectConfig() (*config.Config, error) {
	cwd, err := projectGetwd()
	if err != nil {
		return nil, errors.DirectoryAccessFailed("access current", ".", err)
	}

	cfg, err := config.FindConfig(cwd)
	if err != nil {
		if stderrors.Is(err, config.ErrNotFound) {
			return nil, errors.ConfigNotFound(cwd)
		}
		return nil, errors.ConfigLoadFailed(cwd, err)
	}

	slog.Debug("loaded configuration", "dir", cfg.Dir(), "tasks", len(cfg.Tasks))
	return cfg, nil
}
