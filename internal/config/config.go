package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"github.com/satococoa/taskrun/internal/runner"
	"github.com/satococoa/taskrun/internal/shell"
)

// Config represents the taskrun project configuration
type Config struct {
	Version string          `yaml:"version" toml:"version"`
	Shell   []string        `yaml:"shell,omitempty" toml:"shell,omitempty"`
	Tasks   map[string]Task `yaml:"tasks,omitempty" toml:"tasks,omitempty"`

	// Directory holding the config file; relative paths resolve against it
	dir string `yaml:"-" toml:"-"`
}

// Task represents a named command
type Task struct {
	Run         string            `yaml:"run" toml:"run"`
	Description string            `yaml:"description,omitempty" toml:"description,omitempty"`
	Shell       []string          `yaml:"shell,omitempty" toml:"shell,omitempty"`
	WorkDir     string            `yaml:"work_dir,omitempty" toml:"work_dir,omitempty"`
	Env         map[string]string `yaml:"env,omitempty" toml:"env,omitempty"`
	EnvFile     string            `yaml:"env_file,omitempty" toml:"env_file,omitempty"`
}

const (
	ConfigFileName        = ".taskrun.yml"
	TOMLConfigFileName    = ".taskrun.toml"
	CurrentVersion        = "1.0"
	configFilePermissions = 0o600
)

// ErrNotFound is returned when no configuration file exists.
var ErrNotFound = errors.New("configuration file not found")

// LoadConfig loads configuration from dir. The YAML file wins when both
// formats are present.
func LoadConfig(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, TOMLConfigFileName} {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return LoadFile(path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to access config file %s: %w", path, err)
		}
	}
	return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// FindConfig looks for a configuration file in startDir and its parents.
func FindConfig(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	for {
		cfg, err := LoadConfig(dir)
		if err == nil || !errors.Is(err, ErrNotFound) {
			return cfg, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
		}
		dir = parent
	}
}

// LoadFile loads a configuration file, choosing the format by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	config.dir = filepath.Dir(absPath)

	return &config, nil
}

// SaveConfig saves configuration to .taskrun.yml in dir
func SaveConfig(dir string, config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(configPath, data, configFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	if err := validateShell(c.Shell); err != nil {
		return err
	}

	for _, name := range c.TaskNames() {
		task := c.Tasks[name]
		if err := task.Validate(); err != nil {
			return fmt.Errorf("invalid task '%s': %w", name, err)
		}
	}

	return nil
}

// Validate validates a single task
func (t *Task) Validate() error {
	if t.Run == "" {
		return fmt.Errorf("task requires 'run' field")
	}
	return validateShell(t.Shell)
}

func validateShell(s []string) error {
	if len(s) > 0 && s[0] == "" {
		return fmt.Errorf("shell executable must not be empty")
	}
	return nil
}

// Dir returns the directory the configuration was loaded from, or "" for a
// config built in memory.
func (c *Config) Dir() string {
	return c.dir
}

// TaskNames returns the configured task names in sorted order
func (c *Config) TaskNames() []string {
	return slices.Sorted(maps.Keys(c.Tasks))
}

// Task builds the runner task for name. The task's own shell wins over the
// project shell; with neither, the platform default applies.
func (c *Config) Task(name string) (runner.Task, error) {
	t, ok := c.Tasks[name]
	if !ok {
		return runner.Task{}, fmt.Errorf("task '%s' is not defined", name)
	}

	env, err := c.taskEnv(t)
	if err != nil {
		return runner.Task{}, fmt.Errorf("task '%s': %w", name, err)
	}

	return runner.Task{
		Command: t.Run,
		Shell:   shell.Select(t.Shell, c.Shell),
		WorkDir: c.resolvePath(t.WorkDir),
		Env:     env,
	}, nil
}

// taskEnv merges env_file values with inline env; inline values win.
func (c *Config) taskEnv(t Task) (map[string]string, error) {
	env := map[string]string{}
	if t.EnvFile != "" {
		fromFile, err := godotenv.Read(c.resolvePath(t.EnvFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		maps.Copy(env, fromFile)
	}
	maps.Copy(env, t.Env)

	if len(env) == 0 {
		return nil, nil
	}
	return env, nil
}

func (c *Config) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}
