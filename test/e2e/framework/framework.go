package framework

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const (
	dirPerm  = 0755
	filePerm = 0600
)

type TestEnvironment struct {
	t       *testing.T
	tmpDir  string
	binary  string
	cleanup []func()
}

func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tmpDir := t.TempDir()
	env := &TestEnvironment{
		t:       t,
		tmpDir:  tmpDir,
		cleanup: []func(){},
	}

	env.buildTaskrun()

	return env
}

func (e *TestEnvironment) buildTaskrun() {
	e.t.Helper()

	binary := filepath.Join(e.tmpDir, "taskrun")
	if prebuilt := os.Getenv("TASKRUN_E2E_BINARY"); prebuilt != "" {
		binary = prebuilt
		if _, err := os.Stat(binary); err != nil {
			e.t.Fatalf("Specified taskrun binary not found: %s", binary)
		}
	} else {
		projectRoot := e.findProjectRoot()
		cmd := exec.Command("go", "build", "-o", binary, "./cmd/taskrun")
		cmd.Dir = projectRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			e.t.Fatalf("Failed to build taskrun binary: %v\nOutput: %s", err, output)
		}
	}

	binary = filepath.Clean(binary)
	if !filepath.IsAbs(binary) {
		absPath, err := filepath.Abs(binary)
		if err != nil {
			e.t.Fatalf("Failed to get absolute path for binary: %v", err)
		}
		binary = absPath
	}

	e.binary = binary
}

func (e *TestEnvironment) findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			e.t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}

func (e *TestEnvironment) writeFile(path, content string) {
	e.t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// RunTaskrun runs the binary in the environment's temp dir.
func (e *TestEnvironment) RunTaskrun(args ...string) (string, error) {
	return e.run(e.tmpDir, "", args...)
}

// RunTaskrunWithStdin runs the binary with stdin connected to the given text.
func (e *TestEnvironment) RunTaskrunWithStdin(stdin string, args ...string) (string, error) {
	return e.run(e.tmpDir, stdin, args...)
}

func (e *TestEnvironment) run(dir, stdin string, args ...string) (string, error) {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+e.tmpDir, "SHELL=/bin/sh")
	cmd.Stdin = strings.NewReader(stdin)

	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (e *TestEnvironment) TmpDir() string {
	return e.tmpDir
}

func (e *TestEnvironment) CreateProject(name string) *TestProject {
	e.t.Helper()

	dir := filepath.Join(e.tmpDir, name)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory: %v", err)
	}

	return &TestProject{
		env:  e,
		path: dir,
	}
}

func (e *TestEnvironment) WriteFile(path, content string) {
	e.writeFile(path, content)
}

func (e *TestEnvironment) Cleanup() {
	for _, fn := range e.cleanup {
		fn()
	}
}

type TestProject struct {
	env  *TestEnvironment
	path string
}

func (p *TestProject) RunTaskrun(args ...string) (string, error) {
	return p.env.run(p.path, "", args...)
}

func (p *TestProject) Path() string {
	return p.path
}

func (p *TestProject) WriteConfig(content string) {
	p.env.writeFile(filepath.Join(p.path, ".taskrun.yml"), content)
}

func (p *TestProject) WriteFile(name, content string) {
	p.env.writeFile(filepath.Join(p.path, name), content)
}

func (p *TestProject) HasFile(name string) bool {
	_, err := os.Stat(filepath.Join(p.path, name))
	return err == nil
}

func (p *TestProject) ReadFile(name string) string {
	content, err := os.ReadFile(filepath.Join(p.path, name))
	if err != nil {
		p.env.t.Fatalf("Failed to read file %s: %v", name, err)
	}
	return string(content)
}

// ExitCode returns the process exit code carried by err, 0 for nil and -1
// when err is not an exit error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
