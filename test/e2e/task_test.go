package e2e

import (
	"testing"

	"github.com/satococoa/taskrun/test/e2e/framework"
)

func TestInitCommand(t *testing.T) {
	env := framework.NewTestEnvironment(t)
	defer env.Cleanup()

	project := env.CreateProject("init-test")

	output, err := project.RunTaskrun("init")
	framework.AssertNoError(t, err)
	framework.AssertOutputContains(t, output, "Configuration file created")
	framework.AssertFileExists(t, project, ".taskrun.yml")

	output, err = project.RunTaskrun("init")
	framework.AssertExitCode(t, err, 1)
	framework.AssertOutputContains(t, output, "already exists")
}

func TestTaskCommand(t *testing.T) {
	skipOnWindows(t)
	env := framework.NewTestEnvironment(t)
	defer env.Cleanup()

	project := env.CreateProject("tasks")
	project.WriteFile("sub/marker", "")
	project.WriteFile(".env", "GREETING=hello\n")
	project.WriteConfig(`version: "1.0"
shell: [/bin/sh, -c]
tasks:
  greet:
    description: Print the greeting
    run: echo "$GREETING $NAME"
    env_file: .env
    env:
      NAME: taskrun
  where:
    run: ls
    work_dir: sub
  fail:
    run: exit 3
  broken:
    run: exit 0
    shell: [/nonexistent/taskrun-shell, -c]
`)

	t.Run("List", func(t *testing.T) {
		output, err := project.RunTaskrun("list")
		framework.AssertNoError(t, err)
		framework.AssertMultipleStringsInOutput(t, output, []string{"TASK", "greet", "Print the greeting", "where", "fail"})
	})

	t.Run("RunsWithEnv", func(t *testing.T) {
		output, err := project.RunTaskrun("task", "greet")
		framework.AssertNoError(t, err)
		framework.AssertOutputContains(t, output, "hello taskrun")
	})

	t.Run("RunsInWorkDir", func(t *testing.T) {
		output, err := project.RunTaskrun("task", "where")
		framework.AssertNoError(t, err)
		framework.AssertOutputContains(t, output, "marker")
	})

	t.Run("StopsOnFailure", func(t *testing.T) {
		output, err := project.RunTaskrun("task", "fail", "greet")
		framework.AssertExitCode(t, err, 1)
		framework.AssertOutputContains(t, output, "exited with code 3")
		framework.AssertOutputNotContains(t, output, "hello taskrun")
	})

	t.Run("ParallelReportsFailures", func(t *testing.T) {
		output, err := project.RunTaskrun("task", "--parallel", "greet", "fail")
		framework.AssertExitCode(t, err, 1)
		framework.AssertOutputContains(t, output, "hello taskrun")
		framework.AssertOutputContains(t, output, "1 task(s) failed")
	})

	t.Run("ParallelKeepsSpawnErrors", func(t *testing.T) {
		output, err := project.RunTaskrun("task", "--parallel", "greet", "broken")
		framework.AssertExitCode(t, err, 1)
		framework.AssertMultipleStringsInOutput(t, output, []string{
			"1 task(s) failed",
			"task 'broken'",
			"Shell executable not found",
			"no such file or directory",
		})
	})

	t.Run("UnknownTask", func(t *testing.T) {
		output, err := project.RunTaskrun("task", "deploy")
		framework.AssertExitCode(t, err, 1)
		framework.AssertOutputContains(t, output, "task 'deploy' not found")
		framework.AssertHelpfulError(t, output)
	})

	t.Run("NoConfig", func(t *testing.T) {
		empty := env.CreateProject("empty")
		output, err := empty.RunTaskrun("list")
		framework.AssertExitCode(t, err, 1)
		framework.AssertOutputContains(t, output, "taskrun init")
	})
}
