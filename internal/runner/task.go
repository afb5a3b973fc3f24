package runner

var defaultRunner = New()

// RunTask runs command asynchronously under shellCfg (the platform default
// when empty) with the process's own standard streams.
func RunTask(command string, shellCfg []string) <-chan Result {
	return defaultRunner.Run(Task{Command: command, Shell: shellCfg})
}

// RunTaskSync runs command under shellCfg (the platform default when empty)
// and blocks until it exits.
func RunTaskSync(command string, shellCfg []string) (bool, error) {
	return defaultRunner.RunSync(Task{Command: command, Shell: shellCfg})
}
