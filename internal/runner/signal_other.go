//go:build !unix

package runner

import "os"

// Processes on these platforms always report an exit code.
func signalOf(_ *os.ProcessState) (string, bool) {
	return "", false
}
