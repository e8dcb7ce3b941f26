//go:build unix

package execs

import (
	"os/exec"
	"syscall"
)

// exitCode maps death by signal to 128+signal, as shells do.
func exitCode(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return err.ExitCode()
}
