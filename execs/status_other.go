//go:build !unix

package execs

import "os/exec"

func exitCode(err *exec.ExitError) int {
	return err.ExitCode()
}
