//go:build windows

package process

import (
	"os/exec"
)

// setupProcessAttributes is a no-op on Windows: there are no POSIX
// process groups, and the signal layer in signal_windows.go rejects
// job control outright.
func setupProcessAttributes(cmd *exec.Cmd) {
}
