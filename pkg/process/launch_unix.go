//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// setupProcessAttributes configures Unix-specific process attributes
func setupProcessAttributes(cmd *exec.Cmd) {
	// Place the child in a new process group of its own. Terminal
	// signals aimed at the shell's group then never reach the child
	// directly; the shell relays them to -pgid explicitly, which
	// covers the entire process tree (leader + all its children).
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
