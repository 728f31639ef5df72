//go:build windows

package shell

import (
	"syscall"

	"github.com/core-tools/jobshell/pkg/errors"
)

const signalQueueDepth = 16

const sigContinue = syscall.Signal(0)

// Job control needs SIGTSTP/SIGCHLD semantics that Windows does not
// have; installation fails fatally rather than running half-blind.
func (s *Shell) installRelay() error {
	return errors.NewUnsupportedError("job-control signals are not supported on Windows", nil)
}

func (s *Shell) relayLoop() {
}
