//go:build windows

package process

import (
	"syscall"

	"github.com/core-tools/jobshell/pkg/errors"
)

// Job control requires POSIX process groups and signals.

func (j Job) Signal(sig syscall.Signal) error {
	return errors.NewUnsupportedError("process-group signalling is not supported on Windows", nil)
}

func (j Job) Alive() (bool, error) {
	return false, errors.NewUnsupportedError("process liveness probing is not supported on Windows", nil)
}
