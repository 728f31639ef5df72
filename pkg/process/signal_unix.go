//go:build !windows

package process

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/core-tools/jobshell/pkg/errors"
)

// Signal sends sig to the job's entire process group (negative-pid
// kill targets the group)
func (j Job) Signal(sig syscall.Signal) error {
	if j.PGID <= 0 {
		return errors.NewValidationError("job has no process group", nil)
	}
	if err := unix.Kill(-j.PGID, sig); err != nil {
		return errors.NewSignalError("failed to signal process group", err).
			WithContext("pgid", j.PGID).
			WithContext("signal", int(sig))
	}
	return nil
}

// Alive reports whether the job's leader still exists.
//
// On Unix, FindProcess always succeeds regardless of whether the
// process exists; signal 0 probes for actual existence. EPERM means
// the process exists but belongs to another user.
func (j Job) Alive() (bool, error) {
	if j.PID <= 0 {
		return false, errors.NewValidationError("job has no pid", nil)
	}

	process, err := os.FindProcess(j.PID)
	if err != nil {
		return false, err
	}

	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true, nil
	}
	if err.Error() == "os: process already finished" {
		return false, nil
	}
	errno, ok := err.(syscall.Errno)
	if !ok {
		return false, err
	}
	switch errno {
	case syscall.ESRCH:
		return false, nil
	case syscall.EPERM:
		return true, nil
	}
	return false, err
}
