package process

import (
	"os"
	"os/exec"

	"github.com/core-tools/jobshell/pkg/errors"
	"github.com/core-tools/jobshell/pkg/logging"
)

// LaunchConfig describes one external command to launch
type LaunchConfig struct {
	Path string   // program name or path, resolved against PATH
	Args []string // arguments, not including the program name
}

// Job identifies a launched process group. The leader's pid doubles as
// the process-group id, so signals addressed to the group reach the
// whole job.
type Job struct {
	PID  int
	PGID int
}

// Launch starts the configured program as the leader of a new process
// group with the shell's stdio inherited.
//
// The program is resolved before starting: a missing or non-executable
// program yields a not-found error and no child is ever created, which
// stands in for the classic fork-then-failed-exec path. A start failure
// on a resolved program is a process error; callers treat it as fatal
// because a shell that cannot spawn is not useful.
func Launch(config LaunchConfig, logger logging.Logger) (Job, error) {
	if err := ValidateLaunchConfig(config); err != nil {
		return Job{}, err
	}

	path, err := exec.LookPath(config.Path)
	if err != nil {
		return Job{}, errors.NewNotFoundError("command not found", err).
			WithContext("command", config.Path)
	}

	logger.Debugf("Launching process, path: %s, args: %v", path, config.Args)

	cmd := exec.Command(path, config.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Platform-specific setup is handled in launch_unix.go / launch_windows.go
	setupProcessAttributes(cmd)

	if err := cmd.Start(); err != nil {
		return Job{}, errors.NewProcessError("failed to start the process", err).
			WithContext("command", config.Path)
	}

	pid := cmd.Process.Pid
	logger.Infof("Launched process, pid: %d, command: %s", pid, config.Path)

	// The leader was placed into its own group, so pgid == pid. The
	// exec.Cmd is deliberately not waited on here: reaping is the
	// signal relay's job, via the non-blocking wait loop.
	return Job{PID: pid, PGID: pid}, nil
}

// GroupFromPGID rebuilds a Job handle for an already-tracked process
// group, e.g. the suspended job a resume request targets.
func GroupFromPGID(pgid int) Job {
	return Job{PID: pgid, PGID: pgid}
}
