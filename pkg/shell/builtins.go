package shell

import (
	"fmt"

	"github.com/core-tools/jobshell/pkg/parse"
	"github.com/core-tools/jobshell/pkg/process"
)

// runBuiltin dispatches shell-internal commands. It reports whether the
// first token named a built-in; anything else falls through to the
// launcher.
func (s *Shell) runBuiltin(cmd parse.Command) (bool, error) {
	switch cmd.Args[0] {
	case "quit", "exit":
		// no cleanup of children: they are orphaned on purpose
		return true, ErrQuit
	case "fg":
		return true, s.resumeSuspended()
	}
	return false, nil
}

// resumeSuspended brings the suspended job, if any, back into the
// foreground: swap the slots, continue the group, then wait. The slot
// handoff is a single atomic exchange, so a stop signal landing
// mid-dispatch cannot observe a half-updated pair.
func (s *Shell) resumeSuspended() error {
	suspended := s.state.Suspended()
	if suspended == 0 {
		fmt.Fprintln(s.out, "fg: no suspended job")
		return nil
	}

	job := process.GroupFromPGID(suspended)
	if alive, err := job.Alive(); err == nil && !alive {
		// killed while parked (e.g. external SIGKILL); drop the slot
		s.state.Swap()
		s.state.ClearForeground(suspended)
		fmt.Fprintf(s.out, "fg: job (%d) no longer exists\n", suspended)
		return nil
	}

	// Record before signalling, so the relay always sees the resumed
	// job tracked as foreground by the time it can observe the child.
	s.state.Swap()

	if err := job.Signal(sigContinue); err != nil {
		s.logger.Warnf("Failed to continue suspended job, pgid: %d, error: %v", suspended, err)
	}

	s.state.WaitForeground()
	return nil
}
