//go:build !windows

package shell

import (
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalQueueDepth buffers bursts of terminal signals; SIGCHLD for
// multiple children can coalesce, which is fine because the reap loop
// drains everything collectable per event.
const signalQueueDepth = 16

const sigContinue = unix.SIGCONT

// installRelay subscribes the shell to the four signals it relays or
// acts on. The Go runtime installs its handlers with SA_RESTART, so
// interrupted blocking calls resume rather than fail.
func (s *Shell) installRelay() error {
	signal.Notify(s.signals,
		unix.SIGINT,  // terminal interrupt (ctrl-c)
		unix.SIGTSTP, // terminal stop (ctrl-z)
		unix.SIGCHLD, // child terminated or stopped
		unix.SIGQUIT, // external quit request
	)
	return nil
}

// relayLoop is the single consumer of delivered signals. Serializing
// the events through one goroutine gives the handlers the reentrancy
// freedom a C shell has to earn with async-signal-safety rules.
func (s *Shell) relayLoop() {
	for sig := range s.signals {
		unixSig, ok := sig.(syscall.Signal)
		if !ok {
			continue
		}
		s.handleSignal(unixSig)
	}
}

func (s *Shell) handleSignal(sig syscall.Signal) {
	// serialized against the launcher's start-to-record window
	s.gate.Lock()
	defer s.gate.Unlock()

	switch sig {
	case unix.SIGINT:
		s.relayInterrupt()
	case unix.SIGTSTP:
		s.stopForeground()
	case unix.SIGCHLD:
		s.reapChildren()
	case unix.SIGQUIT:
		fmt.Fprintln(s.out, "Terminating after receipt of SIGQUIT signal")
		s.exit(1)
	}
}

// relayInterrupt forwards a terminal interrupt to the foreground
// process group. Bookkeeping is not touched here; the termination is
// observed and recorded when the child is reaped.
func (s *Shell) relayInterrupt() {
	pgid := s.state.Foreground()
	if pgid == 0 {
		return
	}
	if err := unix.Kill(-pgid, unix.SIGINT); err != nil {
		s.logger.Warnf("Failed to relay SIGINT, pgid: %d, error: %v", pgid, err)
	}
}

// stopForeground relays a terminal stop to the foreground group and
// parks the job in the suspended slot. Emptying the foreground slot
// unblocks the coordinator and gets the prompt back. A previously
// suspended job is overwritten: one parked job at a time.
func (s *Shell) stopForeground() {
	pgid := s.state.Foreground()
	if pgid == 0 {
		return
	}
	fmt.Fprintf(s.out, "Job (%d) stopped by signal %d\n", pgid, int(unix.SIGTSTP))
	if err := unix.Kill(-pgid, unix.SIGTSTP); err != nil {
		s.logger.Warnf("Failed to relay SIGTSTP, pgid: %d, error: %v", pgid, err)
	}
	s.state.ParkForeground()
}

// reapChildren collects every child whose state changed, without ever
// blocking on a running one. Invoked with nothing collectable it makes
// zero mutations and emits no output.
func (s *Shell) reapChildren() {
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG|unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil || pid <= 0 {
			// ECHILD: no children at all
			return
		}
		s.handleReapedChild(pid, ws)
	}
}

// handleReapedChild updates the job slots for one collected child.
// Only the tracked foreground job matters; background children are
// harvested silently.
func (s *Shell) handleReapedChild(pid int, ws unix.WaitStatus) {
	if s.state.Foreground() != pid {
		return
	}

	switch {
	case ws.Exited():
		s.state.ClearForeground(pid)
	case ws.Signaled():
		if ws.Signal() == unix.SIGINT {
			fmt.Fprintf(s.out, "Job (%d) terminated by signal %d\n", pid, int(unix.SIGINT))
		}
		s.state.ClearForeground(pid)
	case ws.Stopped():
		// Covers stops the shell did not relay itself (an external
		// SIGSTOP, or the job stopping on terminal I/O): the shell's
		// own SIGTSTP path has already parked the job by the time the
		// stop report arrives, so reaching here means the tracking
		// would otherwise go stale.
		fmt.Fprintf(s.out, "Job (%d) stopped by signal %d\n", pid, int(ws.StopSignal()))
		s.state.ParkForeground()
	}
}
