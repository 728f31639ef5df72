package jobstate

import (
	"sync"

	"github.com/core-tools/jobshell/pkg/logging"
)

// State tracks the shell's single foreground and single suspended job.
//
// A process-group id of 0 means the slot is empty. The same pgid never
// occupies both slots: ParkForeground and Swap are the only paths
// between them, and recording a pgid as foreground evicts it from the
// suspended slot.
//
// Only the signal relay and the launcher/coordinator handoff mutate
// this state. The condition variable replaces the classic
// unblock-and-sigsuspend loop: every waiter re-checks the slot after
// each wake-up, so a wake that races with a new foreground job is
// harmless.
type State struct {
	mutex      sync.Mutex
	changed    *sync.Cond
	foreground int
	suspended  int
	logger     logging.Logger
}

// NewState creates an empty job state
func NewState(logger logging.Logger) *State {
	s := &State{
		logger: logger,
	}
	s.changed = sync.NewCond(&s.mutex)
	return s
}

// SetForeground records pgid as the running foreground job
func (s *State) SetForeground(pgid int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.suspended == pgid {
		s.suspended = 0
	}
	s.foreground = pgid
	s.logger.Debugf("Foreground job recorded, pgid: %d", pgid)
}

// Foreground returns the tracked foreground pgid, or 0
func (s *State) Foreground() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.foreground
}

// Suspended returns the tracked suspended pgid, or 0
func (s *State) Suspended() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.suspended
}

// ClearForeground empties the foreground slot if it still holds pgid
// and wakes the coordinator. Reports whether a clear happened; a stale
// pgid (already swapped out or replaced) is a no-op.
func (s *State) ClearForeground(pgid int) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.foreground == 0 || s.foreground != pgid {
		return false
	}
	s.foreground = 0
	s.logger.Debugf("Foreground job cleared, pgid: %d", pgid)
	s.changed.Broadcast()
	return true
}

// ParkForeground moves the foreground job into the suspended slot and
// wakes the coordinator. A job already parked there is overwritten and
// forgotten: only one suspended job is tracked. Returns the parked
// pgid, or 0 if no foreground job was running.
func (s *State) ParkForeground() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	parked := s.foreground
	if parked == 0 {
		return 0
	}
	s.suspended = parked
	s.foreground = 0
	s.logger.Debugf("Foreground job parked, pgid: %d", parked)
	s.changed.Broadcast()
	return parked
}

// Swap exchanges the foreground and suspended slots and wakes the
// coordinator. The resume path uses it to move the suspended job back
// into the (empty) foreground slot; the exchange is symmetric anyway.
// Returns the slot values after the exchange.
func (s *State) Swap() (foreground, suspended int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.foreground, s.suspended = s.suspended, s.foreground
	s.logger.Debugf("Job slots swapped, foreground: %d, suspended: %d", s.foreground, s.suspended)
	s.changed.Broadcast()
	return s.foreground, s.suspended
}

// WaitForeground blocks the caller until the foreground slot is empty.
// This is the shell's only suspension point. There is no timeout: a
// foreground job that never terminates or stops blocks indefinitely,
// matching interactive shell semantics.
func (s *State) WaitForeground() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for s.foreground != 0 {
		s.changed.Wait()
	}
}
