package shell

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/core-tools/jobshell/pkg/errors"
	"github.com/core-tools/jobshell/pkg/jobstate"
	"github.com/core-tools/jobshell/pkg/logging"
	"github.com/core-tools/jobshell/pkg/parse"
	"github.com/core-tools/jobshell/pkg/process"
)

// ErrQuit is returned by Run when the user asks the shell to terminate
// via the quit built-in. Callers map it to exit status 0.
var ErrQuit = stderrors.New("quit requested")

// Shell is the job-control shell core: one read-parse-dispatch-launch-
// wait loop over stdin, plus the asynchronous signal relay that does
// the job bookkeeping.
type Shell struct {
	config      Config
	limits      parse.Limits
	state       *jobstate.State
	reader      *bufio.Reader
	out         io.Writer
	logger      logging.Logger
	signals     chan os.Signal
	interactive bool
	exit        func(code int) // overridable for tests; SIGQUIT uses it

	// gate is the Go rendering of the classic sigprocmask discipline:
	// the launcher holds it across the start-to-record window, and the
	// relay takes it per event, so no relayed signal can observe a
	// child before its pgid is tracked.
	gate sync.Mutex
}

// New creates a shell reading from stdin and writing to stdout
func New(config Config, logger logging.Logger) (*Shell, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return &Shell{
		config: config,
		limits: parse.Limits{
			MaxLine: config.MaxLine,
			MaxArgs: config.MaxArgs,
		},
		state:       jobstate.NewState(logger),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		logger:      logger,
		signals:     make(chan os.Signal, signalQueueDepth),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		exit:        os.Exit,
	}, nil
}

// State exposes the job slots; the signal relay and built-ins share it
func (s *Shell) State() *jobstate.State {
	return s.state
}

// Run executes the shell loop until end-of-input or the quit built-in.
//
// The signal relay must be active before the first command launches,
// so an installation failure is fatal (the shell's bookkeeping depends
// on all four handlers).
func (s *Shell) Run(ctx context.Context) error {
	if err := s.installRelay(); err != nil {
		return errors.NewInternalError("failed to install signal handlers", err)
	}
	go s.relayLoop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.interactive {
			fmt.Fprint(s.out, s.config.Prompt)
		}

		line, err := s.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF && line == "" {
				return nil
			}
			if err != io.EOF {
				return errors.NewIOError("failed to read command line", err)
			}
			// final line without a trailing newline still executes
		}

		if err := s.eval(line); err != nil {
			return err
		}
	}
}

// eval parses one line and either dispatches a built-in or launches an
// external program, waiting for it unless it was sent to the background.
func (s *Shell) eval(line string) error {
	cmd, err := parse.ParseLine(line, s.limits)
	if err != nil {
		// over-long input is rejected, not executed truncated
		fmt.Fprintf(s.out, "jobshell: %v\n", err)
		return nil
	}
	if cmd.Empty() {
		return nil
	}

	handled, err := s.runBuiltin(cmd)
	if handled || err != nil {
		return err
	}

	// Hold the relay out of the start-to-record window: a child that
	// exits instantly must not be reaped before its pgid is tracked,
	// or the coordinator would wait on a job nobody will ever clear.
	s.gate.Lock()

	job, err := process.Launch(process.LaunchConfig{
		Path: cmd.Args[0],
		Args: cmd.Args[1:],
	}, s.logger)
	if err != nil {
		s.gate.Unlock()
		if errors.IsNotFoundError(err) {
			fmt.Fprintf(s.out, "%s: Command not found\n", cmd.Args[0])
			return nil
		}
		if errors.IsValidationError(err) {
			fmt.Fprintf(s.out, "jobshell: %v\n", err)
			return nil
		}
		// spawn failure is fatal: a shell that cannot launch processes
		// has nothing left to offer
		fmt.Fprintf(s.out, "jobshell: %v -- exiting\n", err)
		return err
	}

	s.state.SetForeground(job.PGID)

	if cmd.Background {
		fmt.Fprintf(s.out, "(%d) %s\n", job.PID, cmd.Line)
		s.state.ClearForeground(job.PGID)
		s.gate.Unlock()
		return nil
	}

	s.gate.Unlock()
	s.state.WaitForeground()
	return nil
}
