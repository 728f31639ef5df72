package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"
)

// spintest is a signal-friendly child for exercising the shell's job
// control by hand: run it in the foreground, hit ctrl-c / ctrl-z, and
// resume it with fg. It reports its pid so the shell's job notices can
// be checked against reality.

type flagOptions struct {
	RunDuration int `long:"run-duration" description:"Duration in seconds to run before exiting (0 = forever)"`
	ExitCode    int `long:"exit-code" description:"Status to exit with after the run duration"`
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Running spintest, pid: %d, opts: %+v\n", os.Getpid(), opts)

	sig := make(chan os.Signal, 1)
	if runtime.GOOS == "windows" {
		signal.Notify(sig) // Unix signals not implemented on Windows
	} else {
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	}

	var timeout <-chan time.Time
	if opts.RunDuration > 0 {
		fmt.Printf("Using RUN DURATION of %d seconds\n", opts.RunDuration)
		timeout = time.After(time.Duration(opts.RunDuration) * time.Second)
	}

	select {
	case receivedSignal := <-sig:
		fmt.Printf("Spintest received signal: %v\n", receivedSignal)
	case <-timeout:
		fmt.Printf("Spintest run duration elapsed\n")
	}

	os.Exit(opts.ExitCode)
}
