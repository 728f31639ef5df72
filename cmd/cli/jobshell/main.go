package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/core-tools/jobshell/pkg/logging"
	"github.com/core-tools/jobshell/pkg/shell"
)

type flagOptions struct {
	ConfigFile string `long:"config" description:"path to a YAML configuration file"`
	Prompt     string `long:"prompt" description:"prompt text, overrides the configuration file"`
	LogLevel   string `long:"log-level" description:"diagnostic log level: debug, info, warn, error"`
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

	// Everything the shell says goes to one stream
	os.Stderr = os.Stdout

	config := shell.DefaultConfig()
	if opts.ConfigFile != "" {
		config, err = shell.LoadConfigFromFile(opts.ConfigFile)
		if err != nil {
			fmt.Printf("Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
	}
	if opts.Prompt != "" {
		config.Prompt = opts.Prompt
	}
	if opts.LogLevel != "" {
		config.LogLevel = opts.LogLevel
	}

	logger, err := logging.NewZapLogger(logging.ZapConfig{Level: config.LogLevel}, "module: jobshell , ")
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	sh, err := shell.New(config, logger)
	if err != nil {
		fmt.Printf("Failed to create shell: %v\n", err)
		os.Exit(1)
	}

	err = sh.Run(context.Background())
	if err != nil && err != shell.ErrQuit {
		logger.Errorf("Shell terminated: %v", err)
		os.Exit(1)
	}

	os.Exit(0)
}
