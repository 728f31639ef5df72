package shell

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/core-tools/jobshell/pkg/errors"
	"github.com/core-tools/jobshell/pkg/parse"
)

// DefaultPrompt is printed before each read when stdin is a terminal
const DefaultPrompt = "jobshell> "

// Config represents the shell configuration file structure
type Config struct {
	Prompt   string `yaml:"prompt,omitempty"`
	MaxLine  int    `yaml:"max_line,omitempty"`
	MaxArgs  int    `yaml:"max_args,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		Prompt:   DefaultPrompt,
		MaxLine:  parse.DefaultMaxLine,
		MaxArgs:  parse.DefaultMaxArgs,
		LogLevel: "error",
	}
}

// LoadConfigFromFile loads shell configuration from a YAML file
func LoadConfigFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.NewIOError("failed to read configuration file", err).
			WithContext("filename", filename)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.NewValidationError("failed to parse YAML configuration", err).
			WithContext("filename", filename)
	}

	setConfigDefaults(&config)
	return config, nil
}

func setConfigDefaults(config *Config) {
	defaults := DefaultConfig()
	if config.Prompt == "" {
		config.Prompt = defaults.Prompt
	}
	if config.MaxLine == 0 {
		config.MaxLine = defaults.MaxLine
	}
	if config.MaxArgs == 0 {
		config.MaxArgs = defaults.MaxArgs
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
}

// ValidateConfig validates the shell configuration
func ValidateConfig(config Config) error {
	limits := parse.Limits{
		MaxLine: config.MaxLine,
		MaxArgs: config.MaxArgs,
	}
	if err := limits.Validate(); err != nil {
		return errors.NewValidationError("invalid command-line limits", err)
	}
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("unsupported log level: "+config.LogLevel, nil)
	}
	return nil
}
