package parse

import (
	"strings"

	"github.com/core-tools/jobshell/pkg/errors"
)

// Default capacity limits for a single command line
const (
	DefaultMaxLine = 1024
	DefaultMaxArgs = 128
)

// Limits bounds the size of a single command line
type Limits struct {
	MaxLine int // maximum raw line length in bytes, excluding the newline
	MaxArgs int // maximum number of argument tokens
}

// DefaultLimits returns the standard command-line capacity limits
func DefaultLimits() Limits {
	return Limits{
		MaxLine: DefaultMaxLine,
		MaxArgs: DefaultMaxArgs,
	}
}

// Validate validates the limits
func (l Limits) Validate() error {
	if l.MaxLine <= 0 {
		return errors.NewValidationError("max line length must be positive", nil)
	}
	if l.MaxArgs <= 0 {
		return errors.NewValidationError("max argument count must be positive", nil)
	}
	return nil
}

// Command is one parsed command line
type Command struct {
	Args       []string // argument tokens, program name first
	Background bool     // trailing & was present
	Line       string   // original line without the trailing newline
}

// Empty reports whether the line held no tokens (blank input is a no-op)
func (c Command) Empty() bool {
	return len(c.Args) == 0
}

// ParseLine splits one newline-terminated command line into argument
// tokens and a background flag.
//
// Tokens are delimited by spaces. A token opening with a single quote
// extends to the next single quote; the quotes are stripped and interior
// spaces are preserved. An unterminated quote extends to the end of the
// line. A trailing standalone "&" is removed from the token list and
// sets Background.
func ParseLine(line string, limits Limits) (Command, error) {
	if err := limits.Validate(); err != nil {
		return Command{}, err
	}

	line = strings.TrimSuffix(line, "\n")
	if len(line) > limits.MaxLine {
		return Command{}, errors.NewValidationError("command line too long", nil).
			WithContext("length", len(line)).
			WithContext("max_line", limits.MaxLine)
	}

	cmd := Command{Line: line}

	rest := line
	for {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			break
		}

		var token string
		if rest[0] == '\'' {
			rest = rest[1:]
			if end := strings.IndexByte(rest, '\''); end >= 0 {
				token, rest = rest[:end], rest[end+1:]
			} else {
				token, rest = rest, ""
			}
		} else {
			if end := strings.IndexByte(rest, ' '); end >= 0 {
				token, rest = rest[:end], rest[end+1:]
			} else {
				token, rest = rest, ""
			}
		}

		if len(cmd.Args) >= limits.MaxArgs {
			return Command{}, errors.NewValidationError("too many arguments", nil).
				WithContext("max_args", limits.MaxArgs)
		}
		cmd.Args = append(cmd.Args, token)
	}

	if n := len(cmd.Args); n > 0 && cmd.Args[n-1] == "&" {
		cmd.Args = cmd.Args[:n-1]
		cmd.Background = true
	}

	return cmd, nil
}
