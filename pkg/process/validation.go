package process

import (
	"strings"

	"github.com/core-tools/jobshell/pkg/errors"
)

// ValidateLaunchConfig validates launch configuration
func ValidateLaunchConfig(config LaunchConfig) error {
	if config.Path == "" {
		return errors.NewValidationError("program path cannot be empty", nil)
	}
	if strings.TrimSpace(config.Path) == "" {
		return errors.NewValidationError("program path cannot be blank", nil)
	}
	if strings.ContainsRune(config.Path, 0) {
		return errors.NewValidationError("program path contains a NUL byte", nil)
	}
	for i, arg := range config.Args {
		if strings.ContainsRune(arg, 0) {
			return errors.NewValidationError("argument contains a NUL byte", nil).
				WithContext("arg_index", i)
		}
	}
	return nil
}
