package process

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/core-tools/jobshell/pkg/errors"
)

func TestValidateLaunchConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    LaunchConfig
		shouldErr bool
	}{
		{
			name: "valid bare command",
			config: LaunchConfig{
				Path: "sleep",
				Args: []string{"100"},
			},
			shouldErr: false,
		},
		{
			name: "valid absolute path",
			config: LaunchConfig{
				Path: "/bin/echo",
				Args: []string{"hi"},
			},
			shouldErr: false,
		},
		{
			name: "valid with no args",
			config: LaunchConfig{
				Path: "ls",
			},
			shouldErr: false,
		},
		{
			name:      "empty path",
			config:    LaunchConfig{},
			shouldErr: true,
		},
		{
			name: "blank path",
			config: LaunchConfig{
				Path: "   ",
			},
			shouldErr: true,
		},
		{
			name: "nul byte in path",
			config: LaunchConfig{
				Path: "ls\x00",
			},
			shouldErr: true,
		},
		{
			name: "nul byte in argument",
			config: LaunchConfig{
				Path: "echo",
				Args: []string{"ok", "bad\x00arg"},
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLaunchConfig(tt.config)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGroupFromPGID(t *testing.T) {
	job := GroupFromPGID(4242)
	assert.Equal(t, 4242, job.PID)
	assert.Equal(t, 4242, job.PGID)
}
