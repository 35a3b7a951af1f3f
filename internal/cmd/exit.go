package cmd

import (
	"errors"

	"github.com/Alia5/padclick/binding"
	"github.com/Alia5/padclick/input"
)

// Process exit statuses.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitConfig            = 2
	ExitDeviceUnavailable = 3
	ExitDeviceLost        = 4
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	var cfgErr *binding.ConfigError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &cfgErr):
		return ExitConfig
	case errors.Is(err, input.ErrDeviceUnavailable):
		return ExitDeviceUnavailable
	case errors.Is(err, input.ErrDeviceLost):
		return ExitDeviceLost
	default:
		return ExitFailure
	}
}
