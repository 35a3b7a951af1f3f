//go:build !linux

// Package evdevinput reads key presses straight from a Linux input device.
package evdevinput

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/padclick/input"
	"github.com/Alia5/padclick/internal/log"
)

// Keyboard is unavailable outside Linux.
type Keyboard struct {
	*input.Queue
}

// Open always fails with input.ErrDeviceUnavailable outside Linux.
func Open(path, quitKey string, logger *slog.Logger, raw log.RawLogger) (*Keyboard, error) {
	return nil, fmt.Errorf("evdev keyboard: %w", input.ErrDeviceUnavailable)
}
