//go:build !windows

// Package util holds platform specific console helpers.
package util

import "io"

// IsRunFromGUI reports whether padclick was started by double-clicking it.
// Outside Windows there is always a terminal, so this is false.
func IsRunFromGUI() bool {
	return false
}

// PauseBeforeExit is a no-op outside Windows.
func PauseBeforeExit(io.Writer, io.Reader) {}
