// Package input defines the normalized events produced by input devices and
// the Source abstraction the dispatcher polls.
package input

import "errors"

// Kind tags the variant carried by an Event.
type Kind uint8

const (
	KindKey Kind = iota + 1
	KindButton
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindButton:
		return "button"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a single normalized input event. ID is empty for KindQuit.
type Event struct {
	Kind    Kind
	ID      string
	Pressed bool
}

// KeyPress returns a pressed key event.
func KeyPress(id string) Event { return Event{Kind: KindKey, ID: id, Pressed: true} }

// ButtonPress returns a pressed button event.
func ButtonPress(id string) Event { return Event{Kind: KindButton, ID: id, Pressed: true} }

// Quit returns a quit event.
func Quit() Event { return Event{Kind: KindQuit} }

var (
	// ErrDeviceUnavailable is returned when no matching device exists at construction.
	ErrDeviceUnavailable = errors.New("input device unavailable")
	// ErrDeviceLost is returned by Poll once the device has been disconnected.
	ErrDeviceLost = errors.New("input device lost")
)

// Source produces press events from an input capability.
//
// Poll must not block for long and returns an empty slice when nothing
// happened. A Poll error wrapping ErrDeviceLost is fatal, any other error is
// transient.
type Source interface {
	Poll() ([]Event, error)
	Close() error
}
