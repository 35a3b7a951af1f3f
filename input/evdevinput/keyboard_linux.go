//go:build linux

// Package evdevinput reads key presses straight from a Linux input device.
package evdevinput

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"

	"github.com/Alia5/padclick/input"
	"github.com/Alia5/padclick/internal/log"
)

// retryDelay throttles the listener after a transient read error.
const retryDelay = 50 * time.Millisecond

// Keyboard is a push source: a listener goroutine blocks on the device and
// queues presses for the single consumer calling Poll.
type Keyboard struct {
	*input.Queue
	path    string
	dev     *evdev.InputDevice
	quitKey string
	closing atomic.Bool
	logger  *slog.Logger
	raw     log.RawLogger
}

// Open opens the evdev device at path, or the first keyboard found when
// path is empty. Pressing quitKey (e.g. "k:esc") produces a quit event.
func Open(path, quitKey string, logger *slog.Logger, raw log.RawLogger) (*Keyboard, error) {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	if path == "" {
		found, err := findKeyboard()
		if err != nil {
			return nil, err
		}
		path = found
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, input.ErrDeviceUnavailable)
	}
	name, _ := dev.Name()

	k := &Keyboard{
		path:    path,
		dev:     dev,
		quitKey: quitKey,
		logger:  logger.With("device", path),
		raw:     raw,
	}
	k.Queue = input.NewQueue(input.DefaultQueueSize, k.shutdown)
	k.logger.Info("found keyboard", "name", name)

	go k.listen()
	return k, nil
}

func (k *Keyboard) shutdown() error {
	k.closing.Store(true)
	if n := k.Dropped(); n > 0 {
		k.logger.Warn("key presses dropped while the queue was full", "count", n)
	}
	return k.dev.Close()
}

func (k *Keyboard) listen() {
	for {
		ev, err := k.dev.ReadOne()
		if err != nil {
			if k.closing.Load() || errors.Is(err, os.ErrClosed) {
				return
			}
			if errors.Is(err, unix.ENODEV) {
				k.Fail(fmt.Errorf("%s: %w", k.path, input.ErrDeviceLost))
				return
			}
			k.logger.Warn("read failed", "error", err)
			time.Sleep(retryDelay)
			continue
		}
		k.raw.Log(k.path, ev.TypeName(), int(ev.Code), int(ev.Value))

		e, ok := translate(ev, k.quitKey)
		if !ok {
			if isKeyDown(ev) {
				k.logger.Warn("unrecognized key code", "code", ev.Code)
			}
			continue
		}
		if !k.Push(e) {
			k.logger.Warn("event queue full, dropped key", "id", e.ID)
		}
	}
}

func isKeyDown(ev *evdev.InputEvent) bool {
	return ev.Type == evdev.EV_KEY && ev.Value == 1
}

// translate maps a key-down event to a press, or to Quit for quitKey.
// Releases, autorepeats, non-key events and unnamed codes report false.
func translate(ev *evdev.InputEvent, quitKey string) (input.Event, bool) {
	if !isKeyDown(ev) {
		return input.Event{}, false
	}
	id := input.KeyID(ev.CodeName())
	if id == "" || id == "k:unknown" {
		return input.Event{}, false
	}
	if id == quitKey {
		return input.Quit(), true
	}
	return input.KeyPress(id), true
}

func findKeyboard() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("list input devices: %v: %w", err, input.ErrDeviceUnavailable)
	}
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		ok := hasKey(dev.CapableEvents(evdev.EV_KEY), evdev.KEY_A)
		_ = dev.Close()
		if ok {
			return p.Path, nil
		}
	}
	return "", fmt.Errorf("no keyboard in /dev/input: %w", input.ErrDeviceUnavailable)
}

func hasKey(codes []evdev.EvCode, want evdev.EvCode) bool {
	for _, c := range codes {
		if c == want {
			return true
		}
	}
	return false
}
