package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/padclick/binding"
	"github.com/Alia5/padclick/input"
	"github.com/Alia5/padclick/input/evdevinput"
	"github.com/Alia5/padclick/input/sdlinput"
	"github.com/Alia5/padclick/internal/log"
)

// sourceOpener opens the input source serving a namespace. release frees
// whatever the source depends on and runs after the source is closed.
type sourceOpener func(ns binding.Namespace) (src input.Source, release func(), err error)

func (o *InputOptions) opener(logger *slog.Logger, raw log.RawLogger) sourceOpener {
	return func(ns binding.Namespace) (input.Source, func(), error) {
		switch ns {
		case binding.NamespaceJoystick, binding.NamespaceGamepad:
			src, plt, err := o.openButtons(ns, logger, raw)
			if err != nil {
				return nil, nil, err
			}
			return src, func() { _ = plt.Close() }, nil
		case binding.NamespaceKey:
			return o.openKeys(logger, raw)
		default:
			return nil, nil, &binding.ConfigError{Reason: fmt.Sprintf("no input source for namespace %q", ns)}
		}
	}
}

func (o *InputOptions) openButtons(ns binding.Namespace, logger *slog.Logger, raw log.RawLogger) (*input.LevelSource, *sdlinput.Platform, error) {
	flags := sdlinput.Joystick
	if ns == binding.NamespaceGamepad {
		flags = sdlinput.Gamepad
	}
	plt, err := sdlinput.Open(flags, logger, raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, input.ErrDeviceUnavailable)
	}

	var reader input.LevelReader
	if ns == binding.NamespaceGamepad {
		reader, err = plt.Gamepad(o.Joystick)
	} else {
		reader, err = plt.Joystick(o.Joystick)
	}
	if err != nil {
		_ = plt.Close()
		return nil, nil, err
	}
	return input.NewLevelSource(reader, logger), plt, nil
}

func (o *InputOptions) openKeys(logger *slog.Logger, raw log.RawLogger) (input.Source, func(), error) {
	if o.Keyboard == "sdl" {
		plt, err := sdlinput.Open(sdlinput.Keyboard, logger, raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%v: %w", err, input.ErrDeviceUnavailable)
		}
		kb, err := plt.Keyboard()
		if err != nil {
			_ = plt.Close()
			return nil, nil, fmt.Errorf("%v: %w", err, input.ErrDeviceUnavailable)
		}
		return kb, func() { _ = plt.Close() }, nil
	}

	quitKey, err := o.quitKeyID()
	if err != nil {
		return nil, nil, err
	}
	kb, err := evdevinput.Open(o.Device, quitKey, logger, raw)
	if err != nil {
		return nil, nil, err
	}
	return kb, func() {}, nil
}

// quitKeyID normalizes the evdev quit key, which must name a key.
func (o *InputOptions) quitKeyID() (string, error) {
	id, err := binding.NormalizeID(o.QuitKey)
	if err == nil && !strings.HasPrefix(id, binding.ID(binding.NamespaceKey, "")) {
		err = fmt.Errorf("not a key")
	}
	if err != nil {
		return "", &binding.ConfigError{Descriptor: o.QuitKey, Reason: "quit key: " + err.Error()}
	}
	return id, nil
}
