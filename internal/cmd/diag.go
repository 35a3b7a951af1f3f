package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/Alia5/padclick/binding"
	"github.com/Alia5/padclick/dispatch"
	"github.com/Alia5/padclick/input"
	"github.com/Alia5/padclick/input/sdlinput"
	"github.com/Alia5/padclick/internal/log"
	"github.com/Alia5/padclick/pointer"
)

// liveLine prints a status line, redrawn in place when w is a terminal.
type liveLine struct {
	w   io.Writer
	tty bool
}

func newLiveLine(f *os.File) *liveLine {
	return &liveLine{w: f, tty: term.IsTerminal(int(f.Fd()))}
}

func (l *liveLine) Show(s string) {
	if l.tty {
		fmt.Fprintf(l.w, "\r\033[K%s", s)
		return
	}
	fmt.Fprintln(l.w, s)
}

func (l *liveLine) Done() {
	if l.tty {
		fmt.Fprintln(l.w)
	}
}

// every calls fn each interval until fn asks to stop, fails, or ctx is done.
func every(ctx context.Context, interval time.Duration, fn func() (stop bool, err error)) error {
	for {
		stop, err := fn()
		if err != nil || stop {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// watchPresses runs a dispatcher without bindings and prints every event.
func watchPresses(ctx context.Context, w io.Writer, src input.Source, interval time.Duration, logger *slog.Logger) error {
	d := dispatch.New(dispatch.NewRegistry(logger), interval, logger)
	d.OnEvent = func(ev input.Event) {
		if ev.Kind == input.KindQuit {
			fmt.Fprintln(w, "quit")
			return
		}
		fmt.Fprintf(w, "%s pressed\n", ev.ID)
	}
	return d.Run(ctx, src)
}

// MouseMode prints the pointer position.
type MouseMode struct {
	pointer pointer.Controller
}

// Run is called by Kong when the mouse command is executed.
func (m *MouseMode) Run(opts *InputOptions, logger *slog.Logger) error {
	ctx, stop := signalContext()
	defer stop()
	if m.pointer == nil {
		m.pointer = pointer.NewRobot()
	}
	line := newLiveLine(os.Stdout)
	defer line.Done()
	logger.Info("showing pointer position, Ctrl-C to stop")
	return m.watch(ctx, line, opts.Interval)
}

func (m *MouseMode) watch(ctx context.Context, line *liveLine, interval time.Duration) error {
	return every(ctx, interval, func() (bool, error) {
		x, y := m.pointer.Position()
		line.Show(fmt.Sprintf("pointer at %d,%d", x, y))
		return false, nil
	})
}

// KeysMode prints key identifiers as they are pressed.
type KeysMode struct{}

// Run is called by Kong when the keys command is executed.
func (k *KeysMode) Run(opts *InputOptions, logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signalContext()
	defer stop()
	src, release, err := opts.opener(logger, rawLogger)(binding.NamespaceKey)
	if err != nil {
		return err
	}
	defer release()
	logger.Info("showing key presses", "backend", opts.Keyboard, "quit", opts.QuitKey)
	return watchPresses(ctx, os.Stdout, src, opts.Interval, logger)
}

// ButtonsMode prints button identifiers as they are pressed.
type ButtonsMode struct {
	Gamepad bool `help:"Read named gamepad buttons (g:) instead of joystick indices (j:)"`
}

// Run is called by Kong when the buttons command is executed.
func (b *ButtonsMode) Run(opts *InputOptions, logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signalContext()
	defer stop()
	ns := binding.NamespaceJoystick
	if b.Gamepad {
		ns = binding.NamespaceGamepad
	}
	src, release, err := opts.opener(logger, rawLogger)(ns)
	if err != nil {
		return err
	}
	defer release()
	logger.Info("showing button presses", "namespace", ns)
	return watchPresses(ctx, os.Stdout, src, opts.Interval, logger)
}

// EventsMode traces every raw SDL event to stdout.
type EventsMode struct{}

// Run is called by Kong when the events command is executed.
func (e *EventsMode) Run(opts *InputOptions, logger *slog.Logger) error {
	ctx, stop := signalContext()
	defer stop()

	plt, err := sdlinput.Open(sdlinput.Gamepad|sdlinput.Keyboard, logger, log.NewRaw(os.Stdout))
	if err != nil {
		return fmt.Errorf("%v: %w", err, input.ErrDeviceUnavailable)
	}
	defer plt.Close()

	if plt.NumJoysticks() > opts.Joystick {
		joy, err := plt.Joystick(opts.Joystick)
		if err != nil {
			return err
		}
		defer joy.Close()
	} else {
		logger.Warn("no joystick attached, tracing keyboard and window events only")
	}
	kb, err := plt.Keyboard()
	if err != nil {
		return err
	}
	defer kb.Close()

	return every(ctx, opts.Interval, func() (bool, error) {
		return plt.Pump(), nil
	})
}

// TestMode scans the joystick and prints every held button each cycle.
type TestMode struct{}

// Run is called by Kong when the test command is executed.
func (m *TestMode) Run(opts *InputOptions, logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signalContext()
	defer stop()
	src, plt, err := opts.openButtons(binding.NamespaceJoystick, logger, rawLogger)
	if err != nil {
		return err
	}
	defer plt.Close()
	defer src.Close()

	line := newLiveLine(os.Stdout)
	defer line.Done()
	return scanHeld(ctx, src, line, opts.Interval)
}

func scanHeld(ctx context.Context, src *input.LevelSource, line *liveLine, interval time.Duration) error {
	return every(ctx, interval, func() (bool, error) {
		quit, err := src.Refresh()
		if err != nil {
			if errors.Is(err, input.ErrDeviceLost) {
				return true, err
			}
			return false, nil
		}
		held := src.Held()
		if len(held) == 0 {
			line.Show("no buttons held")
		} else {
			line.Show("held: " + strings.Join(held, " "))
		}
		return quit, nil
	})
}
