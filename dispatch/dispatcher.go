package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Alia5/padclick/input"
	plog "github.com/Alia5/padclick/internal/log"
)

// DefaultInterval is the pause between poll cycles.
const DefaultInterval = 150 * time.Millisecond

// State of a Dispatcher run.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Dispatcher polls a source and invokes the registry's actions for every
// pressed identifier, one at a time, in the order the source returned them.
type Dispatcher struct {
	registry *Registry
	interval time.Duration
	logger   *slog.Logger
	state    atomic.Int32
	// OnEvent, if set, observes every event before lookup.
	OnEvent func(input.Event)
}

// New returns a dispatcher for registry. A non-positive interval selects
// DefaultInterval.
func New(registry *Registry, interval time.Duration, logger *slog.Logger) *Dispatcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{registry: registry, interval: interval, logger: logger}
}

// State returns the current run state.
func (d *Dispatcher) State() State { return State(d.state.Load()) }

// Run drives source until a Quit event is seen, ctx is done, or the source
// reports input.ErrDeviceLost. The source is closed before Run returns.
// Only device loss is returned as an error.
func (d *Dispatcher) Run(ctx context.Context, source input.Source) (err error) {
	d.state.Store(int32(StateRunning))
	defer func() {
		if cerr := source.Close(); cerr != nil {
			d.logger.Warn("failed to close input source", "error", cerr)
		}
		d.state.Store(int32(StateStopped))
		d.logger.Debug("dispatcher stopped")
	}()

	d.logger.Info("dispatching", "bindings", d.registry.Len(), "interval", d.interval)

	for {
		events, perr := source.Poll()
		if perr != nil {
			if errors.Is(perr, input.ErrDeviceLost) {
				d.logger.Error("input device lost", "error", perr)
				return fmt.Errorf("dispatch: %w", perr)
			}
			d.logger.Warn("poll failed", "error", perr)
			events = nil
		}

		if d.dispatch(events) {
			d.logger.Info("quit requested")
			return nil
		}

		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher cancelled")
			return nil
		case <-time.After(d.interval):
		}
	}
}

// dispatch runs one batch and reports whether a Quit was seen.
func (d *Dispatcher) dispatch(events []input.Event) (quit bool) {
	for _, ev := range events {
		if d.OnEvent != nil {
			d.OnEvent(ev)
		}
		if ev.Kind == input.KindQuit {
			quit = true
			continue
		}
		if !ev.Pressed {
			continue
		}
		action, ok := d.registry.Lookup(ev.ID)
		if !ok {
			d.logger.Log(context.Background(), plog.LevelTrace, "unbound input", "id", ev.ID)
			continue
		}
		d.logger.Debug("firing", "id", ev.ID, "action", action)
		if err := action.Execute(); err != nil {
			d.logger.Warn("action failed", "id", ev.ID, "error", err)
		}
	}
	return quit
}
