package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/Alia5/padclick/binding"
	"github.com/Alia5/padclick/dispatch"
	"github.com/Alia5/padclick/internal/log"
	"github.com/Alia5/padclick/internal/util"
	"github.com/Alia5/padclick/pointer"
)

// Dispatch is the default command: it clicks the bound position whenever a
// bound key or button is pressed.
type Dispatch struct {
	Bindings []string `arg:"" optional:"" name:"binding" help:"<identifier>,<x>,<y>, e.g. k:a,100,200 or 3,640,480"`

	pointer pointer.Controller
	open    sourceOpener
}

// Run is called by Kong when the dispatch command is executed.
func (d *Dispatch) Run(kctx *kong.Context, opts *InputOptions, logger *slog.Logger, rawLogger log.RawLogger) error {
	if len(d.Bindings) == 0 {
		_ = kctx.PrintUsage(false)
		util.PauseBeforeExit(kctx.Stdout, os.Stdin)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return d.StartDispatch(ctx, opts, logger, rawLogger)
}

// StartDispatch validates the bindings, opens the matching input source and
// runs the dispatcher until quit, cancellation, or device loss.
func (d *Dispatch) StartDispatch(ctx context.Context, opts *InputOptions, logger *slog.Logger, rawLogger log.RawLogger) error {
	bindings, ns, err := binding.ParseAll(d.Bindings)
	if err != nil {
		return err
	}
	if ns == binding.NamespaceKey && opts.Keyboard == "evdev" {
		quitKey, err := opts.quitKeyID()
		if err != nil {
			return err
		}
		for i, b := range bindings {
			if b.ID == quitKey {
				return &binding.ConfigError{Descriptor: d.Bindings[i], Reason: fmt.Sprintf("%s is the quit key", b.ID)}
			}
		}
	}

	if d.pointer == nil {
		d.pointer = pointer.NewRobot()
	}
	if d.open == nil {
		d.open = opts.opener(logger, rawLogger)
	}

	registry := dispatch.NewRegistry(logger)
	for _, b := range bindings {
		registry.Register(b.ID, pointer.NewMoveClick(d.pointer, b.X, b.Y))
		logger.Debug("bound", "id", b.ID, "x", b.X, "y", b.Y)
	}
	logger.Info("dispatching", "namespace", ns, "bindings", registry.IDs(), "interval", opts.Interval)

	src, release, err := d.open(ns)
	if err != nil {
		return fmt.Errorf("open %s input: %w", ns, err)
	}
	defer release()

	return dispatch.New(registry, opts.Interval, logger).Run(ctx, src)
}
