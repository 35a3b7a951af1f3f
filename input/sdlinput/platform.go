// Package sdlinput reads joysticks, gamepads and the keyboard through SDL2.
//
// SDL is initialized once by Open and the returned Platform is handed to
// every source that needs it. All calls must happen on the goroutine that
// called Open.
package sdlinput

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Alia5/padclick/input"
	"github.com/Alia5/padclick/internal/log"
)

// Subsystem flags for Open.
const (
	Joystick uint32 = sdl.INIT_JOYSTICK | sdl.INIT_EVENTS
	Gamepad  uint32 = sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS
	Keyboard uint32 = sdl.INIT_VIDEO | sdl.INIT_EVENTS
)

// Platform owns the SDL subsystems for the lifetime of the process.
type Platform struct {
	logger *slog.Logger
	raw    log.RawLogger

	window  *sdl.Window
	keys    []string
	removed map[sdl.JoystickID]bool
	closed  bool
}

// Open initializes the SDL subsystems in flags.
func Open(flags uint32, logger *slog.Logger, raw log.RawLogger) (*Platform, error) {
	runtime.LockOSThread()

	// no window has focus, joystick state must still update
	sdl.SetHint(sdl.HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS, "1")

	if err := sdl.Init(flags); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	logger.Debug("sdl initialized", "flags", fmt.Sprintf("%#x", flags))
	return &Platform{
		logger:  logger,
		raw:     raw,
		removed: make(map[sdl.JoystickID]bool),
	}, nil
}

// Close shuts SDL down. It is safe to call more than once.
func (p *Platform) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.destroyWindow()
	sdl.Quit()
	return nil
}

// NumJoysticks returns the number of attached joysticks.
func (p *Platform) NumJoysticks() int {
	return sdl.NumJoysticks()
}

// Pump drains pending SDL events. It reports whether a quit was requested.
func (p *Platform) Pump() (quit bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			p.raw.Log("sdl", "quit", 0, 0)
			quit = true
		case *sdl.KeyboardEvent:
			p.raw.Log("sdl", keyKind(e.Type), int(e.Keysym.Scancode), int(e.State))
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if id := input.KeyID(sdl.GetKeyName(e.Keysym.Sym)); id != "" {
					p.keys = append(p.keys, id)
				} else {
					p.logger.Warn("unrecognized key", "scancode", e.Keysym.Scancode)
				}
			}
		case *sdl.JoyButtonEvent:
			p.raw.Log(fmt.Sprintf("sdl/joy%d", e.Which), "button", int(e.Button), int(e.State))
		case *sdl.JoyAxisEvent:
			p.raw.Log(fmt.Sprintf("sdl/joy%d", e.Which), "axis", int(e.Axis), int(e.Value))
		case *sdl.JoyHatEvent:
			p.raw.Log(fmt.Sprintf("sdl/joy%d", e.Which), "hat", int(e.Hat), int(e.Value))
		case *sdl.JoyDeviceAddedEvent:
			p.raw.Log("sdl", "joyadded", int(e.Which), 0)
		case *sdl.JoyDeviceRemovedEvent:
			p.raw.Log("sdl", "joyremoved", int(e.Which), 0)
			p.removed[e.Which] = true
		case *sdl.ControllerButtonEvent:
			p.raw.Log(fmt.Sprintf("sdl/pad%d", e.Which), "button", int(e.Button), int(e.State))
		default:
			p.raw.Log("sdl", "event", int(ev.GetType()), 0)
		}
	}
	return quit
}

// takeKeys returns and clears the key presses collected by Pump.
func (p *Platform) takeKeys() []string {
	keys := p.keys
	p.keys = nil
	return keys
}

func (p *Platform) lost(id sdl.JoystickID) bool {
	return p.removed[id]
}

func (p *Platform) createWindow() error {
	if p.window != nil {
		return nil
	}
	w, err := sdl.CreateWindow("padclick", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 320, 120, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	p.window = w
	return nil
}

func (p *Platform) destroyWindow() {
	if p.window != nil {
		_ = p.window.Destroy()
		p.window = nil
	}
}

func keyKind(t uint32) string {
	if t == sdl.KEYDOWN {
		return "keydown"
	}
	return "keyup"
}
