package sdlinput

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Alia5/padclick/binding"
	"github.com/Alia5/padclick/input"
)

// gamepadReader reads the standard gamepad buttons by name (g:a, g:start, ...).
type gamepadReader struct {
	p       *Platform
	index   int
	pad     *sdl.GameController
	id      sdl.JoystickID
	buttons []sdl.GameControllerButton
}

// Gamepad opens the device at index as a game controller.
func (p *Platform) Gamepad(index int) (input.LevelReader, error) {
	if index < 0 || index >= sdl.NumJoysticks() || !sdl.IsGameController(index) {
		return nil, fmt.Errorf("gamepad %d: %w", index, input.ErrDeviceUnavailable)
	}
	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		return nil, fmt.Errorf("gamepad %d: %w", index, input.ErrDeviceUnavailable)
	}

	var buttons []sdl.GameControllerButton
	for b := 0; b < int(sdl.CONTROLLER_BUTTON_MAX); b++ {
		buttons = append(buttons, sdl.GameControllerButton(b))
	}
	p.logger.Info("found gamepad", "index", index, "name", pad.Name())
	return &gamepadReader{
		p:       p,
		index:   index,
		pad:     pad,
		id:      pad.Joystick().InstanceID(),
		buttons: buttons,
	}, nil
}

func (r *gamepadReader) Refresh() (bool, error) {
	quit := r.p.Pump()
	if r.p.lost(r.id) || !r.pad.Attached() {
		return quit, fmt.Errorf("gamepad %d: %w", r.index, input.ErrDeviceLost)
	}
	return quit, nil
}

func (r *gamepadReader) Len() int { return len(r.buttons) }

func (r *gamepadReader) Pressed(i int) bool { return r.pad.Button(r.buttons[i]) != 0 }

func (r *gamepadReader) ID(i int) string {
	return binding.ID(binding.NamespaceGamepad, sdl.GameControllerGetStringForButton(r.buttons[i]))
}

func (r *gamepadReader) Close() error {
	r.pad.Close()
	return nil
}
