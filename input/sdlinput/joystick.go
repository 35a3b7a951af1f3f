package sdlinput

import (
	"fmt"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Alia5/padclick/binding"
	"github.com/Alia5/padclick/input"
)

// joystickReader reads raw joystick buttons by index.
type joystickReader struct {
	p     *Platform
	index int
	joy   *sdl.Joystick
	id    sdl.JoystickID
}

// Joystick opens the joystick at index and returns a level reader for its
// buttons, identified as j:<n>.
func (p *Platform) Joystick(index int) (input.LevelReader, error) {
	if index < 0 || index >= sdl.NumJoysticks() {
		return nil, fmt.Errorf("joystick %d: %w", index, input.ErrDeviceUnavailable)
	}
	joy := sdl.JoystickOpen(index)
	if joy == nil || !joy.Attached() {
		return nil, fmt.Errorf("joystick %d: %w", index, input.ErrDeviceUnavailable)
	}
	p.logger.Info("found joystick", "index", index, "name", joy.Name(), "buttons", joy.NumButtons())
	return &joystickReader{p: p, index: index, joy: joy, id: joy.InstanceID()}, nil
}

func (r *joystickReader) Refresh() (bool, error) {
	quit := r.p.Pump()
	if r.p.lost(r.id) || !r.joy.Attached() {
		return quit, fmt.Errorf("joystick %d: %w", r.index, input.ErrDeviceLost)
	}
	return quit, nil
}

func (r *joystickReader) Len() int { return r.joy.NumButtons() }

func (r *joystickReader) Pressed(i int) bool { return r.joy.Button(i) != 0 }

func (r *joystickReader) ID(i int) string {
	return binding.ID(binding.NamespaceJoystick, strconv.Itoa(i))
}

func (r *joystickReader) Close() error {
	r.joy.Close()
	return nil
}
