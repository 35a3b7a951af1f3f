package sdlinput

import (
	"github.com/Alia5/padclick/input"
)

// KeyboardSource delivers key presses from SDL keyboard events. SDL only
// reports keys to a focused window, so one is shown while the source is open.
type KeyboardSource struct {
	p *Platform
}

// Keyboard opens the SDL keyboard source. The platform must have been
// opened with the Keyboard flags.
func (p *Platform) Keyboard() (*KeyboardSource, error) {
	if err := p.createWindow(); err != nil {
		return nil, err
	}
	p.logger.Info("keyboard ready, focus the padclick window to send keys")
	return &KeyboardSource{p: p}, nil
}

// Poll implements input.Source.
func (k *KeyboardSource) Poll() ([]input.Event, error) {
	quit := k.p.Pump()
	keys := k.p.takeKeys()
	events := make([]input.Event, 0, len(keys)+1)
	for _, id := range keys {
		events = append(events, input.KeyPress(id))
	}
	if quit {
		events = append(events, input.Quit())
	}
	return events, nil
}

// Close implements input.Source.
func (k *KeyboardSource) Close() error {
	k.p.destroyWindow()
	return nil
}
