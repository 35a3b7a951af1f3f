package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padclick/binding"
	"github.com/Alia5/padclick/input"
)

func TestKeyID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "evdev letter", in: "KEY_A", want: "k:a"},
		{name: "sdl letter", in: "A", want: "k:a"},
		{name: "evdev escape", in: "KEY_ESC", want: "k:esc"},
		{name: "sdl escape", in: "Escape", want: "k:esc"},
		{name: "sdl return", in: "Return", want: "k:enter"},
		{name: "sdl modifier with space", in: "Left Shift", want: "k:leftshift"},
		{name: "evdev modifier", in: "KEY_LEFTSHIFT", want: "k:leftshift"},
		{name: "sdl keypad", in: "Keypad 1", want: "k:kp1"},
		{name: "evdev keypad", in: "KEY_KP1", want: "k:kp1"},
		{name: "sdl gui", in: "Left GUI", want: "k:leftmeta"},
		{name: "evdev button", in: "BTN_LEFT", want: "k:btnleft"},
		{name: "empty", in: "  ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, input.KeyID(tt.in))
		})
	}
}

func TestKeyIDMatchesDescriptors(t *testing.T) {
	tests := []struct {
		descriptor string
		backend    []string
	}{
		{descriptor: "escape,1,1", backend: []string{"Escape", "KEY_ESC"}},
		{descriptor: "return,1,1", backend: []string{"Return", "KEY_ENTER"}},
		{descriptor: "keypad1,1,1", backend: []string{"Keypad 1", "KEY_KP1"}},
		{descriptor: "k:left shift,1,1", backend: []string{"Left Shift", "KEY_LEFTSHIFT"}},
	}
	for _, tt := range tests {
		t.Run(tt.descriptor, func(t *testing.T) {
			b, err := binding.Parse(tt.descriptor)
			require.NoError(t, err)
			for _, name := range tt.backend {
				assert.Equal(t, b.ID, input.KeyID(name), name)
			}
		})
	}
}
