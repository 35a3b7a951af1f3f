//go:build linux

package evdevinput

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"

	"github.com/Alia5/padclick/input"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		ev     evdev.InputEvent
		want   input.Event
		wantOK bool
	}{
		{
			name:   "key down",
			ev:     evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 1},
			want:   input.KeyPress("k:a"),
			wantOK: true,
		},
		{
			name:   "enter keeps evdev spelling",
			ev:     evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_ENTER, Value: 1},
			want:   input.KeyPress("k:enter"),
			wantOK: true,
		},
		{
			name:   "quit key",
			ev:     evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_ESC, Value: 1},
			want:   input.Quit(),
			wantOK: true,
		},
		{name: "key up", ev: evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 0}},
		{name: "autorepeat", ev: evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 2}},
		{name: "sync report", ev: evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT, Value: 0}},
		{name: "misc scan code", ev: evdev.InputEvent{Type: evdev.EV_MSC, Code: evdev.MSC_SCAN, Value: 1}},
		{name: "unnamed code", ev: evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.EvCode(0x2fe), Value: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(&tt.ev, "k:esc")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
