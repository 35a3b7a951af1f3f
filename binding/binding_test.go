package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padclick/binding"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		expected   binding.Binding
	}{
		{name: "key with namespace", descriptor: "k:a,10,20", expected: binding.Binding{ID: "k:a", X: 10, Y: 20}},
		{name: "bare word is a key", descriptor: "Space,0,0", expected: binding.Binding{ID: "k:space", X: 0, Y: 0}},
		{name: "bare number is a joystick button", descriptor: "3,640,480", expected: binding.Binding{ID: "j:3", X: 640, Y: 480}},
		{name: "gamepad name", descriptor: "G:Start,1,2", expected: binding.Binding{ID: "g:start", X: 1, Y: 2}},
		{name: "surrounding whitespace", descriptor: "  Btn1 , 5 , 6", expected: binding.Binding{ID: "k:btn1", X: 5, Y: 6}},
		{name: "sdl key name", descriptor: "escape,10,20", expected: binding.Binding{ID: "k:esc", X: 10, Y: 20}},
		{name: "namespaced sdl key name", descriptor: "k:Return,1,1", expected: binding.Binding{ID: "k:enter", X: 1, Y: 1}},
		{name: "keypad with space", descriptor: "k:Keypad 1,1,1", expected: binding.Binding{ID: "k:kp1", X: 1, Y: 1}},
		{name: "evdev key name", descriptor: "KEY_LEFTSHIFT,2,2", expected: binding.Binding{ID: "k:leftshift", X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := binding.Parse(tt.descriptor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestParseNormalizationIsIdempotent(t *testing.T) {
	for _, d := range []string{"k:a,10,20", "A,1,1", "7,0,99", "g:DPUp,3,4", "  x ,12,13", "Escape,1,1", "Left GUI,4,4"} {
		first, err := binding.Parse(d)
		require.NoError(t, err, d)

		second, err := binding.Parse(first.String())
		require.NoError(t, err, d)
		assert.Equal(t, first, second, d)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
	}{
		{name: "missing comma", descriptor: "a10,20"},
		{name: "too many fields", descriptor: "a,1,2,3"},
		{name: "empty identifier", descriptor: ",1,2"},
		{name: "empty namespaced identifier", descriptor: "k:,1,2"},
		{name: "key name folds to nothing", descriptor: "k:key_,1,2"},
		{name: "non-integer x", descriptor: "a,one,2"},
		{name: "non-integer y", descriptor: "a,1,2.5"},
		{name: "negative coordinate", descriptor: "a,-1,2"},
		{name: "unknown namespace", descriptor: "q:a,1,2"},
		{name: "joystick name not an index", descriptor: "j:fire,1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := binding.Parse(tt.descriptor)
			require.Error(t, err)

			var cfgErr *binding.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.descriptor, cfgErr.Descriptor)
			assert.Contains(t, err.Error(), tt.descriptor)
		})
	}
}

func TestParseAllRejectsMixedNamespaces(t *testing.T) {
	_, _, err := binding.ParseAll([]string{"k:1,1,1", "j:1,2,2"})
	var cfgErr *binding.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "cannot mix")

	bs, ns, err := binding.ParseAll([]string{"1,1,1", "j:2,2,2"})
	require.NoError(t, err)
	assert.Len(t, bs, 2)
	assert.Equal(t, binding.NamespaceJoystick, ns)

	_, ns, err = binding.ParseAll(nil)
	require.NoError(t, err)
	assert.Empty(t, ns)
}

func TestParseAllStopsAtFirstMalformed(t *testing.T) {
	_, _, err := binding.ParseAll([]string{"a,1,1", "b,x,1", "c,oops"})
	var cfgErr *binding.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "b,x,1", cfgErr.Descriptor)
}

func TestNormalizeIDFoldsKeyNames(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "escape", want: "k:esc"},
		{raw: "k:ESC", want: "k:esc"},
		{raw: "return", want: "k:enter"},
		{raw: "k:left gui", want: "k:leftmeta"},
		{raw: "keypad1", want: "k:kp1"},
		{raw: "g:Start", want: "g:start"},
		{raw: "12", want: "j:12"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := binding.NormalizeID(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
