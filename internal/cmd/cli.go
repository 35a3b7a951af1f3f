package cmd

import (
	"runtime"
	"time"

	"github.com/alecthomas/kong"
)

// CLI is the root kong grammar.
type CLI struct {
	Config string       `help:"Configuration file (JSON, YAML or TOML)" env:"PADCLICK_CONFIG" placeholder:"FILE"`
	Log    LogConfig    `embed:"" prefix:"log-"`
	Input  InputOptions `embed:""`

	Dispatch Dispatch      `cmd:"" default:"withargs" help:"Click bound screen positions on key or button presses"`
	Mouse    MouseMode     `cmd:"" help:"Show the pointer position"`
	Keys     KeysMode      `cmd:"" help:"Show key presses"`
	Buttons  ButtonsMode   `cmd:"" help:"Show joystick or gamepad button presses"`
	Events   EventsMode    `cmd:"" help:"Trace every raw SDL event"`
	Test     TestMode      `cmd:"" help:"Show every held joystick button each cycle"`
	Setup    ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"PADCLICK_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"PADCLICK_LOG_FILE"`
	RawFile string `help:"Write raw input events to this file" env:"PADCLICK_LOG_RAW_FILE"`
}

// InputOptions select and tune the input device. They are global so that
// one configuration file presets them for every command.
type InputOptions struct {
	Interval time.Duration `help:"Pause between poll or refresh cycles" default:"150ms" env:"PADCLICK_INTERVAL"`
	Keyboard string        `help:"Keyboard backend" enum:"evdev,sdl" default:"${default_keyboard}" env:"PADCLICK_KEYBOARD"`
	Device   string        `help:"evdev device path, auto-detected when empty" env:"PADCLICK_DEVICE"`
	QuitKey  string        `help:"Key that stops padclick (evdev backend)" default:"k:esc" env:"PADCLICK_QUIT_KEY"`
	Joystick int           `help:"SDL joystick or gamepad index" default:"0" env:"PADCLICK_JOYSTICK"`
}

// Vars returns the kong interpolation variables used by the grammar.
func Vars() kong.Vars {
	kb := "sdl"
	if runtime.GOOS == "linux" {
		kb = "evdev"
	}
	return kong.Vars{"default_keyboard": kb}
}
