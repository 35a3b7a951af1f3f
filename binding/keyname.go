package binding

import "strings"

// keyAliases folds SDL key names onto the evdev spelling so that bindings
// work with either keyboard backend.
var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"leftgui":  "leftmeta",
	"rightgui": "rightmeta",
}

var keyNameCleaner = strings.NewReplacer(" ", "", "_", "")

// KeyName returns the canonical spelling of a key name, whether it comes from
// evdev ("KEY_ESC"), SDL ("Escape", "Keypad 1") or a descriptor ("esc").
// It returns "" for a blank name.
func KeyName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "key_")
	n = keyNameCleaner.Replace(n)
	if rest, ok := strings.CutPrefix(n, "keypad"); ok {
		n = "kp" + rest
	}
	if a, ok := keyAliases[n]; ok {
		n = a
	}
	return n
}
