package input

import "github.com/Alia5/padclick/binding"

// KeyID returns the namespaced identifier for a backend key name such as
// "KEY_A" (evdev) or "Left Shift" (SDL). It returns "" for an empty name.
func KeyID(name string) string {
	n := binding.KeyName(name)
	if n == "" {
		return ""
	}
	return binding.ID(binding.NamespaceKey, n)
}
