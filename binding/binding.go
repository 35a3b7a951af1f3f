// Package binding parses the "<identifier>,<x>,<y>" descriptors that bind an
// input identifier to a pointer target.
package binding

import (
	"fmt"
	"strconv"
	"strings"
)

// Namespace prefixes keep like-named keys and buttons apart.
type Namespace string

const (
	NamespaceKey      Namespace = "k"
	NamespaceJoystick Namespace = "j"
	NamespaceGamepad  Namespace = "g"
)

const separator = ":"

// Binding associates a trigger identifier with an absolute screen coordinate.
type Binding struct {
	// ID is the normalized, namespaced identifier (e.g. "k:a", "j:3").
	ID string
	X  int
	Y  int
}

// Namespace returns the namespace of the binding's identifier.
func (b Binding) Namespace() Namespace {
	ns, _, _ := strings.Cut(b.ID, separator)
	return Namespace(ns)
}

// String formats the binding back into descriptor form.
func (b Binding) String() string {
	return fmt.Sprintf("%s,%d,%d", b.ID, b.X, b.Y)
}

// ConfigError reports a descriptor or binding set that cannot be used.
type ConfigError struct {
	Descriptor string
	Reason     string
}

func (e *ConfigError) Error() string {
	if e.Descriptor == "" {
		return "invalid bindings: " + e.Reason
	}
	return fmt.Sprintf("invalid binding %q: %s", e.Descriptor, e.Reason)
}

// Parse parses a single descriptor of the form "<identifier>,<x>,<y>".
func Parse(descriptor string) (Binding, error) {
	parts := strings.Split(descriptor, ",")
	if len(parts) != 3 {
		return Binding{}, &ConfigError{Descriptor: descriptor, Reason: "expected <identifier>,<x>,<y>"}
	}
	id, err := NormalizeID(parts[0])
	if err != nil {
		return Binding{}, &ConfigError{Descriptor: descriptor, Reason: err.Error()}
	}
	x, err := parseCoord(parts[1])
	if err != nil {
		return Binding{}, &ConfigError{Descriptor: descriptor, Reason: "x " + err.Error()}
	}
	y, err := parseCoord(parts[2])
	if err != nil {
		return Binding{}, &ConfigError{Descriptor: descriptor, Reason: "y " + err.Error()}
	}
	return Binding{ID: id, X: x, Y: y}, nil
}

// ParseAll parses every descriptor and returns the bindings together with
// the one namespace they share.
func ParseAll(descriptors []string) ([]Binding, Namespace, error) {
	out := make([]Binding, 0, len(descriptors))
	for _, d := range descriptors {
		b, err := Parse(d)
		if err != nil {
			return nil, "", err
		}
		out = append(out, b)
	}
	ns, err := CommonNamespace(out)
	if err != nil {
		return nil, "", err
	}
	return out, ns, nil
}

// CommonNamespace returns the single namespace shared by all bindings.
// An empty set yields an empty namespace.
func CommonNamespace(bs []Binding) (Namespace, error) {
	var ns Namespace
	for _, b := range bs {
		switch {
		case ns == "":
			ns = b.Namespace()
		case b.Namespace() != ns:
			return "", &ConfigError{
				Reason: fmt.Sprintf("cannot mix %q and %q bindings in one run", ns+separator, b.Namespace()+separator),
			}
		}
	}
	return ns, nil
}

// NormalizeID trims and lower-cases an identifier and makes sure it carries a
// namespace. Bare numbers are joystick buttons, anything else is a key. Key
// names are folded with KeyName so they match what the keyboard sources emit.
func NormalizeID(raw string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if id == "" {
		return "", fmt.Errorf("empty identifier")
	}
	ns, name, ok := strings.Cut(id, separator)
	if !ok {
		if isDigits(id) {
			return ID(NamespaceJoystick, id), nil
		}
		ns, name = string(NamespaceKey), id
	}
	switch Namespace(ns) {
	case NamespaceKey:
		name = KeyName(name)
	case NamespaceJoystick:
		if name != "" && !isDigits(name) {
			return "", fmt.Errorf("joystick button %q is not an index", name)
		}
	case NamespaceGamepad:
	default:
		return "", fmt.Errorf("unknown namespace %q", ns)
	}
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	return ID(Namespace(ns), name), nil
}

// ID builds a namespaced identifier.
func ID(ns Namespace, name string) string {
	return string(ns) + separator + strings.ToLower(name)
}

func parseCoord(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !isDigits(s) {
		return 0, fmt.Errorf("must be a non-negative integer, got %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
