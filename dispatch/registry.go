// Package dispatch drives the poll, lookup, invoke cycle that turns input
// events into actions.
package dispatch

import (
	"log/slog"
	"sort"
	"strings"
)

// Action is invoked synchronously when its identifier is pressed.
type Action interface {
	Execute() error
}

// ActionFunc adapts a function to Action.
type ActionFunc func() error

func (f ActionFunc) Execute() error { return f() }

// Registry maps normalized identifiers to actions. It is not safe for
// concurrent mutation; build it before Run and leave it alone afterwards.
type Registry struct {
	actions map[string]Action
	logger  *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{actions: make(map[string]Action), logger: logger}
}

// Register inserts or replaces the action bound to id. The last registration
// of an identifier wins.
func (r *Registry) Register(id string, a Action) {
	key := Normalize(id)
	if _, ok := r.actions[key]; ok {
		r.logger.Debug("replacing binding", "id", key)
	}
	r.actions[key] = a
}

// Lookup returns the action bound to id, if any.
func (r *Registry) Lookup(id string) (Action, bool) {
	a, ok := r.actions[Normalize(id)]
	return a, ok
}

// Len returns the number of bindings.
func (r *Registry) Len() int { return len(r.actions) }

// IDs returns the registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Normalize trims and lower-cases an identifier.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
