package input

import (
	"errors"
	"log/slog"
)

// MaxButtons bounds how many button indices a LevelSource scans.
const MaxButtons = 32

// LevelReader exposes the current (level) state of a fixed set of buttons.
type LevelReader interface {
	// Refresh pumps the underlying capability. quit reports an observed
	// request to terminate.
	Refresh() (quit bool, err error)
	// Len returns the number of buttons.
	Len() int
	Pressed(index int) bool
	// ID returns the namespaced identifier of the button at index.
	ID(index int) string
	Close() error
}

// LevelSource turns a LevelReader into edge events: a press is emitted only
// on the false to true transition of a button.
type LevelSource struct {
	reader LevelReader
	last   []bool
	logger *slog.Logger
}

// NewLevelSource wraps reader. All buttons start released.
func NewLevelSource(reader LevelReader, logger *slog.Logger) *LevelSource {
	n := min(reader.Len(), MaxButtons)
	return &LevelSource{
		reader: reader,
		last:   make([]bool, n),
		logger: logger,
	}
}

// Poll implements Source.
func (s *LevelSource) Poll() ([]Event, error) {
	quit, err := s.reader.Refresh()
	if err != nil {
		if errors.Is(err, ErrDeviceLost) {
			return nil, err
		}
		s.logger.Warn("input refresh failed", "error", err)
		return nil, nil
	}

	var events []Event
	for i := range s.last {
		pressed := s.reader.Pressed(i)
		if pressed && !s.last[i] {
			events = append(events, ButtonPress(s.reader.ID(i)))
		}
		s.last[i] = pressed
	}
	if quit {
		events = append(events, Quit())
	}
	return events, nil
}

// Held returns the identifiers of the buttons that are currently down,
// without touching edge state.
func (s *LevelSource) Held() []string {
	var held []string
	for i := range s.last {
		if s.reader.Pressed(i) {
			held = append(held, s.reader.ID(i))
		}
	}
	return held
}

// Refresh pumps the reader without generating events.
func (s *LevelSource) Refresh() (bool, error) {
	return s.reader.Refresh()
}

// Close implements Source.
func (s *LevelSource) Close() error {
	return s.reader.Close()
}
