// Package testing holds fakes shared by the package tests.
package testing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Alia5/padclick/input"
)

// ScriptedSource returns one batch per Poll call. Once the script is
// exhausted it returns empty batches.
type ScriptedSource struct {
	Batches [][]input.Event
	// Errs, when set, is returned alongside the batch of the same index.
	Errs []error

	mu     sync.Mutex
	Polls  int
	Closed int
}

func (s *ScriptedSource) Poll() ([]input.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.Polls
	s.Polls++
	var batch []input.Event
	var err error
	if i < len(s.Batches) {
		batch = s.Batches[i]
	}
	if i < len(s.Errs) {
		err = s.Errs[i]
	}
	return batch, err
}

func (s *ScriptedSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed++
	return nil
}

// PollCount returns how many times Poll ran.
func (s *ScriptedSource) PollCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Polls
}

// RecordingPointer records every controller call as "move(x,y)" or "click".
type RecordingPointer struct {
	Actions []string
	X, Y    int
	// FailMoveAt makes the move to that coordinate fail.
	FailMoveAt *[2]int
	FailClick  bool
}

var ErrInjected = errors.New("injected failure")

func (p *RecordingPointer) Move(x, y int) error {
	if p.FailMoveAt != nil && p.FailMoveAt[0] == x && p.FailMoveAt[1] == y {
		return ErrInjected
	}
	p.Actions = append(p.Actions, fmt.Sprintf("move(%d,%d)", x, y))
	p.X, p.Y = x, y
	return nil
}

func (p *RecordingPointer) Click() error {
	if p.FailClick {
		return ErrInjected
	}
	p.Actions = append(p.Actions, "click")
	return nil
}

func (p *RecordingPointer) Position() (int, int) {
	return p.X, p.Y
}

// LevelFrames is a LevelReader replaying one button state frame per Refresh.
// The last frame repeats once the script is exhausted.
type LevelFrames struct {
	Frames [][]bool
	// QuitAt and ErrAt are frame indices (1-based refresh count) at which
	// Refresh reports quit or returns Err. Zero disables them.
	QuitAt int
	ErrAt  int
	Err    error

	refreshes int
	current   []bool
	Closed    bool
}

func (l *LevelFrames) Refresh() (bool, error) {
	l.refreshes++
	if l.ErrAt != 0 && l.refreshes == l.ErrAt {
		return false, l.Err
	}
	if i := l.refreshes - 1; i < len(l.Frames) {
		l.current = l.Frames[i]
	}
	return l.QuitAt != 0 && l.refreshes == l.QuitAt, nil
}

func (l *LevelFrames) Len() int {
	n := 0
	for _, f := range l.Frames {
		n = max(n, len(f))
	}
	return n
}

func (l *LevelFrames) Pressed(index int) bool {
	return index < len(l.current) && l.current[index]
}

func (l *LevelFrames) ID(index int) string {
	return fmt.Sprintf("j:%d", index)
}

func (l *LevelFrames) Close() error {
	l.Closed = true
	return nil
}
