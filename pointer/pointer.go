// Package pointer moves and clicks the OS pointer.
package pointer

import (
	"errors"
	"fmt"
)

// ErrActionFailed matches every *ActionError.
var ErrActionFailed = errors.New("pointer action failed")

// Controller is the pointer capability used by actions.
type Controller interface {
	// Move places the pointer at absolute screen coordinates.
	Move(x, y int) error
	// Click presses and releases the primary button.
	Click() error
	// Position returns the current pointer location.
	Position() (x, y int)
}

// ActionError wraps a controller failure for one action.
type ActionError struct {
	Op   string
	X, Y int
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s at (%d,%d): %v", e.Op, e.X, e.Y, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

func (e *ActionError) Is(target error) bool { return target == ErrActionFailed }

// MoveClick moves the pointer to (X, Y) and clicks once. The move is not
// verified before clicking.
type MoveClick struct {
	ctl  Controller
	X, Y int
}

// NewMoveClick binds a move-and-click at (x, y) to ctl.
func NewMoveClick(ctl Controller, x, y int) *MoveClick {
	return &MoveClick{ctl: ctl, X: x, Y: y}
}

// Execute runs the action synchronously.
func (a *MoveClick) Execute() error {
	if err := a.ctl.Move(a.X, a.Y); err != nil {
		return &ActionError{Op: "move", X: a.X, Y: a.Y, Err: err}
	}
	if err := a.ctl.Click(); err != nil {
		return &ActionError{Op: "click", X: a.X, Y: a.Y, Err: err}
	}
	return nil
}

func (a *MoveClick) String() string {
	return fmt.Sprintf("move-click(%d,%d)", a.X, a.Y)
}
