package pointer

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Robot drives the real pointer through robotgo.
type Robot struct {
	button string
}

// NewRobot returns a controller clicking the left button.
func NewRobot() *Robot {
	return &Robot{button: "left"}
}

// Move implements Controller. robotgo does not report move failures.
func (r *Robot) Move(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Click implements Controller.
func (r *Robot) Click() error {
	if err := robotgo.Toggle(r.button); err != nil {
		return fmt.Errorf("press %s: %w", r.button, err)
	}
	if err := robotgo.Toggle(r.button, "up"); err != nil {
		return fmt.Errorf("release %s: %w", r.button, err)
	}
	return nil
}

// Position implements Controller.
func (r *Robot) Position() (int, int) {
	return robotgo.Location()
}
