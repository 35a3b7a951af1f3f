package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger traces raw input events as they arrive from a device, before
// they are normalized.
type RawLogger interface {
	Log(device string, kind string, code int, value int)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log emits a single-line raw event record with timestamp.
func (r *rawLogger) Log(device string, kind string, code int, value int) {
	if r.w == nil {
		return
	}

	line := fmt.Sprintf("%s %s %s code=%d value=%d\n",
		r.now().Format("2006/01/02 15:04:05.000"),
		device,
		kind,
		code,
		value)

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
