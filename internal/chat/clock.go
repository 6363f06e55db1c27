package chat

import (
	"time"

	"github.com/google/uuid"
)

// clock bundles time and ID generation so tests can pin both.
type clock struct {
	now   func() time.Time
	newID func() string
}

func newClock() clock {
	return clock{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// timestamp returns the wire representation of "now".
func (c clock) timestamp() string {
	return c.now().UTC().Format(time.RFC3339Nano)
}
