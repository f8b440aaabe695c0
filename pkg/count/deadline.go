package count

import (
	"context"
	"time"
)

// deadline implements §5's checkpoint policy: callers check expired()
// before each solve() call and before starting each new hash-cell (m)
// level. A deadline with no timeout configured and no context never
// expires.
type deadline struct {
	ctx     context.Context
	at      time.Time
	enabled bool
}

func newDeadline(ctx context.Context, timeoutMS int) *deadline {
	d := &deadline{ctx: ctx}
	if timeoutMS > 0 {
		d.at = time.Now().Add(time.Duration(timeoutMS) * time.Millisecond)
		d.enabled = true
	}
	return d
}

func (d *deadline) expired() bool {
	if d.ctx != nil && d.ctx.Err() != nil {
		return true
	}
	return d.enabled && time.Now().After(d.at)
}
