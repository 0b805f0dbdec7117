package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds unit tests that talk to a stub service.
const DefaultTimeout = 5 * time.Second

// Context returns a context with timeout tied to the test lifecycle.
// The timeout is shortened when the test deadline is closer.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, isDeadliner := t.(interface{ Deadline() (time.Time, bool) }); isDeadliner {
		if deadline, ok := dt.Deadline(); ok {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
