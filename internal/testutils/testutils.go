package testutils

import (
	"testing"
	"time"
)

// WaitClosed waits for ch to close, failing the test after timeout. It
// guards tests against a hung drain without sprinkling raw selects around.
func WaitClosed(t *testing.T, ch <-chan struct{}, timeout time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatalf("channel not closed within %v", timeout)
	}
}

// RunAsync runs fn in a goroutine and returns a channel closed when it
// finishes, so blocking calls can be bounded with WaitClosed.
func RunAsync(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	return done
}
