package focus

import (
	"context"
	"sync"
	"time"
)

// Repeat invokes fn once per interval on its own goroutine until the
// returned stop function is called or ctx is cancelled. Stop is
// idempotent and releases the underlying ticker deterministically, so
// closing a timer view cannot leak a recurring callback.
func Repeat(ctx context.Context, interval time.Duration, fn func()) (stop func()) {
	stopChan := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-stopChan:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		once.Do(func() { close(stopChan) })
	}
}
