package store

import (
	"testing"

	"go.uber.org/goleak"
)

// Watch owns a goroutine and an fsnotify watcher; both must be gone once
// every test has cancelled its context.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
