package search

import (
	"sync"
	"time"
)

// Strategy decides when a raw input value becomes the committed query. The
// public search bar debounces keystrokes; the back-office search bar filters
// synchronously on every keystroke. Same interface, two implementations —
// the asymmetry is configuration, not duplicated code paths.
type Strategy interface {
	// Input feeds a new raw value. commit is invoked with the value once
	// the strategy decides it is stable; a later Input supersedes any
	// pending commit.
	Input(value string, commit func(string))

	// Stop cancels any pending commit.
	Stop()
}

// Immediate commits every input synchronously.
type Immediate struct{}

func (Immediate) Input(value string, commit func(string)) {
	commit(value)
}

func (Immediate) Stop() {}

// FixedWindow commits a value only after a quiet interval with no further
// input. Each Input restarts the window; superseded timers never fire their
// commit.
type FixedWindow struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	gen    uint64
}

// NewFixedWindow creates a debouncer with the given quiet window;
// non-positive windows fall back to 200ms.
func NewFixedWindow(window time.Duration) *FixedWindow {
	if window <= 0 {
		window = 200 * time.Millisecond
	}
	return &FixedWindow{window: window}
}

func (f *FixedWindow) Input(value string, commit func(string)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.timer = time.AfterFunc(f.window, func() {
		// A timer that lost the race to Stop/Input may still fire; the
		// generation check keeps superseded values from committing.
		f.mu.Lock()
		stale := gen != f.gen
		f.mu.Unlock()
		if stale {
			return
		}
		commit(value)
	})
}

func (f *FixedWindow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
