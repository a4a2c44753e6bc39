package editor

import (
	"sync"
	"time"
)

// SaveStatus is the optimistic save indicator shown next to the save
// button. It lives entirely outside the document model.
type SaveStatus string

const (
	StatusIdle   SaveStatus = "idle"
	StatusSaving SaveStatus = "saving"
	StatusSaved  SaveStatus = "saved"
)

// DefaultSavedReset is how long "saved" is shown before reverting to
// idle. A UI affordance, not a correctness mechanism.
const DefaultSavedReset = 2 * time.Second

// StatusTracker is the idle -> saving -> saved -> idle state machine.
// A failed save goes straight back to idle; the only observable signal
// is that "saved" never appears.
type StatusTracker struct {
	mu     sync.Mutex
	status SaveStatus
	reset  time.Duration
	gen    int
}

// NewStatusTracker builds a tracker. reset <= 0 uses DefaultSavedReset.
func NewStatusTracker(reset time.Duration) *StatusTracker {
	if reset <= 0 {
		reset = DefaultSavedReset
	}
	return &StatusTracker{status: StatusIdle, reset: reset}
}

func (t *StatusTracker) Status() SaveStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Begin marks a save in flight.
func (t *StatusTracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.status = StatusSaving
}

// Succeed marks the save complete and schedules the revert to idle.
// A newer Begin invalidates the pending revert.
func (t *StatusTracker) Succeed() {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	t.status = StatusSaved
	t.mu.Unlock()

	time.AfterFunc(t.reset, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.gen == gen && t.status == StatusSaved {
			t.status = StatusIdle
		}
	})
}

// Fail reverts directly to idle.
func (t *StatusTracker) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.status = StatusIdle
}
