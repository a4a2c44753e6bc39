package editor_test

import (
	"testing"
	"time"

	"go-resume-builder/internal/editor"

	"github.com/stretchr/testify/assert"
)

func TestStatusTracker(t *testing.T) {
	t.Run("Should start idle", func(t *testing.T) {
		tracker := editor.NewStatusTracker(0)
		assert.Equal(t, editor.StatusIdle, tracker.Status())
	})

	t.Run("Should walk idle -> saving -> saved", func(t *testing.T) {
		tracker := editor.NewStatusTracker(time.Hour)
		tracker.Begin()
		assert.Equal(t, editor.StatusSaving, tracker.Status())
		tracker.Succeed()
		assert.Equal(t, editor.StatusSaved, tracker.Status())
	})

	t.Run("Should revert saved to idle after the reset window", func(t *testing.T) {
		tracker := editor.NewStatusTracker(20 * time.Millisecond)
		tracker.Begin()
		tracker.Succeed()
		assert.Equal(t, editor.StatusSaved, tracker.Status())

		assert.Eventually(t, func() bool {
			return tracker.Status() == editor.StatusIdle
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("Should drop straight to idle on failure, never showing saved", func(t *testing.T) {
		tracker := editor.NewStatusTracker(time.Hour)
		tracker.Begin()
		tracker.Fail()
		assert.Equal(t, editor.StatusIdle, tracker.Status())
	})

	t.Run("Should not let a stale revert clobber a newer save", func(t *testing.T) {
		tracker := editor.NewStatusTracker(20 * time.Millisecond)
		tracker.Begin()
		tracker.Succeed()

		// Second save starts before the first revert fires.
		tracker.Begin()
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, editor.StatusSaving, tracker.Status())
	})
}
