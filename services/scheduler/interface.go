package scheduler

import (
	"chorus/models"
)

// AlarmScheduler registers one-shot reminder alarms.
type AlarmScheduler interface {
	// Schedule computes the alarm trigger time from the reminder's event date
	// and lead time and registers a one-shot alarm carrying the reminder's
	// id, title and message. If previousHandle is non-empty the prior alarm
	// is cancelled first (best-effort). Returns an opaque handle, or the
	// empty string when the trigger time has already passed or registration
	// failed; callers must treat an empty handle as "no alarm armed", never
	// as a save failure.
	Schedule(reminder *models.Reminder, previousHandle string) string
	// Cancel removes a registered alarm by its handle.
	Cancel(handle string) error
}
