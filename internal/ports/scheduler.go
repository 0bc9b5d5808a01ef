package ports

import "time"

// ScheduledTask is a pending or recurring callback that can be cancelled
type ScheduledTask interface {
	// Stop cancels the task. Calling Stop more than once is safe.
	Stop()
}

// Scheduler runs callbacks later, either once or repeatedly
type Scheduler interface {
	// Every calls fn once per interval until the returned task is stopped
	Every(interval time.Duration, fn func()) ScheduledTask

	// After calls fn once after delay unless the returned task is stopped first
	After(delay time.Duration, fn func()) ScheduledTask
}
