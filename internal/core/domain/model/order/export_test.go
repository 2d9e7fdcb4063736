package order

import "time"

// SetNow replaces the clock used for updatedAt and returns a function restoring it.
func SetNow(f func() time.Time) func() {
	prev := now
	now = f
	return func() { now = prev }
}
