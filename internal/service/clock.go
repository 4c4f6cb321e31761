package service

import "time"

// Clock returns the current time in the trainer's timezone. Short and long
// dates written to client records are derived from it.
type Clock func() time.Time

// SystemClock reads the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}
