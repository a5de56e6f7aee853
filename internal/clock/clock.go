package clock

import "time"

// Ended is the presentation value for an auction whose end time has passed.
const Ended = "Ended"

// Clock abstracts time operations for testability.
type Clock interface {
	Now() time.Time
}

// Real is a Clock backed by the system clock.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time { return time.Now() }

// Mock is a Clock that always returns a fixed time.
type Mock struct {
	T time.Time
}

// Now returns the fixed time.
func (m Mock) Now() time.Time { return m.T }

// Active reports whether an auction ending at endTime is still running at
// now. The boundary instant counts as ended: active iff now < endTime.
func Active(endTime, now time.Time) bool {
	return now.Before(endTime)
}

// TimeLeft returns the remaining duration of an auction ending at endTime,
// clamped to zero once the auction has ended.
func TimeLeft(endTime, now time.Time) time.Duration {
	if !Active(endTime, now) {
		return 0
	}
	return endTime.Sub(now)
}

// FormatTimeLeft renders the remaining duration for clients, or Ended once
// the end time has passed.
func FormatTimeLeft(endTime, now time.Time) string {
	if !Active(endTime, now) {
		return Ended
	}
	return endTime.Sub(now).String()
}
