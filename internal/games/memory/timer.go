package memory

import (
	"fmt"
	"time"
)

// CountdownTimer is the round clock. Remaining time is always the budget minus
// the wall time elapsed since the start, never negative.
type CountdownTimer struct {
	startedAt time.Time
	lastTick  time.Time
	budget    time.Duration
	span      time.Duration // budget without held time
	remaining time.Duration
}

// NewCountdownTimer creates a timer started at now.
func NewCountdownTimer(budget time.Duration, now time.Time) *CountdownTimer {
	t := &CountdownTimer{}
	t.Start(budget, now)
	return t
}

// Start restarts the timer with a fresh budget.
func (t *CountdownTimer) Start(budget time.Duration, now time.Time) {
	t.startedAt = now
	t.lastTick = now
	t.budget = max(budget, 0)
	t.span = t.budget
	t.recompute()
}

// Tick observes the current time. Time going backwards is ignored.
func (t *CountdownTimer) Tick(now time.Time) {
	if now.Before(t.lastTick) {
		return
	}
	t.lastTick = now
	t.recompute()
}

// Hold observes the current time without letting the clock run: the elapsed
// time since the last observation is added to the budget.
func (t *CountdownTimer) Hold(now time.Time) {
	if now.After(t.lastTick) {
		t.budget += now.Sub(t.lastTick)
		t.lastTick = now
	}
	t.recompute()
}

// Extend adds d to the budget.
func (t *CountdownTimer) Extend(d time.Duration) {
	t.budget += d
	t.span += d
	t.recompute()
}

// Reduce takes d from the budget, which never drops below zero.
func (t *CountdownTimer) Reduce(d time.Duration) {
	t.budget = max(t.budget-d, 0)
	t.span = max(t.span-d, 0)
	t.recompute()
}

func (t *CountdownTimer) recompute() {
	t.remaining = max(t.budget-t.lastTick.Sub(t.startedAt), 0)
}

// Remaining returns the time left as of the last observation.
func (t *CountdownTimer) Remaining() time.Duration {
	return t.remaining
}

// Budget returns the current total budget.
func (t *CountdownTimer) Budget() time.Duration {
	return t.budget
}

// Span returns the budget granted by Start, Extend and Reduce. Unlike Budget
// it does not grow while the clock is held, so Remaining/Span only shrinks
// while the clock runs.
func (t *CountdownTimer) Span() time.Duration {
	return t.span
}

// Expired reports whether the clock ran out.
func (t *CountdownTimer) Expired() bool {
	return t.remaining <= 0
}

// Urgent returns the blinking urgency flag for the remaining time.
func (t *CountdownTimer) Urgent() bool {
	return Urgent(t.remaining)
}

// Urgent flips every whole second: true when the whole seconds left are even.
func Urgent(remaining time.Duration) bool {
	return int64(max(remaining, 0)/time.Second)%2 == 0
}

// FormatClock renders a duration as MM:SS.
func FormatClock(d time.Duration) string {
	secs := int64(max(d, 0) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
