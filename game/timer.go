package game

// timerEpsilon absorbs float drift from repeated subtraction so that a
// timer fed n*dt == duration finishes on frame n, not n+1.
const timerEpsilon = 1e-9

// CountdownTimer counts down from a fixed duration while started.
// The zero value is a finished, stopped timer; use NewCountdownTimer.
type CountdownTimer struct {
	duration float64
	started  bool
	timeLeft float64
}

// NewCountdownTimer creates a stopped timer with the full duration remaining
func NewCountdownTimer(duration float64) CountdownTimer {
	if duration < 0 {
		duration = 0
	}
	return CountdownTimer{
		duration: duration,
		timeLeft: duration,
	}
}

// Start resumes the countdown. Starting a running timer changes nothing.
func (t *CountdownTimer) Start() {
	t.started = true
}

// Stop pauses the countdown
func (t *CountdownTimer) Stop() {
	t.started = false
}

// Reset refills the remaining time without touching the started flag
func (t *CountdownTimer) Reset() {
	t.timeLeft = t.duration
}

// Update advances the countdown by dt seconds and stops the timer once it
// reaches zero.
func (t *CountdownTimer) Update(dt float64) {
	if !t.started {
		return
	}
	if dt < 0 {
		dt = 0
	}

	t.timeLeft -= dt
	if t.timeLeft <= timerEpsilon {
		t.timeLeft = 0
	}
	if t.IsDone() {
		t.started = false
	}
}

// IsDone reports whether the countdown has run out
func (t *CountdownTimer) IsDone() bool {
	return t.timeLeft == 0
}

// IsStarted reports whether the timer is counting down
func (t *CountdownTimer) IsStarted() bool {
	return t.started
}

// TimeLeft returns the remaining seconds
func (t *CountdownTimer) TimeLeft() float64 {
	return t.timeLeft
}

// Duration returns the configured length of the countdown
func (t *CountdownTimer) Duration() float64 {
	return t.duration
}
