// Package led drives a status LED with simple blink patterns from a
// non-blocking Update call in the main loop.
package led

import "time"

// Pin is the subset of machine.Pin the indicator needs. Keeping it an
// interface lets the patterns run on the host under go test.
type Pin interface {
	High()
	Low()
}

// Patterns
type Pattern uint8

const (
	Off Pattern = iota
	On
	SlowFlash
	FastFlash
)

const (
	slowFlashPeriod = 250 * time.Millisecond
	fastFlashPeriod = 50 * time.Millisecond
)

// Indicator holds the blink state for one LED. The caller configures the
// pin as an output before handing it over.
type Indicator struct {
	pin        Pin
	pattern    Pattern
	lastToggle time.Time
	isOn       bool

	now func() time.Time
}

// New returns an Indicator for a configured output pin, initially Off.
func New(pin Pin) *Indicator {
	pin.Low()
	return &Indicator{
		pin: pin,
		now: time.Now,
	}
}

// Set switches the indicator to a new pattern. Takes effect on the next
// Update.
func (l *Indicator) Set(pattern Pattern) {
	l.pattern = pattern
}

// Update advances the blink state. Call it every main loop iteration; it
// never blocks.
func (l *Indicator) Update() {
	switch l.pattern {
	case Off:
		l.pin.Low()
		l.isOn = false
	case On:
		l.pin.High()
		l.isOn = true
	case SlowFlash:
		l.flash(slowFlashPeriod)
	case FastFlash:
		l.flash(fastFlashPeriod)
	}
}

func (l *Indicator) flash(period time.Duration) {
	now := l.now()
	if now.Sub(l.lastToggle) < period {
		return
	}
	if l.isOn {
		l.pin.Low()
	} else {
		l.pin.High()
	}
	l.isOn = !l.isOn
	l.lastToggle = now
}
