package debounce

// Pulser implements the timed-pulse pattern: a press edge turns the LED on
// and arms the timer for a fixed hold; expiry turns it off. Same flag
// handoff and ownership rules as Detector.
type Pulser struct {
	timer Timer
	hold  uint32

	active bool

	edge    bool
	expired bool
}

// PulseStart and PulseEnd are the Pulser's events; it reuses None from the
// Detector.
const (
	PulseStart Event = iota + 16
	PulseEnd
)

// NewPulser returns a Pulser that holds the pulse for hold ticks.
func NewPulser(timer Timer, hold uint32) *Pulser {
	return &Pulser{timer: timer, hold: hold}
}

// Edge records a button pin-change interrupt. ISR context.
func (p *Pulser) Edge() {
	p.edge = true
}

// Expire records the hold timer reaching zero. ISR context.
func (p *Pulser) Expire() {
	p.expired = true
}

// Active reports whether a pulse is in progress.
func (p *Pulser) Active() bool {
	return p.active
}

// Poll consumes any pending flag and advances the state machine.
// The timer always runs to completion: edges during an active pulse
// neither restart nor extend it.
func (p *Pulser) Poll() Event {
	if !p.active {
		if p.expired {
			p.expired = false
		}
		if p.edge {
			p.edge = false
			p.timer.Start(p.hold)
			p.active = true
			return PulseStart
		}
		return None
	}

	if p.expired {
		p.expired = false
		p.edge = false
		p.active = false
		return PulseEnd
	}
	return None
}
