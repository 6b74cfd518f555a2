// Package debounce holds the tap-detection state machines shared by the
// example firmwares. The hardware side stays outside: a pin interrupt calls
// Edge, a timer interrupt calls Expire, and the main loop calls Poll to
// consume both and drive the LED.
package debounce

// Timer is the vendor countdown the state machine arms to measure its
// debounce window. Start is called at most once per window; the timer runs
// to completion and reports expiry through the Expire method of the owning
// state machine.
type Timer interface {
	Start(ticks uint32)
}

// State machine states
type State uint8

const (
	Idle State = iota
	Waiting
)

// Event is what Poll reports back to the main loop.
type Event uint8

const (
	// None means no flag was pending.
	None Event = iota
	// Tap is a qualifying press edge; the caller performs the immediate
	// action (e.g. toggle the LED). The debounce window is now open.
	Tap
	// Settled means the debounce window closed; further edges register again.
	Settled
)

// Detector debounces a push button. A falling edge in Idle is reported as a
// Tap and opens a fixed window during which further edges are ignored.
//
// Edge and Expire run in interrupt context and only set a flag; Poll, the
// single arbitration point, runs in the main loop and is the only writer of
// state and the only consumer of the flags. Each flag is a single byte with
// one writer per direction, so no locking is needed.
type Detector struct {
	timer Timer
	wait  uint32

	state State

	edge    bool
	expired bool
}

// NewDetector returns a Detector that arms timer for wait ticks on each
// qualifying edge.
func NewDetector(timer Timer, wait uint32) *Detector {
	return &Detector{timer: timer, wait: wait}
}

// Edge records a button pin-change interrupt. Safe to call from an ISR; the
// hardware pending bit has already been acknowledged by the pin layer.
func (d *Detector) Edge() {
	d.edge = true
}

// Expire records the debounce timer reaching zero. Safe to call from an ISR.
func (d *Detector) Expire() {
	d.expired = true
}

// State reports the current state. For the main loop's status LED only.
func (d *Detector) State() State {
	return d.state
}

// Poll consumes any pending flag and advances the state machine. Call it
// from the main loop, once per iteration.
func (d *Detector) Poll() Event {
	switch d.state {
	case Idle:
		// Stale expiry from before a window was reset; drop it so it
		// cannot be mistaken for the end of the next window.
		if d.expired {
			d.expired = false
		}
		if d.edge {
			d.edge = false
			d.timer.Start(d.wait)
			d.state = Waiting
			return Tap
		}

	case Waiting:
		if d.expired {
			d.expired = false
			// Contact bounce during the window sets the edge flag
			// again; discard it, that is the whole point.
			d.edge = false
			d.state = Idle
			return Settled
		}
	}
	return None
}
