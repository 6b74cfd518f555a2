//go:build cortexm

// Package systick runs a one-shot countdown on the Cortex-M SysTick
// interrupt. The examples use it as the debounce/hold timer: the state
// machine arms it with Start and its expiry callback sets the machine's
// expired flag from interrupt context.
//
// SysTick is a single hardware resource, so the countdown is package
// level; Configure registers the one expiry callback for the program.
package systick

import (
	"device/arm"
	"machine"
)

var (
	// remaining is the armed countdown in ticks. Written by Start from
	// the main loop and decremented in the handler; single-word access,
	// no locking.
	remaining uint32

	onExpire func()
)

// Configure programs SysTick to fire hz times per second and registers the
// callback invoked, in interrupt context, when an armed countdown reaches
// zero.
func Configure(hz uint32, callback func()) error {
	onExpire = callback
	return arm.SetupSystemTimer(machine.CPUFrequency() / hz)
}

// Start arms the countdown for ticks SysTick periods. Restarting an armed
// countdown replaces it.
func Start(ticks uint32) {
	remaining = ticks
}

// Stop disarms the countdown without firing the callback.
func Stop() {
	remaining = 0
}

//go:export SysTick_Handler
func handleSystick() {
	// The NVIC has already cleared the pending state for this exception;
	// all that is left is the countdown itself.
	if remaining == 0 {
		return
	}
	remaining--
	if remaining == 0 && onExpire != nil {
		onExpire()
	}
}

// Timer adapts the package countdown to the state machines' Timer
// interface.
type Timer struct{}

func (Timer) Start(ticks uint32) { Start(ticks) }
