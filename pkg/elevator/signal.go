package elevator

import "sync/atomic"

// Interrupt lifecycle: Idle -> Raised -> Consumed, back to Idle on Reset.
const (
	signalIdle int32 = iota
	signalRaised
	signalConsumed
)

// InterruptSignal is the tri-state close-door flag shared between exactly two
// goroutines: the door-control listener raises it, the simulation consumes it.
// It carries no simulation data, only the control transition.
// InterruptSignal은 리스너와 시뮬레이션 두 고루틴이 공유하는 3상태 제어 플래그입니다.
type InterruptSignal struct {
	state atomic.Int32
}

// Raise marks the signal as raised. Raising an already-raised or consumed
// signal has no additional effect; the single pending raise is cleared only
// by TryConsume or Reset.
func (s *InterruptSignal) Raise() {
	s.state.CompareAndSwap(signalIdle, signalRaised)
}

// TryConsume atomically checks-and-clears a raised signal. It returns true at
// most once per Raise/Reset cycle.
func (s *InterruptSignal) TryConsume() bool {
	return s.state.CompareAndSwap(signalRaised, signalConsumed)
}

// Reset returns the signal to idle. The simulation calls this immediately
// before starting each interruptible wait, so a raise left over from an
// earlier phase can never cancel a later one.
func (s *InterruptSignal) Reset() {
	s.state.Store(signalIdle)
}
