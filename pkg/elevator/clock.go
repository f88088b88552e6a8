package elevator

import (
	"context"
	"time"
)

// defaultPollInterval bounds how long a raised interrupt can go unnoticed
// during a real-time wait.
const defaultPollInterval = 100 * time.Millisecond

// PhaseResult reports one timed wait. Actual never exceeds Nominal, with
// equality exactly when the wait ran its full course: a shortened wait
// carries either Interrupted (close-door signal) or Cancelled (context),
// never silently neither.
// PhaseResult는 한 번의 대기 결과를 보고합니다.
type PhaseResult struct {
	Nominal     time.Duration
	Actual      time.Duration
	Interrupted bool
	Cancelled   bool
}

// Clock performs the timed waits of the simulation. With realTime off every
// wait returns immediately at zero wall-clock cost: the simulation is
// computed, not performed.
// Clock은 시뮬레이션의 시간 대기를 수행합니다.
type Clock struct {
	realTime     bool
	pollInterval time.Duration
}

// NewClock creates a clock for the given mode.
func NewClock(realTime bool) *Clock {
	return &Clock{
		realTime:     realTime,
		pollInterval: defaultPollInterval,
	}
}

// Wait blocks until nominal elapses or interrupt transitions to raised,
// whichever comes first. A nil interrupt makes the wait non-interruptible.
// On the interrupt path the raise is consumed and Actual holds the measured
// wall-clock time. Context cancellation also ends the wait early, without
// marking it interrupted.
// Wait은 시간이 경과하거나 인터럽트가 발생할 때까지 대기합니다.
func (c *Clock) Wait(ctx context.Context, nominal time.Duration, interrupt *InterruptSignal) PhaseResult {
	if !c.realTime || nominal <= 0 {
		return PhaseResult{Nominal: nominal, Actual: nominal}
	}

	start := time.Now()
	timer := time.NewTimer(nominal)
	defer stopTimer(timer)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return PhaseResult{
				Nominal:   nominal,
				Actual:    clampElapsed(start, nominal),
				Cancelled: true,
			}

		case <-timer.C:
			return PhaseResult{Nominal: nominal, Actual: nominal}

		case <-ticker.C:
			if interrupt != nil && interrupt.TryConsume() {
				return PhaseResult{
					Nominal:     nominal,
					Actual:      clampElapsed(start, nominal),
					Interrupted: true,
				}
			}
		}
	}
}

// clampElapsed keeps the Actual <= Nominal contract even when the last poll
// tick lands past the deadline.
func clampElapsed(start time.Time, nominal time.Duration) time.Duration {
	elapsed := time.Since(start)
	if elapsed > nominal {
		return nominal
	}
	return elapsed
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
