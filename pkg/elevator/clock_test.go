package elevator

import (
	"context"
	"testing"
	"time"
)

func testClock(poll time.Duration) *Clock {
	return &Clock{realTime: true, pollInterval: poll}
}

func TestClockWait_ComputedMode(t *testing.T) {
	clock := NewClock(false)

	start := time.Now()
	res := clock.Wait(context.Background(), time.Hour, nil)

	if res.Actual != time.Hour {
		t.Errorf("Expected actual %v, got %v", time.Hour, res.Actual)
	}
	if res.Interrupted {
		t.Error("Expected computed wait to never be interrupted")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Expected zero wall-clock cost, took %v", elapsed)
	}
}

func TestClockWait_RealTimeFullDuration(t *testing.T) {
	clock := testClock(5 * time.Millisecond)
	nominal := 50 * time.Millisecond

	start := time.Now()
	res := clock.Wait(context.Background(), nominal, &InterruptSignal{})

	if res.Actual != nominal {
		t.Errorf("Expected uninterrupted wait to report nominal %v, got %v", nominal, res.Actual)
	}
	if res.Interrupted {
		t.Error("Expected wait without raise to finish uninterrupted")
	}
	if elapsed := time.Since(start); elapsed < nominal {
		t.Errorf("Expected wait to block for at least %v, took %v", nominal, elapsed)
	}
}

func TestClockWait_Interrupted(t *testing.T) {
	clock := testClock(5 * time.Millisecond)
	nominal := time.Second
	sig := &InterruptSignal{}

	go func() {
		time.Sleep(50 * time.Millisecond)
		sig.Raise()
	}()

	start := time.Now()
	res := clock.Wait(context.Background(), nominal, sig)
	elapsed := time.Since(start)

	if !res.Interrupted {
		t.Fatal("Expected wait to be interrupted")
	}
	if res.Actual <= 0 || res.Actual >= nominal {
		t.Errorf("Expected 0 < actual < nominal, got %v", res.Actual)
	}
	if elapsed >= nominal {
		t.Errorf("Expected early wake, wait took %v", elapsed)
	}
	if sig.TryConsume() {
		t.Error("Expected the raise to be consumed by the wait")
	}
}

func TestClockWait_DoubleRaiseCancelsOneWait(t *testing.T) {
	clock := testClock(5 * time.Millisecond)
	sig := &InterruptSignal{}

	// Two raises before any wait consumes them.
	sig.Raise()
	sig.Raise()

	first := clock.Wait(context.Background(), 500*time.Millisecond, sig)
	if !first.Interrupted {
		t.Fatal("Expected first wait to be interrupted")
	}

	// The reset discipline clears anything left over before the next wait.
	sig.Reset()
	nominal := 30 * time.Millisecond
	second := clock.Wait(context.Background(), nominal, sig)
	if second.Interrupted {
		t.Error("Expected second wait to run its full course")
	}
	if second.Actual != nominal {
		t.Errorf("Expected second wait to report nominal %v, got %v", nominal, second.Actual)
	}
}

func TestClockWait_ContextCancelled(t *testing.T) {
	clock := testClock(5 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	res := clock.Wait(ctx, time.Second, nil)

	if res.Interrupted {
		t.Error("Expected cancellation to not count as an interrupt")
	}
	if !res.Cancelled {
		t.Error("Expected cancelled wait to be marked as cancelled")
	}
	if res.Actual >= time.Second {
		t.Errorf("Expected cancelled wait to end early, reported %v", res.Actual)
	}
}
