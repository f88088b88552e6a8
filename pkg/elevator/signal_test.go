package elevator

import (
	"sync"
	"testing"
)

func TestInterruptSignal_Lifecycle(t *testing.T) {
	var sig InterruptSignal

	if sig.TryConsume() {
		t.Error("Expected TryConsume on idle signal to return false")
	}

	sig.Raise()
	if !sig.TryConsume() {
		t.Error("Expected TryConsume after Raise to return true")
	}
	if sig.TryConsume() {
		t.Error("Expected second TryConsume to return false")
	}

	// A raise after consumption has no effect until the next reset.
	sig.Raise()
	if sig.TryConsume() {
		t.Error("Expected Raise on consumed signal to have no effect")
	}

	sig.Reset()
	sig.Raise()
	if !sig.TryConsume() {
		t.Error("Expected Raise after Reset to be consumable again")
	}
}

func TestInterruptSignal_DoubleRaiseSingleConsume(t *testing.T) {
	var sig InterruptSignal

	sig.Raise()
	sig.Raise()

	if !sig.TryConsume() {
		t.Error("Expected first TryConsume to return true")
	}
	if sig.TryConsume() {
		t.Error("Expected double raise to be consumable only once")
	}
}

func TestInterruptSignal_ConcurrentRaise(t *testing.T) {
	var sig InterruptSignal
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig.Raise()
		}()
	}
	wg.Wait()

	if !sig.TryConsume() {
		t.Error("Expected one consumable raise after concurrent raises")
	}
	if sig.TryConsume() {
		t.Error("Expected exactly one consumable raise, got more")
	}
}
