package elevator

import (
	"context"
	"fmt"
	"time"
)

// The floor-visit state machine: one visit walks
// Travel -> DoorOpen -> Transfer -> DoorClose, charging every phase with its
// actual elapsed duration, never the nominal one. Doors always cycle at every
// stop, even a repeated one; only Travel is skipped when the car is already
// at the target.
// 층 방문 상태 기계: 이동 -> 문 열림 -> 승객 승하차 -> 문 닫힘 순서로 진행됩니다.

func (s *Simulation) visitFloor(ctx context.Context, target int) error {
	if err := s.travelTo(ctx, target); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	openRes := s.openDoors(ctx, target)
	if err := ctx.Err(); err != nil {
		return err
	}

	if openRes.Interrupted {
		// Close pressed while the doors were still opening: the passenger
		// transfer is skipped entirely and contributes zero time.
		s.publishEvent(EventCloseRequested, target,
			"Door close button activated - skipping passenger transfer!")
		s.logger.Info("Door opening interrupted, skipping passenger transfer",
			"floor", target,
			"elapsed", openRes.Actual,
		)
	} else {
		transferRes := s.transferPassengers(ctx, target)
		if transferRes.Interrupted {
			s.publishEvent(EventCloseRequested, target,
				"Door close button activated - closing doors!")
			s.logger.Info("Passenger transfer interrupted",
				"floor", target,
				"elapsed", transferRes.Actual,
			)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	s.closeDoors(ctx, target)
	return ctx.Err()
}

// travelTo moves the car to the target floor. Travel is never interruptible:
// the doors are closed while the car is moving.
func (s *Simulation) travelTo(ctx context.Context, target int) error {
	current := s.Floor()
	distance := target - current
	if distance == 0 {
		// Already at the target: doors still cycle, travel contributes zero.
		s.logger.Info("Already at floor, performing door operations only", "floor", target)
		s.mu.Lock()
		s.visitedFloors = append(s.visitedFloors, target)
		s.mu.Unlock()
		return nil
	}

	direction := "up"
	if distance < 0 {
		direction = "down"
		distance = -distance
	}
	nominal := time.Duration(distance) * s.profile.FloorTravelTime

	s.setPhase(PhaseTraveling)
	s.publishEvent(EventTraveling, target, fmt.Sprintf(
		"The elevator is traveling %s to floor %d - %d sec.",
		direction, target, roundSeconds(nominal)))

	res := s.clock.Wait(ctx, nominal, nil)

	// Floor-range check before committing the position change.
	if err := ValidateFloor(target); err != nil {
		return fmt.Errorf("refusing floor change: %w", err)
	}

	s.mu.Lock()
	s.currentFloor = target
	s.visitedFloors = append(s.visitedFloors, target)
	s.mu.Unlock()
	s.addElapsed(&s.totals.travel, res.Actual)
	return nil
}

// openDoors runs the interruptible door-open phase.
func (s *Simulation) openDoors(ctx context.Context, floor int) PhaseResult {
	s.setPhase(PhaseDoorsOpen)
	s.publishEvent(EventDoorsOpening, floor,
		fmt.Sprintf("The doors are opening on floor %d.", floor))

	// Reset discipline: every interruptible wait starts from an idle signal.
	s.signal.Reset()
	res := s.clock.Wait(ctx, s.profile.DoorOpenTime, s.signal)

	s.addElapsed(&s.totals.doorOps, res.Actual)
	return res
}

// transferPassengers runs the interruptible passenger-transfer phase.
func (s *Simulation) transferPassengers(ctx context.Context, floor int) PhaseResult {
	s.setPhase(PhaseTransferring)
	s.publishEvent(EventTransferring, floor,
		fmt.Sprintf("Passenger transfer on floor %d.", floor))

	s.signal.Reset()
	res := s.clock.Wait(ctx, s.profile.PassengerTransferTime, s.signal)

	s.addElapsed(&s.totals.transfer, res.Actual)
	return res
}

// closeDoors runs the final phase of a visit. Closing always takes its full
// nominal duration; a close request cannot shorten it.
func (s *Simulation) closeDoors(ctx context.Context, floor int) {
	s.setPhase(PhaseDoorsClosing)
	s.publishEvent(EventDoorsClosing, floor,
		fmt.Sprintf("The doors are closing on floor %d.", floor))

	res := s.clock.Wait(ctx, s.profile.DoorCloseTime, nil)

	s.addElapsed(&s.totals.doorOps, res.Actual)
}
