package elevator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tiendc/go-deepcopy"
)

// eventBuffer returns the narration channel capacity for an itinerary: a
// visit publishes at most four phase events, plus one completion event, with
// headroom for notices. A computed-mode run finishes before any consumer gets
// scheduled, so the buffer must hold the whole narration.
func eventBuffer(targets int) int {
	return 4*targets + 2
}

// totals holds the per-category accumulators. Invariant: grand is always the
// exact sum of the other three.
type totals struct {
	travel   time.Duration
	doorOps  time.Duration
	transfer time.Duration
	grand    time.Duration
}

// Stats is the statistics snapshot exposed after a run. Times are whole
// seconds, rounded half-up from the internal duration accumulators.
// Stats는 실행 후 노출되는 통계 스냅샷입니다.
type Stats struct {
	TotalTime             int   `json:"totalTime"`
	TravelTime            int   `json:"travelTime"`
	DoorOperationTime     int   `json:"doorOperationTime"`
	PassengerTransferTime int   `json:"passengerTransferTime"`
	VisitedFloors         []int `json:"visitedFloors"`
}

// Simulation drives one itinerary through the floor-visit state machine.
// All mutable state is owned by the goroutine calling Run; the door-control
// listener shares nothing with it except the interrupt signal.
// Simulation은 층 방문 상태 기계를 통해 하나의 운행 일정을 수행합니다.
type Simulation struct {
	mu       sync.RWMutex
	profile  Profile
	targets  []int
	realTime bool

	clock  *Clock
	signal *InterruptSignal

	// --- State (가변 상태) ---
	phase         Phase
	currentFloor  int
	visitedFloors []int
	totals        totals

	// --- Observability ---
	logger            *slog.Logger
	eventCh           chan Event
	droppedEventCount atomic.Uint64
}

// New initializes a simulation with strict validation (Fail Fast): the
// profile and every floor must be valid before any phase runs.
// New는 엄격한 검증과 함께 시뮬레이션을 초기화합니다.
func New(profile Profile, startFloor int, targets []int, realTime bool) (*Simulation, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateFloor(startFloor); err != nil {
		return nil, fmt.Errorf("start floor: %w", err)
	}
	if len(targets) == 0 {
		return nil, errors.New("at least one target floor is required")
	}
	for _, floor := range targets {
		if err := ValidateFloor(floor); err != nil {
			return nil, fmt.Errorf("target floor: %w", err)
		}
	}

	s := &Simulation{
		profile:       profile,
		targets:       append([]int(nil), targets...),
		realTime:      realTime,
		clock:         NewClock(realTime),
		signal:        &InterruptSignal{},
		phase:         PhaseIdle,
		currentFloor:  startFloor,
		visitedFloors: []int{startFloor},
		eventCh:       make(chan Event, eventBuffer(len(targets))),
		logger:        slog.Default().With("component", "simulation"),
	}

	s.logger.Info("Simulation initialized",
		"start_floor", startFloor,
		"targets", targets,
		"real_time", realTime,
	)
	return s, nil
}

// Phase returns the current visit phase safely.
// Phase는 현재 방문 단계를 안전하게 반환합니다.
func (s *Simulation) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Floor returns the current floor safely.
// Floor는 현재 층을 안전하게 반환합니다.
func (s *Simulation) Floor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentFloor
}

// RealTime reports whether waits are performed on the wall clock.
func (s *Simulation) RealTime() bool {
	return s.realTime
}

// Events returns the read-only channel of narration events.
// Events는 내레이션 이벤트를 위한 읽기 전용 채널을 반환합니다.
func (s *Simulation) Events() <-chan Event {
	return s.eventCh
}

// DroppedEventCount returns diagnostic metric for channel health.
// DroppedEventCount는 버퍼 오버플로우로 버려진 이벤트 수를 반환합니다.
func (s *Simulation) DroppedEventCount() uint64 {
	return s.droppedEventCount.Load()
}

// Stats returns a snapshot of the accumulated statistics. Safe to call at any
// time; the visited-floor sequence is deep-copied so callers can hold it.
// Stats는 누적 통계의 스냅샷을 반환합니다.
func (s *Simulation) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var visited []int
	if err := deepcopy.Copy(&visited, &s.visitedFloors); err != nil {
		panic(err)
	}

	return Stats{
		TotalTime:             roundSeconds(s.totals.grand),
		TravelTime:            roundSeconds(s.totals.travel),
		DoorOperationTime:     roundSeconds(s.totals.doorOps),
		PassengerTransferTime: roundSeconds(s.totals.transfer),
		VisitedFloors:         visited,
	}
}

// Run executes the itinerary and returns the final statistics. Targets are
// visited exactly in the order given: no reordering, no deduplication,
// backtracking allowed. The only early exit is context cancellation, in which
// case the statistics still reflect the time genuinely spent.
// Run은 운행 일정을 순서대로 실행하고 최종 통계를 반환합니다.
func (s *Simulation) Run(ctx context.Context) (Stats, error) {
	s.logger.Info("Simulation running",
		"start_floor", s.Floor(),
		"floors_to_visit", s.targets,
	)

	for _, target := range s.targets {
		if err := s.visitFloor(ctx, target); err != nil {
			s.setPhase(PhaseIdle)
			s.logger.Warn("Simulation stopped early", "floor", s.Floor(), "error", err)
			return s.Stats(), err
		}
		t := s.totalsSnapshot()
		s.logger.Info("Completed floor", "floor", target,
			"travel", t.travel,
			"doors", t.doorOps,
			"transfers", t.transfer,
		)
	}

	s.setPhase(PhaseIdle)
	stats := s.Stats()
	s.publishEvent(EventComplete, s.Floor(), "Simulation complete.")
	s.logger.Info("Simulation completed",
		"total", stats.TotalTime,
		"travel", stats.TravelTime,
		"doors", stats.DoorOperationTime,
		"transfers", stats.PassengerTransferTime,
		"visited", stats.VisitedFloors,
	)
	return stats, nil
}

// publishEvent sends an event to the channel without blocking the run.
// 채널이 가득 차면 이벤트를 버리고 메트릭을 증가시킵니다.
func (s *Simulation) publishEvent(eventType EventType, floor int, message string) {
	event := Event{
		Type:      eventType,
		Floor:     floor,
		Message:   message,
		Timestamp: time.Now(),
	}

	select {
	case s.eventCh <- event:
	default:
		dropped := s.droppedEventCount.Add(1)
		if dropped%100 == 1 {
			s.logger.Error("Event channel saturated", "dropped", dropped, "type", eventType)
		}
	}
}

func (s *Simulation) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

// addElapsed charges one phase's actual elapsed time to its category and to
// the grand total. Nominal durations are never charged here.
func (s *Simulation) addElapsed(category *time.Duration, actual time.Duration) {
	s.mu.Lock()
	*category += actual
	s.totals.grand += actual
	s.mu.Unlock()
}

func (s *Simulation) totalsSnapshot() totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totals
}

func roundSeconds(d time.Duration) int {
	return int((d + 500*time.Millisecond) / time.Second)
}
