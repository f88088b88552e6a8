package elevator

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// closeToken is the literal command meaning "close the doors now".
const closeToken = "c"

// PressCloseButton handles one external close-door request. During an
// interruptible phase it raises the interrupt; while traveling the doors are
// already closed, so the press only produces a notice. Safe to call from any
// goroutine at any time.
// PressCloseButton은 외부의 문 닫힘 요청을 처리합니다.
func (s *Simulation) PressCloseButton() {
	switch phase := s.Phase(); phase {
	case PhaseDoorsOpen, PhaseTransferring:
		s.signal.Raise()
		s.logger.Info("Door close button pressed", "phase", phase)

	case PhaseTraveling:
		s.publishEvent(EventNotice, s.Floor(),
			"Doors are already closed (elevator is moving)")
		s.logger.Info("Door close button pressed while traveling - ignored")

	case PhaseDoorsClosing:
		s.logger.Debug("Door close button ignored, doors already closing")

	default:
		s.logger.Debug("Door close button ignored, no visit in progress")
	}
}

// ListenDoorControl consumes line-oriented door-control commands from r until
// EOF, a read error, or context cancellation. The token "c" means "close the
// doors now"; malformed or unrecognized lines are ignored, never fatal.
//
// Intended to run on its own goroutine for the lifetime of a real-time run.
// Run never joins it, so a read blocked on r cannot delay simulation
// shutdown; once the run completes, the phase gate in PressCloseButton makes
// any further fires no-ops.
// ListenDoorControl은 줄 단위의 문 제어 명령을 읽어들입니다.
func (s *Simulation) ListenDoorControl(ctx context.Context, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch line := strings.TrimSpace(scanner.Text()); line {
		case closeToken:
			s.PressCloseButton()
		case "":
		default:
			s.logger.Debug("Ignoring unrecognized door control input", "input", line)
		}
	}

	// EOF or read error: exit silently, the run continues at nominal durations.
	if err := scanner.Err(); err != nil {
		s.logger.Debug("Door control input closed", "error", err)
	}
}
