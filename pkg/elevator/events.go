package elevator

import "time"

// Phase identifies where a floor visit currently is.
// Phase는 현재 진행 중인 방문 단계를 나타냅니다.
type Phase string

const (
	PhaseIdle         Phase = "Idle"
	PhaseTraveling    Phase = "Traveling"
	PhaseDoorsOpen    Phase = "DoorsOpen"
	PhaseTransferring Phase = "Transferring"
	PhaseDoorsClosing Phase = "DoorsClosing"
)

// EventType represents the category of a narration event.
// EventType는 내레이션 이벤트의 카테고리를 나타냅니다.
type EventType string

const (
	EventTraveling      EventType = "Traveling"
	EventDoorsOpening   EventType = "DoorsOpening"
	EventTransferring   EventType = "PassengerTransfer"
	EventDoorsClosing   EventType = "DoorsClosing"
	EventCloseRequested EventType = "CloseRequested"
	EventNotice         EventType = "Notice"
	EventComplete       EventType = "Complete"
)

// Event carries one narration item. The simulation publishes an event before
// each phase begins; rendering is entirely the consumer's responsibility.
// Event는 상태 전환 시점의 내레이션 정보를 담고 있습니다.
type Event struct {
	Type      EventType
	Floor     int
	Message   string
	Timestamp time.Time
}
