// Command web-elevator serves a browser front end for the timing simulator:
// narration events stream over a WebSocket and the close-door button feeds
// back into the running simulation.
package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"go-elevator-timing/pkg/elevator"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/xyproto/randomstring"
)

//go:embed static/*
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Message types
// 메시지 타입 정의
type ClientMessage struct {
	Action string     `json:"action"`
	Config *SimConfig `json:"config,omitempty"`
}

type SimConfig struct {
	ID         string  `json:"id"`
	StartFloor int     `json:"startFloor"`
	Floors     []int   `json:"floors"`
	Profile    string  `json:"profile"`  // "standard" or "fast"
	RealTime   bool    `json:"realTime"` // narrate on the wall clock
	TravelTime float64 `json:"travelTime,omitempty"` // seconds, overrides profile
}

type ServerMessage struct {
	Type      string          `json:"type"` // started | event | stats | error
	ID        string          `json:"id,omitempty"`
	EventType string          `json:"eventType,omitempty"`
	Floor     int             `json:"floor,omitempty"`
	Message   string          `json:"message,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
	Stats     *elevator.Stats `json:"stats,omitempty"`
}

// SimSession manages a WebSocket connection with a simulation instance.
// SimSession은 시뮬레이션 인스턴스와의 WebSocket 연결을 관리합니다.
type SimSession struct {
	conn    *websocket.Conn
	sim     *elevator.Simulation
	mu      sync.Mutex
	writeMu sync.Mutex
	done    chan struct{}
	cancel  context.CancelFunc
}

func NewSimSession(conn *websocket.Conn) *SimSession {
	return &SimSession{
		conn: conn,
		done: make(chan struct{}),
	}
}

func (s *SimSession) HandleMessages() {
	slog.Info("Session started", "remote_addr", s.conn.RemoteAddr())
	defer func() {
		close(s.done)
		if s.cancel != nil {
			s.cancel()
		}
		_ = s.conn.Close()
		slog.Info("Session ended", "remote_addr", s.conn.RemoteAddr())
	}()

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Warn("Failed to parse message", "error", err)
			continue
		}

		s.handleAction(msg)
	}
}

func (s *SimSession) handleAction(msg ClientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slog.Debug("Action received", "action", msg.Action)

	switch msg.Action {
	case "start":
		s.startSimulation(msg.Config)
	case "pressClose":
		if s.sim != nil {
			s.sim.PressCloseButton()
		}
	case "stop":
		if s.cancel != nil {
			s.cancel()
		}
		s.sim = nil
	case "getStats":
		if s.sim != nil {
			stats := s.sim.Stats()
			s.send(ServerMessage{Type: "stats", Stats: &stats})
		}
	}
}

func (s *SimSession) startSimulation(cfg *SimConfig) {
	if cfg == nil {
		slog.Warn("No config provided for start")
		s.sendError("missing simulation config")
		return
	}

	// Stop an existing run if any
	if s.cancel != nil {
		s.cancel()
	}

	id := cfg.ID
	if id == "" {
		id = randomstring.EnglishFrequencyString(10) // this should be random enough
		slog.Warn("No simulation identifier provided, generated one", "id", id)
	}

	profile := elevator.StandardProfile()
	if cfg.Profile == "fast" {
		profile = elevator.FastProfile()
	}
	if cfg.TravelTime > 0 {
		profile.FloorTravelTime = time.Duration(cfg.TravelTime * float64(time.Second))
	}

	sim, err := elevator.New(profile, cfg.StartFloor, cfg.Floors, cfg.RealTime)
	if err != nil {
		slog.Error("Failed to initialize simulation", "error", err)
		s.sendError(err.Error())
		return
	}
	s.sim = sim

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	// Stream narration events to the client
	// 내레이션 이벤트를 클라이언트로 전달
	go s.eventListener(sim)

	go func() {
		stats, err := sim.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("Simulation run error", "error", err)
		}
		s.send(ServerMessage{Type: "stats", ID: id, Stats: &stats})
	}()

	slog.Info("Simulation started",
		"id", id,
		"start", cfg.StartFloor,
		"floors", cfg.Floors,
		"real_time", cfg.RealTime,
	)
	s.send(ServerMessage{Type: "started", ID: id})
}

func (s *SimSession) eventListener(sim *elevator.Simulation) {
	eventCh := sim.Events()
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-eventCh:
			if !ok {
				return
			}
			s.send(ServerMessage{
				Type:      "event",
				EventType: string(event.Type),
				Floor:     event.Floor,
				Message:   event.Message,
				Timestamp: event.Timestamp.Format("15:04:05"),
			})
			if event.Type == elevator.EventComplete {
				return
			}
		}
	}
}

func (s *SimSession) sendError(message string) {
	s.send(ServerMessage{Type: "error", Message: message})
}

func (s *SimSession) send(msg ServerMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(msg); err != nil {
		slog.Error("Failed to write JSON message", "error", err)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}

	session := NewSimSession(conn)
	session.HandleMessages()
}

type AppConfig struct {
	Port string
}

func loadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return &AppConfig{
		Port: port,
	}
}

func main() {
	cfg := loadConfig()

	// Serve static files from embedded filesystem
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatal(err)
	}

	http.Handle("/", http.FileServer(http.FS(staticFS)))
	http.HandleFunc("/ws", handleWebSocket)

	addr := ":" + cfg.Port
	slog.Info("Starting elevator simulation web server", "addr", addr)
	slog.Info("Open http://localhost:" + cfg.Port + " in your browser")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
