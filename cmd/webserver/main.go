package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"snakeweb/pkg/game"
	"snakeweb/pkg/input"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// GameSession owns one game per connection. The browser only sends raw key
// identifiers and control actions; all game rules live in pkg/game.
type GameSession struct {
	game *game.Game

	mu      sync.Mutex // Guards game against reader/loop races
	writeMu sync.Mutex // Guards concurrent writes to the socket
	conn    *websocket.Conn

	// Pinged when an action changed the tick interval so the game loop
	// replaces its in-flight timer instead of finishing the old period.
	rearm chan struct{}
}

// ServerMessage is the envelope for everything sent to the browser
type ServerMessage struct {
	Type   string         `json:"type"`
	Config *ClientConfig  `json:"config,omitempty"`
	State  *game.Snapshot `json:"state,omitempty"`
}

// ClientConfig is sent once on connect so the page can size its canvas
type ClientConfig struct {
	GridSize int      `json:"gridSize"`
	Variants []string `json:"variants"`
}

// ClientMessage carries either a raw key identifier or a control action
type ClientMessage struct {
	Key    string `json:"key,omitempty"`
	Action string `json:"action,omitempty"`
}

func NewGameSession(conn *websocket.Conn) *GameSession {
	return &GameSession{
		game:  game.New(game.ClassicRules()),
		conn:  conn,
		rearm: make(chan struct{}, 1),
	}
}

func (s *GameSession) sendState() error {
	s.mu.Lock()
	state := s.game.GetSnapshot()
	s.mu.Unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(ServerMessage{Type: "state", State: &state})
}

func (s *GameSession) sendConfig() error {
	s.mu.Lock()
	cfg := ClientConfig{
		GridSize: s.game.Rules.GridSize,
		Variants: []string{"classic", "arcade"},
	}
	s.mu.Unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(ServerMessage{Type: "config", Config: &cfg})
}

// idle reports whether a variant switch is currently allowed
func idle(status game.Status) bool {
	return status == game.StatusNotStarted || status == game.StatusGameOver
}

func (s *GameSession) handleMessage(msg ClientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.game.Interval
	defer func() {
		if s.game.Interval != before {
			select {
			case s.rearm <- struct{}{}:
			default:
			}
		}
	}()

	if msg.Key != "" {
		if dir, ok := input.ParseKeyName(msg.Key); ok {
			s.game.SetDirection(dir)
		} else if input.IsPauseKeyName(msg.Key) {
			s.game.TogglePause()
		}
		return
	}

	switch msg.Action {
	case "start":
		s.game.Start()
	case "pause":
		s.game.Pause()
	case "resume":
		s.game.Resume()
	case "reset":
		s.game.Reset()
	case "restart":
		s.game.Restart()
	case "speed_up":
		s.game.SpeedUp()
	case "speed_down":
		s.game.SlowDown()
	case "toggle_walls":
		s.game.ToggleWallPolicy()
	case "variant_classic":
		if idle(s.game.Status) {
			s.game = game.New(game.ClassicRules())
		}
	case "variant_arcade":
		if idle(s.game.Status) {
			s.game = game.New(game.ArcadeRules())
		}
	}
}

// interval reads the current tick interval under the lock
func (s *GameSession) interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Interval
}

// advance runs one tick under the lock
func (s *GameSession) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Advance()
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	log.Println("New WebSocket connection from:", r.RemoteAddr)

	s := NewGameSession(conn)

	if err := s.sendConfig(); err != nil {
		return
	}
	if err := s.sendState(); err != nil {
		return
	}

	// Closed by the reader goroutine when the client goes away,
	// which unblocks the tick loop below.
	done := make(chan struct{})

	// Input handling goroutine
	go func() {
		defer close(done)
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				log.Println("Read error:", err)
				return
			}
			s.handleMessage(msg)
			// Push a state update right away so the UI feels responsive
			if err := s.sendState(); err != nil {
				return
			}
		}
	}()

	// Game loop. The timer is torn down and re-created with the game's
	// current interval after every tick, so the speed ramp and manual
	// adjustments change the pace without touching an in-flight timer.
	timer := time.NewTimer(s.interval())
	defer func() { timer.Stop() }()

	for {
		select {
		case <-done:
			return
		case <-s.rearm:
			timer.Stop()
			timer = time.NewTimer(s.interval())
		case <-timer.C:
			s.advance()
			if err := s.sendState(); err != nil {
				log.Println("Write error:", err)
				return
			}
			timer.Stop()
			timer = time.NewTimer(s.interval())
		}
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	staticDir := flag.String("static", "web/static", "static asset directory")
	flag.Parse()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws", handleWebSocket)
	r.Handle("/*", http.FileServer(http.Dir(*staticDir)))

	fmt.Printf("🚀 Snake Web Server starting on http://localhost%s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}
