package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/clack/physics"
)

// ErrTooManySpectators is returned when MaxSpectators connections are open
var ErrTooManySpectators = errors.New("spectator limit reached")

// MessageTypeState tags frame snapshots on the websocket
const MessageTypeState = "state"

// StateMessage is the websocket frame payload
type StateMessage struct {
	Type  string        `json:"type"`
	State physics.State `json:"state"`
}

// spectator is one websocket client; send is closed by the hub on removal
type spectator struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frame snapshots out to websocket spectators
// Render never blocks the frame loop: a spectator whose queue is full misses the frame
type Hub struct {
	cfg      *Config
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*spectator]struct{}

	latest  atomic.Pointer[physics.State]
	dropped atomic.Int64
}

// NewHub creates a hub; cfg nil uses DefaultConfig
func NewHub(cfg *Config) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // read-only feed
			},
		},
		clients: make(map[*spectator]struct{}),
	}
}

// Render implements render.Sink
func (h *Hub) Render(state physics.State) error {
	h.latest.Store(&state)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return nil
	}

	data, err := json.Marshal(StateMessage{Type: MessageTypeState, State: state})
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
	return nil
}

// Latest returns the most recent snapshot, false before the first frame
func (h *Hub) Latest() (physics.State, bool) {
	p := h.latest.Load()
	if p == nil {
		return physics.State{}, false
	}
	return *p, true
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dropped returns the number of frames skipped for slow spectators
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// ServeWS upgrades the request and registers the spectator
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	if h.ClientCount() >= h.cfg.MaxSpectators {
		http.Error(w, ErrTooManySpectators.Error(), http.StatusServiceUnavailable)
		return ErrTooManySpectators
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("websocket upgrade: %w", err)
	}

	c := &spectator{conn: conn, send: make(chan []byte, h.cfg.SendQueueSize)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	log.Printf("[network] spectator connected from %s", r.RemoteAddr)

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

// Close disconnects every spectator
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) remove(c *spectator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		log.Printf("[network] spectator disconnected")
	}
}

// readPump discards inbound messages and detects disconnects
func (h *Hub) readPump(c *spectator) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *spectator) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("[network] websocket write: %v", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
