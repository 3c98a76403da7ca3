package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/clack/physics"
	"github.com/lixenwraith/clack/status"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, cfg *Config) (*Server, *Hub, *status.Registry, *httptest.Server) {
	t.Helper()
	if cfg == nil {
		cfg = DefaultConfig()
	}
	hub := NewHub(cfg)
	reg := status.NewRegistry()
	srv := NewServer(cfg, hub, reg)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		hub.Close()
		ts.Close()
	})
	return srv, hub, reg, ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode
}

func dialWS(t *testing.T, ts *httptest.Server) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	return websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHealth(t *testing.T) {
	_, _, _, ts := newTestServer(t, nil)

	var body map[string]any
	if code := getJSON(t, ts.URL+"/health", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestStateBeforeAndAfterFrame(t *testing.T) {
	_, hub, _, ts := newTestServer(t, nil)

	var errBody map[string]any
	if code := getJSON(t, ts.URL+"/state", &errBody); code != http.StatusServiceUnavailable {
		t.Errorf("status before first frame = %d, want 503", code)
	}

	if err := hub.Render(physics.State{Collisions: 42, Momentum: -1e7}); err != nil {
		t.Fatal(err)
	}

	var state physics.State
	if code := getJSON(t, ts.URL+"/state", &state); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if state.Collisions != 42 || state.Momentum != -1e7 {
		t.Errorf("state = %+v", state)
	}
}

func TestStats(t *testing.T) {
	_, _, reg, ts := newTestServer(t, nil)
	reg.Ints.Get(status.KeyCollisions).Store(7)

	var body map[string]any
	if code := getJSON(t, ts.URL+"/stats", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	// JSON numbers decode as float64
	if body[status.KeyCollisions] != float64(7) {
		t.Errorf("collisions = %v", body[status.KeyCollisions])
	}
	if _, ok := body[status.KeySpectators]; !ok {
		t.Error("spectator count missing")
	}
}

func TestWebsocketReceivesFrames(t *testing.T) {
	_, hub, _, ts := newTestServer(t, nil)

	conn, _, err := dialWS(t, ts)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	if err := hub.Render(physics.State{Collisions: 5}); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg StateMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != MessageTypeState || msg.State.Collisions != 5 {
		t.Errorf("message = %+v", msg)
	}

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestWebsocketSpectatorLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSpectators = 1
	_, hub, _, ts := newTestServer(t, cfg)

	first, _, err := dialWS(t, ts)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer first.Close()
	waitForClients(t, hub, 1)

	_, resp, err := dialWS(t, ts)
	if err == nil {
		t.Fatal("second spectator should be rejected")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("rejection response = %v", resp)
	}
}

func TestHubDropsForSlowSpectator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SendQueueSize = 1
	hub := NewHub(cfg)

	// A registered spectator whose writer never drains
	c := &spectator{send: make(chan []byte, cfg.SendQueueSize)}
	hub.clients[c] = struct{}{}

	for i := 0; i < 3; i++ {
		if err := hub.Render(physics.State{Collisions: uint64(i)}); err != nil {
			t.Fatal(err)
		}
	}
	if hub.Dropped() != 2 {
		t.Errorf("dropped = %d, want 2", hub.Dropped())
	}
	if latest, ok := hub.Latest(); !ok || latest.Collisions != 2 {
		t.Errorf("latest = %+v ok=%v", latest, ok)
	}

	hub.Close()
	if _, ok := <-c.send; !ok {
		t.Error("queued frame lost on close")
	}
	if _, ok := <-c.send; ok {
		t.Error("send channel not closed")
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := NewServer(DebugConfig("127.0.0.1:0"), NewHub(nil), status.NewRegistry())
	if srv.Addr() != nil {
		t.Error("Addr before Start should be nil")
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()

	if err := srv.Shutdown(t.Context()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestServiceLifecycle(t *testing.T) {
	svc := NewService(DebugConfig("127.0.0.1:0"), status.NewRegistry())
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop before Start: %v", err)
	}
	if err := svc.Init(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if svc.Server().Addr() == nil || svc.Hub() == nil {
		t.Fatal("service not wired")
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}
