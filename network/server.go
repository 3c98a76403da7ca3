package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/clack/status"
)

// Server exposes the spectator API over HTTP
//
//	GET /health  liveness
//	GET /state   latest snapshot as JSON
//	GET /stats   status registry snapshot
//	GET /ws      websocket stream of snapshots
type Server struct {
	cfg     *Config
	hub     *Hub
	reg     *status.Registry
	router  *gin.Engine
	http    *http.Server
	started time.Time

	listener net.Listener
}

// NewServer wires routes; call Start to listen
func NewServer(cfg *Config, hub *Hub, reg *status.Registry) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Server{
		cfg:     cfg,
		hub:     hub,
		reg:     reg,
		started: time.Now(),
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(log.Writer()), gin.Recovery())
	router.GET("/health", s.health)
	router.GET("/state", s.state)
	router.GET("/stats", s.stats)
	router.GET("/ws", s.websocket)
	s.router = router

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Address, err)
	}
	s.listener = ln
	log.Printf("[network] spectator API on http://%s", ln.Addr())

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[network] serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, nil before Start
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown closes spectators and stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"service":    "clack",
		"uptime":     time.Since(s.started).String(),
		"spectators": s.hub.ClientCount(),
	})
}

func (s *Server) state(c *gin.Context) {
	state, ok := s.hub.Latest()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no frame rendered yet"})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (s *Server) stats(c *gin.Context) {
	s.reg.Ints.Get(status.KeySpectators).Store(int64(s.hub.ClientCount()))
	c.JSON(http.StatusOK, s.reg.Snapshot())
}

func (s *Server) websocket(c *gin.Context) {
	if err := s.hub.ServeWS(c.Writer, c.Request); err != nil {
		log.Printf("[network] %v", err)
	}
}
