package network

import (
	"context"

	"github.com/lixenwraith/clack/status"
)

// Service wraps the spectator Server as a service.Service
type Service struct {
	hub    *Hub
	server *Server
}

// NewService builds the hub and server for cfg
func NewService(cfg *Config, reg *status.Registry) *Service {
	hub := NewHub(cfg)
	return &Service{hub: hub, server: NewServer(cfg, hub, reg)}
}

func (s *Service) Name() string { return "network" }

func (s *Service) Dependencies() []string { return nil }

func (s *Service) Init() error { return nil }

// Start binds the listener; an address in use fails startup
func (s *Service) Start() error {
	return s.server.Start()
}

func (s *Service) Stop() error {
	if s.server.Addr() == nil {
		return nil
	}
	return s.server.Shutdown(context.Background())
}

// Hub returns the render sink feeding spectators
func (s *Service) Hub() *Hub { return s.hub }

// Server returns the HTTP server
func (s *Service) Server() *Server { return s.server }
