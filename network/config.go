package network

import "time"

// Config holds spectator server configuration
type Config struct {
	// Address to bind
	Address string

	// Connection limits
	MaxSpectators int

	// Timing
	WriteTimeout    time.Duration
	PingInterval    time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns loopback-only defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "127.0.0.1:7777",
		MaxSpectators:   16,
		WriteTimeout:    5 * time.Second,
		PingInterval:    30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 4 * 1024,
		SendQueueSize:   8,
	}
}

// DebugConfig returns defaults bound to addr
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}
