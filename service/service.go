// Package service starts and stops the long-lived subsystems around the simulation: audio device, spectator server
package service

// Service is a subsystem with a start/stop lifecycle
//
// Lifecycle:
//  1. Construction with its configuration
//  2. Init() - acquire resources that may fail (devices, sockets)
//  3. Start() - launch background goroutines
//  4. Stop() - halt goroutines, release resources; idempotent
type Service interface {
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	Init() error
	Start() error
	Stop() error
}
