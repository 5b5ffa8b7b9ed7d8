// Package service orders the startup and shutdown of long-lived process resources
package service

// Service is a resource started once before the explorer runs and stopped after
// Stop must be safe to call after a failed or skipped Start
type Service interface {
	// Name returns the unique identifier used in dependency lists
	Name() string

	// Dependencies returns names of services that must start first
	Dependencies() []string

	// Start acquires the resource
	Start() error

	// Stop releases the resource
	Stop()
}
