package interfaces

import "time"

// TimeProvider supplies the current time for liveness checks.
// Injected so tests can move a clock forward instead of sleeping through heartbeat timeouts.
//
// Used by service.RegistryStore to stamp registrations and heartbeats and to decide freshness.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time. Production passes time.Now so comparisons use the monotonic clock.
	Now() time.Time
}
