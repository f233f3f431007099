package domain

import "time"

// ServiceInstance is one running process of a backend service as known to MyRegistry.
// Fields match API: instance_id, service_name, base_url, registered_at, last_heartbeat.
type ServiceInstance struct {
	InstanceID    string // generated at registration, never reused
	ServiceName   string
	BaseURL       string
	RegisteredAt  time.Time
	LastHeartbeat time.Time // refreshed in place by heartbeats
}

// ActiveAt reports whether the instance heartbeated less than timeout before now.
func (i ServiceInstance) ActiveAt(now time.Time, timeout time.Duration) bool {
	return now.Sub(i.LastHeartbeat) < timeout
}

// RegistryStats holds active counts over the whole registry.
type RegistryStats struct {
	TotalServices  int
	TotalInstances int
	Services       map[string]int // service name -> active instances
}
