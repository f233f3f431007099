package service

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/google/uuid"
)

// DefaultHeartbeatTimeout is how long an instance stays active without a heartbeat.
const DefaultHeartbeatTimeout = 30 * time.Second

// maxIDAttempts bounds regeneration when the id generator returns an id that is already live.
const maxIDAttempts = 16

// StoreOption configures a RegistryStore.
type StoreOption func(*RegistryStore)

// WithTimeProvider replaces the wall clock used to stamp and judge heartbeats.
func WithTimeProvider(tp interfaces.TimeProvider) StoreOption {
	return func(s *RegistryStore) {
		s.clock = helpers.NilPanic(tp, "service.registry_store.go: time provider is required")
	}
}

// WithIDGenerator replaces uuid.NewString as the instance id source.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *RegistryStore) {
		s.newID = helpers.NilPanic(gen, "service.registry_store.go: id generator is required")
	}
}

// RegistryStore implements interfaces.Registry and interfaces.Evictor. It is the single authoritative
// in-memory directory: service name → instances in registration order, plus an instance id → service name
// index so heartbeat and deregister only scan one service. Every mutation runs under mu; reads copy
// the relevant sequences under mu and apply the freshness filter after releasing it.
// A service key never maps to an empty sequence.
type RegistryStore struct {
	heartbeatTimeout time.Duration
	clock            interfaces.TimeProvider
	newID            func() string

	mu       sync.Mutex
	services map[string][]domain.ServiceInstance
	owners   map[string]string
}

var (
	_ interfaces.Registry = (*RegistryStore)(nil)
	_ interfaces.Evictor  = (*RegistryStore)(nil)
)

// NewRegistryStore creates an empty store. A non-positive heartbeatTimeout falls back to DefaultHeartbeatTimeout.
//
// Called from cmd/registry at startup; tests pass WithTimeProvider with a fake clock.
func NewRegistryStore(heartbeatTimeout time.Duration, opts ...StoreOption) *RegistryStore {
	if heartbeatTimeout <= 0 {
		heartbeatTimeout = DefaultHeartbeatTimeout
	}
	s := &RegistryStore{
		heartbeatTimeout: heartbeatTimeout,
		clock:            NewTimeProvider(time.Now),
		newID:            uuid.NewString,
		services:         make(map[string][]domain.ServiceInstance),
		owners:           make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HeartbeatTimeout returns the freshness window used by reads and eviction.
func (s *RegistryStore) HeartbeatTimeout() time.Duration {
	return s.heartbeatTimeout
}

// Register allocates a fresh id and appends the new instance to serviceName's sequence.
// baseURL is stored verbatim; callers validate its shape.
func (s *RegistryStore) Register(serviceName, baseURL string) domain.ServiceInstance {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	inst := domain.ServiceInstance{
		InstanceID:    s.allocateIDLocked(),
		ServiceName:   serviceName,
		BaseURL:       baseURL,
		RegisteredAt:  now,
		LastHeartbeat: now,
	}
	s.services[serviceName] = append(s.services[serviceName], inst)
	s.owners[inst.InstanceID] = serviceName
	return inst
}

// allocateIDLocked draws ids until one is not held by a live instance. Caller must hold s.mu.
func (s *RegistryStore) allocateIDLocked() string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = s.newID()
		if _, taken := s.owners[id]; !taken && id != "" {
			return id
		}
	}
	panic(fmt.Sprintf("service.registry_store.go: id generator keeps returning taken id %q", id))
}

// Heartbeat sets the instance's last heartbeat to now.
func (s *RegistryStore) Heartbeat(instanceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, idx, ok := s.locateLocked(instanceID)
	if !ok {
		return NewEntityNotFoundError(fmt.Sprintf("Instance %s not found", instanceID), nil)
	}
	s.services[name][idx].LastHeartbeat = s.clock.Now()
	return nil
}

// Deregister removes the instance and prunes its service when the sequence becomes empty.
func (s *RegistryStore) Deregister(instanceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, idx, ok := s.locateLocked(instanceID)
	if !ok {
		return NewEntityNotFoundError(fmt.Sprintf("Instance %s not found", instanceID), nil)
	}
	rest := slices.Delete(slices.Clone(s.services[name]), idx, idx+1)
	if len(rest) == 0 {
		delete(s.services, name)
	} else {
		s.services[name] = rest
	}
	delete(s.owners, instanceID)
	return nil
}

// locateLocked finds the service and position of instanceID. Caller must hold s.mu.
func (s *RegistryStore) locateLocked(instanceID string) (string, int, bool) {
	name, ok := s.owners[instanceID]
	if !ok {
		return "", 0, false
	}
	idx := slices.IndexFunc(s.services[name], func(i domain.ServiceInstance) bool {
		return i.InstanceID == instanceID
	})
	if idx < 0 {
		return "", 0, false
	}
	return name, idx, true
}

// ListActive returns serviceName's active instances in registration order. Stale instances are
// skipped but stay in storage until EvictExpired.
func (s *RegistryStore) ListActive(serviceName string) ([]domain.ServiceInstance, error) {
	s.mu.Lock()
	snapshot, ok := s.services[serviceName]
	snapshot = slices.Clone(snapshot)
	s.mu.Unlock()

	if !ok {
		return nil, NewEntityNotFoundError(fmt.Sprintf("Service '%s' not found", serviceName), nil)
	}
	active := s.filterActive(snapshot, s.clock.Now())
	if len(active) == 0 {
		return nil, NewEntityNotFoundError(fmt.Sprintf("No active instances for service '%s'", serviceName), nil)
	}
	return active, nil
}

// ListAllActive returns every service that has at least one active instance.
func (s *RegistryStore) ListAllActive() map[string][]domain.ServiceInstance {
	s.mu.Lock()
	snapshot := make(map[string][]domain.ServiceInstance, len(s.services))
	for name, instances := range s.services {
		snapshot[name] = slices.Clone(instances)
	}
	s.mu.Unlock()

	now := s.clock.Now()
	out := make(map[string][]domain.ServiceInstance, len(snapshot))
	for name, instances := range snapshot {
		if active := s.filterActive(instances, now); len(active) > 0 {
			out[name] = active
		}
	}
	return out
}

// Stats counts active services and instances.
func (s *RegistryStore) Stats() domain.RegistryStats {
	all := s.ListAllActive()
	stats := domain.RegistryStats{
		TotalServices: len(all),
		Services:      make(map[string]int, len(all)),
	}
	for name, instances := range all {
		stats.Services[name] = len(instances)
		stats.TotalInstances += len(instances)
	}
	return stats
}

// EvictExpired permanently drops every instance whose heartbeat is at least heartbeatTimeout old
// and removes services left without instances.
//
// Returns: evicted instances, for logging by the sweeper.
//
// Called from LivenessSweeper.Sweep.
func (s *RegistryStore) EvictExpired() []domain.ServiceInstance {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var evicted []domain.ServiceInstance
	for name, instances := range s.services {
		kept := make([]domain.ServiceInstance, 0, len(instances))
		for _, inst := range instances {
			if inst.ActiveAt(now, s.heartbeatTimeout) {
				kept = append(kept, inst)
				continue
			}
			evicted = append(evicted, inst)
			delete(s.owners, inst.InstanceID)
		}
		switch {
		case len(kept) == 0:
			delete(s.services, name)
		case len(kept) != len(instances):
			s.services[name] = kept
		}
	}
	return evicted
}

func (s *RegistryStore) filterActive(instances []domain.ServiceInstance, now time.Time) []domain.ServiceInstance {
	active := make([]domain.ServiceInstance, 0, len(instances))
	for _, inst := range instances {
		if inst.ActiveAt(now, s.heartbeatTimeout) {
			active = append(active, inst)
		}
	}
	return active
}
