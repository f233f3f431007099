package interfaces

import "myregistry/domain"

// Registry is the authoritative in-memory directory of service instances.
//
// Implemented by service.RegistryStore. Called from handlers.HTTPServer for every registry endpoint.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Register creates a new instance of serviceName located at baseURL and returns it.
	// Always succeeds; every call yields a fresh instance id.
	Register(serviceName, baseURL string) domain.ServiceInstance

	// Heartbeat refreshes the freshness clock of the instance.
	// Returns:
	// 1) nil on success;
	// 2) entity_not_found when the id was never registered, was deregistered or was swept.
	Heartbeat(instanceID string) error

	// Deregister removes the instance, pruning its service when it was the last one.
	// Returns:
	// 1) nil on success;
	// 2) entity_not_found when the id is unknown.
	Deregister(instanceID string) error

	// ListActive returns the active instances of serviceName in registration order.
	// Returns:
	// 1) (instances, nil) when at least one instance is active;
	// 2) (nil, entity_not_found) when the service is unknown or has no active instance.
	ListActive(serviceName string) ([]domain.ServiceInstance, error)

	// ListAllActive returns active instances of every service; services without one are omitted.
	ListAllActive() map[string][]domain.ServiceInstance

	// Stats returns active service and instance counts.
	Stats() domain.RegistryStats
}

// Evictor permanently removes instances whose heartbeat is too old.
//
// Implemented by service.RegistryStore. Called from service.LivenessSweeper on every pass.
type Evictor interface {
	// EvictExpired drops every expired instance and returns what it dropped.
	EvictExpired() []domain.ServiceInstance
}
