package interfaces

import (
	"context"

	"myregistry/domain"
)

// RegistryAPI is the client side view of a remote registry.
//
// Implemented by adapters/registryhttp.RegistryHTTP. Called from service.RegistrationClient
// (Register, Heartbeat, Deregister) and service.DiscoveryResolver (ServiceInstances).
//
//go:generate moq -stub -out mock/registry_api.go -pkg mock . RegistryAPI
type RegistryAPI interface {
	// Register announces a new instance and returns it as created by the registry.
	// Returns unavailable on transport failure or unexpected response.
	Register(ctx context.Context, serviceName, baseURL string) (domain.ServiceInstance, error)

	// Heartbeat refreshes an instance.
	// Returns entity_not_found when the registry no longer knows the id, unavailable otherwise.
	Heartbeat(ctx context.Context, instanceID string) error

	// Deregister removes an instance.
	// Returns entity_not_found when the registry no longer knows the id, unavailable otherwise.
	Deregister(ctx context.Context, instanceID string) error

	// ServiceInstances lists active instances of serviceName in registration order.
	// Returns entity_not_found when there is none, unavailable on transport failure.
	ServiceInstances(ctx context.Context, serviceName string) ([]domain.ServiceInstance, error)
}
