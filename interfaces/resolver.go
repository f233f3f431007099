package interfaces

import "context"

// Resolver turns a logical service name into one base URL.
//
//go:generate moq -stub -out mock/resolver.go -pkg mock . Resolver
type Resolver interface {
	// Resolve returns (baseURL, true) for a reachable service and ("", false) otherwise.
	// "Not registered" and "registry unreachable" are deliberately indistinguishable.
	Resolve(ctx context.Context, serviceName string) (string, bool)
}
