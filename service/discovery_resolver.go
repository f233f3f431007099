package service

import (
	"context"
	"time"

	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ResolverOption configures a DiscoveryResolver.
type ResolverOption func(*DiscoveryResolver)

// WithResolutionCache puts cache in front of the registry. Resolved base URLs are kept for ttl;
// "none" answers are never cached. A nil cache or non-positive ttl leaves caching off.
func WithResolutionCache(cache interfaces.Cache[string], ttl time.Duration) ResolverOption {
	return func(r *DiscoveryResolver) {
		if cache == nil || ttl <= 0 {
			return
		}
		r.cache = cache
		r.cacheTTL = ttl
	}
}

// DiscoveryResolver implements interfaces.Resolver on top of a RegistryAPI. It always picks the
// first active instance in registration order, so only that instance receives traffic from it.
// Every failure, whether the service is unknown or the registry is unreachable, resolves to none.
type DiscoveryResolver struct {
	api      interfaces.RegistryAPI
	cache    interfaces.Cache[string]
	cacheTTL time.Duration
	logger   log.Logger
}

var _ interfaces.Resolver = (*DiscoveryResolver)(nil)

// NewDiscoveryResolver creates a resolver. Panics on nil api or logger.
//
// Called from cmd/sidecar and from callers embedding discovery.
func NewDiscoveryResolver(api interfaces.RegistryAPI, logger log.Logger, opts ...ResolverOption) *DiscoveryResolver {
	r := &DiscoveryResolver{
		api:    helpers.NilPanic(api, "service.discovery_resolver.go: api is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.discovery_resolver.go: logger is required"), "component", "DiscoveryResolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the base URL of the first active instance of serviceName.
//
// Returns: (baseURL, true) when one is active; ("", false) when the service is unknown, has no active
// instance, or the registry cannot be queried.
func (r *DiscoveryResolver) Resolve(ctx context.Context, serviceName string) (string, bool) {
	if r.cache != nil {
		if baseURL, err := r.cache.ReadValue(ctx, serviceName); err == nil && baseURL != "" {
			return baseURL, true
		} else if err != nil && !IsEntityNotFoundError(err) {
			level.Debug(r.logger).Log("msg", "resolution cache read failed", "service", serviceName, "err", err)
		}
	}

	instances, err := r.api.ServiceInstances(ctx, serviceName)
	if err != nil {
		if !IsEntityNotFoundError(err) {
			level.Warn(r.logger).Log("msg", "registry query failed, resolving to none", "service", serviceName, "err", err)
		}
		return "", false
	}
	if len(instances) == 0 {
		return "", false
	}

	baseURL := instances[0].BaseURL
	if r.cache != nil {
		if err := r.cache.WriteValue(ctx, serviceName, baseURL, int(r.cacheTTL/time.Millisecond)); err != nil {
			level.Debug(r.logger).Log("msg", "resolution cache write failed", "service", serviceName, "err", err)
		}
	}
	return baseURL, true
}
