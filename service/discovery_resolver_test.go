package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingAPI(instances []domain.ServiceInstance, err error) *mock.RegistryAPIMock {
	return &mock.RegistryAPIMock{
		ServiceInstancesFunc: func(ctx context.Context, serviceName string) ([]domain.ServiceInstance, error) {
			return instances, err
		},
	}
}

func TestNewDiscoveryResolver_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.discovery_resolver.go: api is required", func() {
		NewDiscoveryResolver(nil, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.discovery_resolver.go: logger is required", func() {
		NewDiscoveryResolver(&mock.RegistryAPIMock{}, nil)
	})
}

func TestDiscoveryResolver_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		instances []domain.ServiceInstance
		err       error
		wantURL   string
		wantFound bool
	}{
		{
			name: "first_instance_wins",
			instances: []domain.ServiceInstance{
				{InstanceID: "id-1", BaseURL: "http://a"},
				{InstanceID: "id-2", BaseURL: "http://b"},
			},
			wantURL:   "http://a",
			wantFound: true,
		},
		{
			name: "not_found_is_none",
			err:  NewEntityNotFoundError("Service 'users' not found", nil),
		},
		{
			name: "unavailable_is_none",
			err:  NewUnavailableError("registry unreachable", errors.New("connection refused")),
		},
		{
			name: "plain_error_is_none",
			err:  errors.New("unexpected response"),
		},
		{
			name:      "empty_list_is_none",
			instances: []domain.ServiceInstance{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := listingAPI(tt.instances, tt.err)
			r := NewDiscoveryResolver(api, log.NewNopLogger())

			got, ok := r.Resolve(context.Background(), "users")
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantURL, got)
			require.Len(t, api.ServiceInstancesCalls(), 1)
			assert.Equal(t, "users", api.ServiceInstancesCalls()[0].ServiceName)
		})
	}
}

func TestDiscoveryResolver_AgainstStore(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(clock)
	api := &mock.RegistryAPIMock{
		ServiceInstancesFunc: func(ctx context.Context, serviceName string) ([]domain.ServiceInstance, error) {
			return store.ListActive(serviceName)
		},
	}
	r := NewDiscoveryResolver(api, log.NewNopLogger())

	_, ok := r.Resolve(context.Background(), "users")
	assert.False(t, ok)

	first := store.Register("users", "http://a")
	clock.Advance(10 * time.Second)
	store.Register("users", "http://b")

	got, ok := r.Resolve(context.Background(), "users")
	require.True(t, ok)
	assert.Equal(t, "http://a", got)

	// the first instance goes stale; the next active one takes over
	clock.Advance(25 * time.Second)
	got, ok = r.Resolve(context.Background(), "users")
	require.True(t, ok)
	assert.Equal(t, "http://b", got)

	require.NoError(t, store.Heartbeat(first.InstanceID))
	got, _ = r.Resolve(context.Background(), "users")
	assert.Equal(t, "http://a", got)
}

func TestDiscoveryResolver_Cache(t *testing.T) {
	t.Run("hit_skips_registry", func(t *testing.T) {
		api := listingAPI(nil, errors.New("must not be called"))
		cache := &mock.CacheMock[string]{
			ReadValueFunc: func(ctx context.Context, key string) (string, error) { return "http://cached", nil },
		}
		r := NewDiscoveryResolver(api, log.NewNopLogger(), WithResolutionCache(cache, time.Second))

		got, ok := r.Resolve(context.Background(), "users")
		assert.True(t, ok)
		assert.Equal(t, "http://cached", got)
		assert.Empty(t, api.ServiceInstancesCalls())
		assert.Empty(t, cache.WriteValueCalls())
	})

	t.Run("miss_writes_back_with_ttl", func(t *testing.T) {
		api := listingAPI([]domain.ServiceInstance{{BaseURL: "http://a"}}, nil)
		cache := &mock.CacheMock[string]{
			ReadValueFunc: func(ctx context.Context, key string) (string, error) {
				return "", NewEntityNotFoundError("not cached", nil)
			},
		}
		r := NewDiscoveryResolver(api, log.NewNopLogger(), WithResolutionCache(cache, 2*time.Second))

		got, ok := r.Resolve(context.Background(), "users")
		assert.True(t, ok)
		assert.Equal(t, "http://a", got)
		writes := cache.WriteValueCalls()
		require.Len(t, writes, 1)
		assert.Equal(t, "users", writes[0].Key)
		assert.Equal(t, "http://a", writes[0].Item)
		assert.Equal(t, 2000, writes[0].TtlMs)
	})

	t.Run("cache_errors_fall_through", func(t *testing.T) {
		api := listingAPI([]domain.ServiceInstance{{BaseURL: "http://a"}}, nil)
		cache := &mock.CacheMock[string]{
			ReadValueFunc: func(ctx context.Context, key string) (string, error) {
				return "", NewInternalServerError("redis down", nil)
			},
			WriteValueFunc: func(ctx context.Context, key string, item string, ttlMs int) error {
				return NewInternalServerError("redis down", nil)
			},
		}
		r := NewDiscoveryResolver(api, log.NewNopLogger(), WithResolutionCache(cache, time.Second))

		got, ok := r.Resolve(context.Background(), "users")
		assert.True(t, ok)
		assert.Equal(t, "http://a", got)
	})

	t.Run("negative_not_cached", func(t *testing.T) {
		api := listingAPI(nil, NewEntityNotFoundError("Service 'users' not found", nil))
		cache := &mock.CacheMock[string]{
			ReadValueFunc: func(ctx context.Context, key string) (string, error) {
				return "", NewEntityNotFoundError("not cached", nil)
			},
		}
		r := NewDiscoveryResolver(api, log.NewNopLogger(), WithResolutionCache(cache, time.Second))

		_, ok := r.Resolve(context.Background(), "users")
		assert.False(t, ok)
		assert.Empty(t, cache.WriteValueCalls())
	})

	t.Run("disabled_with_zero_ttl", func(t *testing.T) {
		api := listingAPI([]domain.ServiceInstance{{BaseURL: "http://a"}}, nil)
		cache := &mock.CacheMock[string]{}
		r := NewDiscoveryResolver(api, log.NewNopLogger(), WithResolutionCache(cache, 0))

		_, ok := r.Resolve(context.Background(), "users")
		assert.True(t, ok)
		assert.Empty(t, cache.ReadValueCalls())
		assert.Empty(t, cache.WriteValueCalls())
	})
}
