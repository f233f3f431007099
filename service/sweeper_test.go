package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"myregistry/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evictorFunc func() []domain.ServiceInstance

func (f evictorFunc) EvictExpired() []domain.ServiceInstance { return f() }

func TestNewLivenessSweeper_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.sweeper.go: evictor is required", func() {
		NewLivenessSweeper(nil, time.Second, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.sweeper.go: logger is required", func() {
		NewLivenessSweeper(NewRegistryStore(time.Second), time.Second, nil)
	})
}

func TestNewLivenessSweeper_DefaultInterval(t *testing.T) {
	s := NewLivenessSweeper(NewRegistryStore(time.Second), 0, log.NewNopLogger())
	assert.Equal(t, DefaultCleanupInterval, s.interval)
}

func TestLivenessSweeper_Sweep_EvictsFromStore(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(clock)
	store.Register("users", "http://a")
	live := store.Register("posts", "http://b")
	clock.Advance(20 * time.Second)
	require.NoError(t, store.Heartbeat(live.InstanceID))

	sweeper := NewLivenessSweeper(store, time.Second, log.NewNopLogger())
	assert.Equal(t, 0, sweeper.Sweep())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 1, sweeper.Sweep())

	stats := store.Stats()
	assert.Equal(t, map[string]int{"posts": 1}, stats.Services)
	assert.True(t, IsEntityNotFoundError(store.Heartbeat("unknown")))
}

func TestLivenessSweeper_Run_SweepsPeriodicallyAndStops(t *testing.T) {
	var passes atomic.Int32
	sweeper := NewLivenessSweeper(evictorFunc(func() []domain.ServiceInstance {
		passes.Add(1)
		return nil
	}), 5*time.Millisecond, log.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	require.Eventually(t, func() bool { return passes.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}

	stopped := passes.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, passes.Load())
}

func TestLivenessSweeper_Run_HardEvictionAfterInterval(t *testing.T) {
	clock := newFakeClock()
	store := newTestStore(clock)
	inst := store.Register("users", "http://a")
	clock.Advance(31 * time.Second)

	var evicted atomic.Int32
	evictor := evictorFunc(func() []domain.ServiceInstance {
		out := store.EvictExpired()
		evicted.Add(int32(len(out)))
		return out
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewLivenessSweeper(evictor, 2*time.Millisecond, log.NewNopLogger()).Run(ctx) }()

	require.Eventually(t, func() bool { return evicted.Load() == 1 }, time.Second, time.Millisecond)
	assert.True(t, IsEntityNotFoundError(store.Heartbeat(inst.InstanceID)))
	assert.Empty(t, store.ListAllActive())
}
