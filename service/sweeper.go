package service

import (
	"context"
	"time"

	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultCleanupInterval is the pause between two eviction passes.
const DefaultCleanupInterval = 10 * time.Second

// LivenessSweeper periodically hard-evicts expired instances from an Evictor.
// It is the only component that removes instances without an explicit deregister.
type LivenessSweeper struct {
	evictor  interfaces.Evictor
	interval time.Duration
	logger   log.Logger
}

// NewLivenessSweeper creates a sweeper. Panics on nil evictor or logger; a non-positive interval
// falls back to DefaultCleanupInterval.
//
// Called from cmd/registry; Run is started in the same errgroup as the HTTP server.
func NewLivenessSweeper(evictor interfaces.Evictor, interval time.Duration, logger log.Logger) *LivenessSweeper {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &LivenessSweeper{
		evictor:  helpers.NilPanic(evictor, "service.sweeper.go: evictor is required"),
		interval: interval,
		logger:   log.WithPrefix(helpers.NilPanic(logger, "service.sweeper.go: logger is required"), "component", "LivenessSweeper"),
	}
}

// Run sweeps every interval until ctx is cancelled. The first pass happens one interval after start.
//
// Returns: nil once ctx is done; shutdown is not an error.
func (s *LivenessSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	level.Info(s.logger).Log("msg", "sweeper started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			level.Info(s.logger).Log("msg", "sweeper stopped")
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep runs one eviction pass and logs every evicted instance.
//
// Returns: number of evicted instances.
func (s *LivenessSweeper) Sweep() int {
	evicted := s.evictor.EvictExpired()
	for _, inst := range evicted {
		level.Info(s.logger).Log(
			"msg", "evicted expired instance",
			"service", inst.ServiceName,
			"instance_id", inst.InstanceID,
			"last_heartbeat", inst.LastHeartbeat.UTC().Format(time.RFC3339),
		)
	}
	return len(evicted)
}
