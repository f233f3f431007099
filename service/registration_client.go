package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultHeartbeatInterval is the pause between two heartbeats of a registered instance.
	DefaultHeartbeatInterval = 10 * time.Second
	// DefaultCallTimeout bounds each register, heartbeat and deregister call.
	DefaultCallTimeout = 5 * time.Second
)

// RegistrationOption configures a RegistrationClient.
type RegistrationOption func(*RegistrationClient)

// WithHeartbeatInterval sets the heartbeat period. Non-positive values are ignored.
func WithHeartbeatInterval(d time.Duration) RegistrationOption {
	return func(c *RegistrationClient) {
		if d > 0 {
			c.heartbeatInterval = d
		}
	}
}

// WithCallTimeout sets the per-call bound applied to every registry call. Non-positive values are ignored.
func WithCallTimeout(d time.Duration) RegistrationOption {
	return func(c *RegistrationClient) {
		if d > 0 {
			c.callTimeout = d
		}
	}
}

// RegistrationClient announces one process to the registry and keeps it alive.
// Register starts a heartbeat loop; Deregister stops the loop, waits for an in-flight heartbeat
// and only then deletes the instance, so no heartbeat is ever sent after deregistration begins.
//
// Heartbeat failures, including the registry no longer knowing the id, are logged and retried on
// the next tick. The client never re-registers on its own: an instance evicted while the process
// is alive stays invisible to discovery until the process registers again.
type RegistrationClient struct {
	api               interfaces.RegistryAPI
	serviceName       string
	baseURL           string
	heartbeatInterval time.Duration
	callTimeout       time.Duration
	logger            log.Logger

	mu         sync.Mutex
	instanceID string
	stop       chan struct{}
	stopped    chan struct{}
}

// NewRegistrationClient creates a client for one process. Panics on nil api or logger and on empty serviceName or baseURL.
//
// Parameters: api: registry transport (adapters/registryhttp in prod); serviceName, baseURL: what gets registered;
// logger: receives registration events and swallowed failures.
//
// Called from cmd/sidecar and from services embedding the client.
func NewRegistrationClient(
	api interfaces.RegistryAPI,
	serviceName, baseURL string,
	logger log.Logger,
	opts ...RegistrationOption,
) *RegistrationClient {
	c := &RegistrationClient{
		api:               helpers.NilPanic(api, "service.registration_client.go: api is required"),
		serviceName:       helpers.StrPanic(serviceName, "service.registration_client.go: serviceName is required"),
		baseURL:           helpers.StrPanic(baseURL, "service.registration_client.go: baseURL is required"),
		heartbeatInterval: DefaultHeartbeatInterval,
		callTimeout:       DefaultCallTimeout,
		logger:            log.WithPrefix(helpers.NilPanic(logger, "service.registration_client.go: logger is required"), "component", "RegistrationClient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register announces the process and starts the heartbeat loop. There is no retry.
//
// Returns: (instanceID, nil) on success; registration_failed wrapping the transport error when the registry
// call fails; bad_parameter when the client is already registered (the registry is not contacted).
func (c *RegistrationClient) Register(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.instanceID != "" {
		return "", NewBadParameterError(fmt.Sprintf("already registered as %s", c.instanceID), nil)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()
	inst, err := c.api.Register(callCtx, c.serviceName, c.baseURL)
	if err != nil {
		return "", NewRegistrationFailedError(fmt.Sprintf("register %s at %s", c.serviceName, c.baseURL), err)
	}
	if inst.InstanceID == "" {
		return "", NewRegistrationFailedError(fmt.Sprintf("register %s at %s", c.serviceName, c.baseURL),
			NewUnavailableError("registry returned an empty instance id", nil))
	}

	c.instanceID = inst.InstanceID
	c.stop = make(chan struct{})
	c.stopped = make(chan struct{})
	go c.heartbeatLoop(inst.InstanceID, c.stop, c.stopped)

	level.Info(c.logger).Log(
		"msg", "registered",
		"service", c.serviceName,
		"base_url", c.baseURL,
		"instance_id", inst.InstanceID,
		"heartbeat_interval", c.heartbeatInterval,
	)
	return inst.InstanceID, nil
}

// heartbeatLoop sends a heartbeat for instanceID every interval until stop is closed, then closes stopped.
func (c *RegistrationClient) heartbeatLoop(instanceID string, stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(c.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		// both channels may be ready at once; stop wins
		select {
		case <-stop:
			return
		default:
		}

		if out := c.sendHeartbeat(instanceID); !out.OK() {
			level.Warn(c.logger).Log(
				"msg", "heartbeat failed, retrying next interval",
				"service", c.serviceName,
				"instance_id", instanceID,
				"err", out.Err,
			)
		}
	}
}

func (c *RegistrationClient) sendHeartbeat(instanceID string) Outcome {
	ctx, cancel := context.WithTimeout(context.Background(), c.callTimeout)
	defer cancel()
	return Outcome{Err: c.api.Heartbeat(ctx, instanceID)}
}

// Deregister stops the heartbeat loop, waits for it to exit and then deletes the instance.
// A no-op success when the client is not registered. The client may Register again afterwards.
//
// Returns: Outcome of the delete call; a failure is logged and never raised so shutdown always completes.
func (c *RegistrationClient) Deregister(ctx context.Context) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.instanceID == "" {
		return Outcome{}
	}

	close(c.stop)
	<-c.stopped

	instanceID := c.instanceID
	c.instanceID = ""
	c.stop = nil
	c.stopped = nil

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()
	if err := c.api.Deregister(callCtx, instanceID); err != nil {
		level.Warn(c.logger).Log(
			"msg", "deregister failed, ignoring",
			"service", c.serviceName,
			"instance_id", instanceID,
			"err", err,
		)
		return Outcome{Err: err}
	}

	level.Info(c.logger).Log("msg", "deregistered", "service", c.serviceName, "instance_id", instanceID)
	return Outcome{}
}

// InstanceID returns the current instance id, or "" when not registered.
func (c *RegistrationClient) InstanceID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.instanceID
}
