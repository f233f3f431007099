// Package registryhttp talks to a remote registry over HTTP/JSON.
package registryhttp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"

	"resty.dev/v3"
)

const contentTypeJSON = "application/json"

// DefaultTimeout bounds a single registry call when the caller's context has no earlier deadline.
const DefaultTimeout = 5 * time.Second

// RegistryHTTP implements interfaces.RegistryAPI with a resty client.
// Transport failures, timeouts and unexpected statuses become unavailable; 404 becomes entity_not_found.
type RegistryHTTP struct {
	baseURL string
	client  *resty.Client
	timeout time.Duration
}

var _ interfaces.RegistryAPI = (*RegistryHTTP)(nil)

// NewRegistryHTTP creates the adapter. Panics on empty baseURL or nil client.
//
// Parameters: baseURL: registry root, e.g. http://registry:5000 (a trailing slash is dropped);
// client: shared resty client; timeout: per-call bound, non-positive means DefaultTimeout.
//
// Called from cmd/sidecar; the same value backs both RegistrationClient and DiscoveryResolver.
func NewRegistryHTTP(baseURL string, client *resty.Client, timeout time.Duration) *RegistryHTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RegistryHTTP{
		baseURL: strings.TrimSuffix(helpers.StrPanic(baseURL, "adapters.registryhttp.client.go: baseURL is required"), "/"),
		client:  helpers.NilPanic(client, "adapters.registryhttp.client.go: resty client is required"),
		timeout: timeout,
	}
}

// Close releases the resty client.
func (r *RegistryHTTP) Close() {
	r.client.Close()
}

type registerBody struct {
	ServiceName string `json:"service_name"`
	BaseURL     string `json:"base_url"`
}

type instanceWire struct {
	InstanceID    string    `json:"instance_id"`
	ServiceName   string    `json:"service_name"`
	BaseURL       string    `json:"base_url"`
	RegisteredAt  time.Time `json:"registered_at"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

type serviceListWire struct {
	ServiceName string         `json:"service_name"`
	Instances   []instanceWire `json:"instances"`
	Count       int            `json:"count"`
}

func (w instanceWire) toDomain() domain.ServiceInstance {
	return domain.ServiceInstance{
		InstanceID:    w.InstanceID,
		ServiceName:   w.ServiceName,
		BaseURL:       w.BaseURL,
		RegisteredAt:  w.RegisteredAt,
		LastHeartbeat: w.LastHeartbeat,
	}
}

// Register performs POST /register and expects 201 with the created instance.
func (r *RegistryHTTP) Register(ctx context.Context, serviceName, baseURL string) (domain.ServiceInstance, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var out instanceWire
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(registerBody{ServiceName: serviceName, BaseURL: baseURL}).
		SetExpectResponseContentType(contentTypeJSON).
		SetResult(&out).
		Post(r.baseURL + "/register")
	if err != nil {
		return domain.ServiceInstance{}, service.NewUnavailableError("registry register call failed", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return domain.ServiceInstance{}, unexpectedStatus("register", resp.StatusCode())
	}
	if out.InstanceID == "" {
		return domain.ServiceInstance{}, service.NewUnavailableError("registry register response missing instance_id", nil)
	}
	return out.toDomain(), nil
}

// Heartbeat performs POST /heartbeat/{instance_id} and expects 200.
func (r *RegistryHTTP) Heartbeat(ctx context.Context, instanceID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.R().
		SetContext(ctx).
		Post(r.baseURL + "/heartbeat/" + url.PathEscape(instanceID))
	if err != nil {
		return service.NewUnavailableError("registry heartbeat call failed", err)
	}
	return instanceStatus("heartbeat", instanceID, resp.StatusCode())
}

// Deregister performs DELETE /deregister/{instance_id} and expects 200.
func (r *RegistryHTTP) Deregister(ctx context.Context, instanceID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.R().
		SetContext(ctx).
		Delete(r.baseURL + "/deregister/" + url.PathEscape(instanceID))
	if err != nil {
		return service.NewUnavailableError("registry deregister call failed", err)
	}
	return instanceStatus("deregister", instanceID, resp.StatusCode())
}

// ServiceInstances performs GET /services/{service_name}.
//
// Returns: instances in registration order on 200; entity_not_found on 404; unavailable on anything else,
// including a 200 body without an instances field.
func (r *RegistryHTTP) ServiceInstances(ctx context.Context, serviceName string) ([]domain.ServiceInstance, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var out serviceListWire
	resp, err := r.client.R().
		SetContext(ctx).
		SetExpectResponseContentType(contentTypeJSON).
		SetResult(&out).
		Get(r.baseURL + "/services/" + url.PathEscape(serviceName))
	if err != nil {
		return nil, service.NewUnavailableError("registry services call failed", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, service.NewEntityNotFoundError(fmt.Sprintf("Service '%s' not found", serviceName), nil)
	default:
		return nil, unexpectedStatus("services", resp.StatusCode())
	}
	if out.Instances == nil {
		return nil, service.NewUnavailableError("registry services response missing instances field", nil)
	}

	instances := make([]domain.ServiceInstance, 0, len(out.Instances))
	for _, w := range out.Instances {
		instances = append(instances, w.toDomain())
	}
	return instances, nil
}

func instanceStatus(call, instanceID string, status int) error {
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return service.NewEntityNotFoundError(fmt.Sprintf("Instance %s not found", instanceID), nil)
	default:
		return unexpectedStatus(call, status)
	}
}

func unexpectedStatus(call string, status int) error {
	return service.NewUnavailableError(fmt.Sprintf("registry %s returned %d", call, status), nil)
}
