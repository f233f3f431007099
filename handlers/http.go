// Package handlers contains http handlers for myregistry.
package handlers

import (
	"net/http"

	"myregistry/api"
	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface on top of the registry store.
type HTTPServer struct {
	registry interfaces.Registry
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry interfaces.Registry, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		registry: helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		logger:   logger,
	}
}

// Root (GET /) describes the registry and lists route templates.
func (h *HTTPServer) Root(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, RootResponse{
		Service: "Service Registry",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"register":    "/register",
			"heartbeat":   "/heartbeat/{instance_id}",
			"deregister":  "/deregister/{instance_id}",
			"get_service": "/services/{service_name}",
			"list_all":    "/services",
			"status":      "/status",
			"health":      "/health",
		},
		Docs: "/openapi.yaml",
	})
}

// OpenAPISpec (GET /openapi.yaml) serves the embedded API description.
func (h *HTTPServer) OpenAPISpec(ectx echo.Context) error {
	return ectx.Blob(http.StatusOK, "application/yaml", api.Spec)
}

// Register (POST /register) adds an instance. Returns 201 with the created instance, 400 on parse/validation error.
func (h *HTTPServer) Register(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	serviceName, baseURL, err := fromRegisterRequest(req)
	if err != nil {
		return err
	}

	inst := h.registry.Register(serviceName, baseURL)
	level.Info(h.logger).Log("msg", "instance registered", "service", serviceName, "instance_id", inst.InstanceID, "base_url", baseURL)

	return ectx.JSON(http.StatusCreated, toInstanceInfo(inst))
}

// Heartbeat (POST /heartbeat/{instance_id}) refreshes an instance. Returns 404 for unknown ids.
func (h *HTTPServer) Heartbeat(ectx echo.Context, instanceId string) error {
	if err := h.registry.Heartbeat(instanceId); err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, InstanceStatusResponse{Status: "ok", InstanceId: instanceId})
}

// Deregister (DELETE /deregister/{instance_id}) removes an instance. Returns 404 for unknown ids.
func (h *HTTPServer) Deregister(ectx echo.Context, instanceId string) error {
	if err := h.registry.Deregister(instanceId); err != nil {
		return err
	}
	level.Info(h.logger).Log("msg", "instance deregistered", "instance_id", instanceId)

	return ectx.JSON(http.StatusOK, InstanceStatusResponse{Status: "ok", InstanceId: instanceId})
}

// ListServices (GET /services) returns every service with at least one active instance.
func (h *HTTPServer) ListServices(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toAllServicesResponse(h.registry.ListAllActive()))
}

// GetServiceInstances (GET /services/{service_name}) returns active instances in registration order.
// Returns 404 when the service is unknown or none of its instances is active.
func (h *HTTPServer) GetServiceInstances(ectx echo.Context, serviceName string) error {
	instances, err := h.registry.ListActive(serviceName)
	if err != nil {
		return err
	}

	return ectx.JSON(http.StatusOK, toServiceListResponse(serviceName, instances))
}

// GetStatus (GET /status) returns active counts.
func (h *HTTPServer) GetStatus(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toRegistryStatusResponse(h.registry.Stats()))
}

// GetHealth (GET /health).
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: "registry"})
}
