package handlers

import (
	"fmt"
	"net/http"

	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/labstack/echo/v4"
)

// ResolveServer implements ResolveServerInterface for the sidecar.
type ResolveServer struct {
	resolver interfaces.Resolver
}

// NewResolveServer creates a new ResolveServer.
func NewResolveServer(resolver interfaces.Resolver) *ResolveServer {
	return &ResolveServer{resolver: helpers.NilPanic(resolver, "handlers.resolve.go: resolver is required")}
}

// Resolve (GET /resolve/{service_name}) returns one base URL, or 404 when the service is currently unavailable.
func (h *ResolveServer) Resolve(ectx echo.Context, serviceName string) error {
	baseURL, ok := h.resolver.Resolve(ectx.Request().Context(), serviceName)
	if !ok {
		return service.NewEntityNotFoundError(fmt.Sprintf("service '%s' currently unavailable", serviceName), nil)
	}

	return ectx.JSON(http.StatusOK, ResolveResponse{ServiceName: serviceName, BaseUrl: baseURL})
}

// GetHealth (GET /health).
func (h *ResolveServer) GetHealth(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: "sidecar"})
}
