package handlers

import (
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all registry server handlers.
type ServerInterface interface {
	// (GET /)
	Root(ctx echo.Context) error
	// (GET /openapi.yaml)
	OpenAPISpec(ctx echo.Context) error
	// (POST /register)
	Register(ctx echo.Context) error
	// (POST /heartbeat/{instance_id})
	Heartbeat(ctx echo.Context, instanceId string) error
	// (DELETE /deregister/{instance_id})
	Deregister(ctx echo.Context, instanceId string) error
	// (GET /services)
	ListServices(ctx echo.Context) error
	// (GET /services/{service_name})
	GetServiceInstances(ctx echo.Context, serviceName string) error
	// (GET /status)
	GetStatus(ctx echo.Context) error
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ResolveServerInterface represents the sidecar's local discovery handlers.
type ResolveServerInterface interface {
	// (GET /resolve/{service_name})
	Resolve(ctx echo.Context, serviceName string) error
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Heartbeat(ctx echo.Context) error {
	return w.Handler.Heartbeat(ctx, ctx.Param("instance_id"))
}

func (w *ServerInterfaceWrapper) Deregister(ctx echo.Context) error {
	return w.Handler.Deregister(ctx, ctx.Param("instance_id"))
}

func (w *ServerInterfaceWrapper) GetServiceInstances(ctx echo.Context) error {
	return w.Handler.GetServiceInstances(ctx, ctx.Param("service_name"))
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each registry route to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/", si.Root)
	router.GET("/openapi.yaml", si.OpenAPISpec)
	router.POST("/register", si.Register)
	router.POST("/heartbeat/:instance_id", wrapper.Heartbeat)
	router.DELETE("/deregister/:instance_id", wrapper.Deregister)
	router.GET("/services", si.ListServices)
	router.GET("/services/:service_name", wrapper.GetServiceInstances)
	router.GET("/status", si.GetStatus)
	router.GET("/health", si.GetHealth)
}

// RegisterResolveHandlers adds the sidecar routes to the router.
func RegisterResolveHandlers(router EchoRouter, si ResolveServerInterface) {
	router.GET("/resolve/:service_name", func(ctx echo.Context) error {
		return si.Resolve(ctx, ctx.Param("service_name"))
	})
	router.GET("/health", si.GetHealth)
}
