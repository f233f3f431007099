package handlers

import (
	"context"
	"net/http"
	"testing"

	"myregistry/interfaces/mock"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolveServer_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "handlers.resolve.go: resolver is required", func() {
		NewResolveServer(nil)
	})
}

func TestResolveServer_Resolve(t *testing.T) {
	resolver := &mock.ResolverMock{
		ResolveFunc: func(ctx context.Context, serviceName string) (string, bool) {
			if serviceName == "users" {
				return "http://users:8000", true
			}
			return "", false
		},
	}
	e := echo.New()
	RegisterResolveHandlers(e, NewResolveServer(resolver))
	service.RegisterErrorHandler(e, log.NewNopLogger())

	rec := serve(e, http.MethodGet, "/resolve/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"service_name":"users","base_url":"http://users:8000"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/resolve/posts", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErr(t, rec)
	assert.Equal(t, service.ErrEntityNotFound, body.Error.Code)
	assert.Equal(t, "service 'posts' currently unavailable", body.Error.Message)

	rec = serve(e, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok","service":"sidecar"}`, rec.Body.String())

	require.Len(t, resolver.ResolveCalls(), 2)
	assert.Equal(t, "posts", resolver.ResolveCalls()[1].ServiceName)
}
