package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myregistry/api"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAPIValidator_InvalidDocument(t *testing.T) {
	_, err := NewOpenAPIValidator([]byte("openapi: [\n"))
	require.Error(t, err)

	_, err = NewOpenAPIValidator([]byte("openapi: 3.0.3\ninfo: {}\npaths: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate openapi document")
}

func TestOpenAPIValidator_Middleware(t *testing.T) {
	validator, err := NewOpenAPIValidator(api.Spec)
	require.NoError(t, err)

	called := false
	h := validator.Middleware()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	run := func(method, target, body string) (*httptest.ResponseRecorder, error) {
		called = false
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		return rec, h(echo.New().NewContext(req, rec))
	}

	t.Run("valid_request_reaches_handler", func(t *testing.T) {
		_, err := run(http.MethodPost, "/register", `{"service_name":"users","base_url":"http://a"}`)
		require.NoError(t, err)
		assert.True(t, called)
	})
	t.Run("invalid_request_is_request_error", func(t *testing.T) {
		_, err := run(http.MethodPost, "/register", `{"service_name":"users"}`)
		require.Error(t, err)
		assert.False(t, called)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		var reqErr *openapi3filter.RequestError
		assert.ErrorAs(t, he.Internal, &reqErr)
	})
	t.Run("undocumented_path_passes", func(t *testing.T) {
		_, err := run(http.MethodGet, "/openapi.yaml", "")
		require.NoError(t, err)
		assert.True(t, called)
	})
}
