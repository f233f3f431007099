package handlers

import (
	"testing"

	"myregistry/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{name: "ok_http", req: RegisterRequest{ServiceName: "users", BaseURL: "http://users:8000"}},
		{name: "ok_https_with_path", req: RegisterRequest{ServiceName: "users", BaseURL: "https://users.internal/api/"}},
		{name: "missing_service_name", req: RegisterRequest{BaseURL: "http://a"}, wantErr: "service_name is required"},
		{name: "blank_service_name", req: RegisterRequest{ServiceName: "  ", BaseURL: "http://a"}, wantErr: "service_name is required"},
		{name: "missing_base_url", req: RegisterRequest{ServiceName: "users"}, wantErr: "base_url is required"},
		{name: "unparsable_base_url", req: RegisterRequest{ServiceName: "users", BaseURL: "http://[::1"}, wantErr: "base_url is not a valid URL"},
		{name: "relative_base_url", req: RegisterRequest{ServiceName: "users", BaseURL: "/users"}, wantErr: "base_url must be an absolute http or https URL"},
		{name: "other_scheme", req: RegisterRequest{ServiceName: "users", BaseURL: "ftp://users"}, wantErr: "base_url must be an absolute http or https URL"},
		{name: "no_host", req: RegisterRequest{ServiceName: "users", BaseURL: "http://"}, wantErr: "base_url must be an absolute http or https URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, baseURL, err := fromRegisterRequest(tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, service.IsBadParameterError(err))
				assert.Equal(t, tt.wantErr, service.ToMyError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.ServiceName, name)
			assert.Equal(t, tt.req.BaseURL, baseURL)
		})
	}
}
