package handlers

import (
	"net/url"
	"strings"

	"myregistry/service"
)

// fromRegisterRequest validates RegisterRequest and returns the name and URL to store.
// base_url must be an absolute http or https URL with a host; it is returned verbatim.
// Returns service.BadParameterError on validation failure.
func fromRegisterRequest(req RegisterRequest) (string, string, error) {
	if strings.TrimSpace(req.ServiceName) == "" {
		return "", "", service.NewBadParameterError("service_name is required", nil)
	}
	if req.BaseURL == "" {
		return "", "", service.NewBadParameterError("base_url is required", nil)
	}
	u, err := url.Parse(req.BaseURL)
	if err != nil {
		return "", "", service.NewBadParameterError("base_url is not a valid URL", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", "", service.NewBadParameterError("base_url must be an absolute http or https URL", nil)
	}

	return req.ServiceName, req.BaseURL, nil
}
