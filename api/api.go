// Package api holds the OpenAPI description of the registry HTTP surface.
package api

import _ "embed"

// Spec is registry.openapi.yaml, used for request validation and served at GET /openapi.yaml.
//
//go:embed registry.openapi.yaml
var Spec []byte
