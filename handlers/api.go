package handlers

import "time"

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	ServiceName string `json:"service_name"`
	BaseURL     string `json:"base_url"`
}

// InstanceInfo is one service instance as returned by the registry.
type InstanceInfo struct {
	InstanceId    string    `json:"instance_id"`
	ServiceName   string    `json:"service_name"`
	BaseUrl       string    `json:"base_url"`
	RegisteredAt  time.Time `json:"registered_at"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

// ServiceListResponse lists the active instances of one service.
type ServiceListResponse struct {
	ServiceName string         `json:"service_name"`
	Instances   []InstanceInfo `json:"instances"`
	Count       int            `json:"count"`
}

// AllServicesResponse maps service name to its active instances.
type AllServicesResponse map[string]ServiceListResponse

// InstanceStatusResponse acknowledges a heartbeat or a deregistration.
type InstanceStatusResponse struct {
	Status     string `json:"status"`
	InstanceId string `json:"instance_id"`
}

// RegistryStatusResponse is the body of GET /status.
type RegistryStatusResponse struct {
	Status         string         `json:"status"`
	TotalServices  int            `json:"total_services"`
	TotalInstances int            `json:"total_instances"`
	Services       map[string]int `json:"services"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// RootResponse describes the registry and its routes.
type RootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Docs      string            `json:"docs"`
}

// ResolveResponse is the body of GET /resolve/{service_name} on the sidecar.
type ResolveResponse struct {
	ServiceName string `json:"service_name"`
	BaseUrl     string `json:"base_url"`
}
