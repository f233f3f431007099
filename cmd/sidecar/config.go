package main

import (
	"fmt"
	"net/url"
	"time"

	"myregistry/helpers"
)

const (
	defaultRegistryURL       = "http://localhost:5000"
	defaultHeartbeatInterval = 10 * time.Second
	defaultRegistryTimeout   = 5 * time.Second
	defaultResolveCacheTTL   = 2 * time.Second
)

type SidecarConfig struct {
	ServiceName       string
	ServiceBaseURL    string
	RegistryURL       string
	HeartbeatInterval time.Duration
	RegistryTimeout   time.Duration
	// HTTPPort enables the local resolve API when non-zero.
	HTTPPort int
	// RedisAddr enables the shared resolution cache when set.
	RedisAddr       string
	ResolveCacheTTL time.Duration
}

// sidecarFile is the CONFIG_PATH layout. heartbeat_interval is in seconds, the rest of the
// durations in milliseconds, matching the environment variables.
type sidecarFile struct {
	ServiceName       string  `yaml:"service_name"`
	ServiceBaseURL    string  `yaml:"service_base_url"`
	RegistryURL       string  `yaml:"registry_url"`
	HeartbeatInterval float64 `yaml:"heartbeat_interval"`
	RegistryTimeoutMs int     `yaml:"registry_timeout_ms"`
	HTTPPort          int     `yaml:"sidecar_port_http"`
	RedisAddr         string  `yaml:"redis_addr"`
	ResolveCacheTTLMs int     `yaml:"resolve_cache_ttl_ms"`
}

// LoadConfig loads configuration from ENV_FILE, CONFIG_PATH and environment variables, in that order.
// SERVICE_NAME and SERVICE_BASE_URL are required.
func LoadConfig() (*SidecarConfig, error) {
	if err := helpers.LoadEnvFile(); err != nil {
		return nil, err
	}

	file := sidecarFile{
		RegistryURL:       defaultRegistryURL,
		HeartbeatInterval: defaultHeartbeatInterval.Seconds(),
		RegistryTimeoutMs: int(defaultRegistryTimeout.Milliseconds()),
		ResolveCacheTTLMs: int(defaultResolveCacheTTL.Milliseconds()),
	}
	if _, err := helpers.LoadYAMLFile(&file); err != nil {
		return nil, err
	}

	cfg := &SidecarConfig{
		ServiceName:    helpers.EnvString("SERVICE_NAME", file.ServiceName),
		ServiceBaseURL: helpers.EnvString("SERVICE_BASE_URL", file.ServiceBaseURL),
		RegistryURL:    helpers.EnvString("REGISTRY_URL", file.RegistryURL),
		RedisAddr:      helpers.EnvString("REDIS_ADDR", file.RedisAddr),
	}
	if cfg.ServiceName == "" {
		return nil, fmt.Errorf("SERVICE_NAME is required")
	}
	if cfg.ServiceBaseURL == "" {
		return nil, fmt.Errorf("SERVICE_BASE_URL is required")
	}
	if u, err := url.Parse(cfg.RegistryURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid REGISTRY_URL: %q", cfg.RegistryURL)
	}

	var err error
	cfg.HeartbeatInterval, err = helpers.EnvSeconds("HEARTBEAT_INTERVAL", time.Duration(file.HeartbeatInterval*float64(time.Second)))
	if err != nil {
		return nil, err
	}
	if cfg.HeartbeatInterval <= 0 {
		return nil, fmt.Errorf("HEARTBEAT_INTERVAL must be positive")
	}

	cfg.RegistryTimeout, err = helpers.EnvMillis("REGISTRY_TIMEOUT_MS", time.Duration(file.RegistryTimeoutMs)*time.Millisecond)
	if err != nil {
		return nil, err
	}
	if cfg.RegistryTimeout <= 0 {
		return nil, fmt.Errorf("REGISTRY_TIMEOUT_MS must be positive")
	}

	cfg.HTTPPort, err = helpers.EnvInt("SIDECAR_PORT_HTTP", file.HTTPPort)
	if err != nil {
		return nil, err
	}
	if cfg.HTTPPort < 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid SIDECAR_PORT_HTTP: %d", cfg.HTTPPort)
	}

	cfg.ResolveCacheTTL, err = helpers.EnvMillis("RESOLVE_CACHE_TTL_MS", time.Duration(file.ResolveCacheTTLMs)*time.Millisecond)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
