package main

import (
	"fmt"
	"time"

	"myregistry/helpers"
)

const (
	defaultHTTPPort         = 5000
	defaultHeartbeatTimeout = 30 * time.Second
	defaultCleanupInterval  = 10 * time.Second
)

type RegistryConfig struct {
	HTTPPort         int
	HeartbeatTimeout time.Duration
	CleanupInterval  time.Duration
}

// registryFile is the CONFIG_PATH layout. Durations are in seconds.
type registryFile struct {
	HTTPPort         int     `yaml:"service_port_http"`
	HeartbeatTimeout float64 `yaml:"heartbeat_timeout"`
	CleanupInterval  float64 `yaml:"cleanup_interval"`
}

// LoadConfig loads configuration from ENV_FILE, CONFIG_PATH and environment variables, in that order.
// Environment variables win over file values. Every key is optional.
func LoadConfig() (*RegistryConfig, error) {
	if err := helpers.LoadEnvFile(); err != nil {
		return nil, err
	}

	file := registryFile{
		HTTPPort:         defaultHTTPPort,
		HeartbeatTimeout: defaultHeartbeatTimeout.Seconds(),
		CleanupInterval:  defaultCleanupInterval.Seconds(),
	}
	if _, err := helpers.LoadYAMLFile(&file); err != nil {
		return nil, err
	}

	httpPort, err := helpers.EnvInt("SERVICE_PORT_HTTP", file.HTTPPort)
	if err != nil {
		return nil, err
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %d", httpPort)
	}

	heartbeatTimeout, err := helpers.EnvSeconds("HEARTBEAT_TIMEOUT", seconds(file.HeartbeatTimeout))
	if err != nil {
		return nil, err
	}
	if heartbeatTimeout <= 0 {
		return nil, fmt.Errorf("HEARTBEAT_TIMEOUT must be positive")
	}

	cleanupInterval, err := helpers.EnvSeconds("CLEANUP_INTERVAL", seconds(file.CleanupInterval))
	if err != nil {
		return nil, err
	}
	if cleanupInterval <= 0 {
		return nil, fmt.Errorf("CLEANUP_INTERVAL must be positive")
	}

	return &RegistryConfig{
		HTTPPort:         httpPort,
		HeartbeatTimeout: heartbeatTimeout,
		CleanupInterval:  cleanupInterval,
	}, nil
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
