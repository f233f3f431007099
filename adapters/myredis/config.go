package myredis

import (
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
)

// ConfigOption tweaks the parsed redis options before the client is built.
type ConfigOption func(*redis.Options)

// NewRedisUniversalClient creates and configures instance of redis universal client.
// redisAddr is a redis:// URL; a bare host:port is accepted too.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	if redisAddr == "" {
		return nil, fmt.Errorf("redis address is empty")
	}
	if !strings.Contains(redisAddr, "://") {
		redisAddr = "redis://" + redisAddr
	}
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(universalOptions(redisOptions)), nil
}

func universalOptions(options *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:        []string{options.Addr},
		DB:           options.DB,
		Username:     options.Username,
		Password:     options.Password,
		WriteTimeout: options.WriteTimeout,
		ReadTimeout:  options.ReadTimeout,
		DialTimeout:  options.DialTimeout,
		MaxRetries:   options.MaxRetries,
		PoolSize:     options.PoolSize,
		PoolTimeout:  options.PoolTimeout,
		MinIdleConns: options.MinIdleConns,
		IdleTimeout:  options.IdleTimeout,
	}
}
