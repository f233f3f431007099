package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myregistry/adapters/myredis"
	"myregistry/adapters/registryhttp"
	"myregistry/handlers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"resty.dev/v3"
)

const resolveCachePrefix = "resolve"

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyRegistry sidecar")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_name", config.ServiceName,
		"service_base_url", config.ServiceBaseURL,
		"registry_url", config.RegistryURL,
		"heartbeat_interval", config.HeartbeatInterval,
		"sidecar_port_http", config.HTTPPort,
	)

	registry := registryhttp.NewRegistryHTTP(config.RegistryURL, resty.New(), config.RegistryTimeout)
	defer registry.Close()

	client := service.NewRegistrationClient(registry, config.ServiceName, config.ServiceBaseURL, logger,
		service.WithHeartbeatInterval(config.HeartbeatInterval),
		service.WithCallTimeout(config.RegistryTimeout),
	)
	instanceID, err := client.Register(context.Background())
	if err != nil {
		level.Error(logger).Log("msg", "Failed to register with registry", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "Registered", "instance_id", instanceID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional local resolve API
	var e *echo.Echo
	if config.HTTPPort > 0 {
		var opts []service.ResolverOption
		if config.RedisAddr != "" {
			cache, closeCache, err := newResolveCache(config.RedisAddr, logger)
			if err != nil {
				level.Error(logger).Log("msg", "Failed to set up resolution cache", "err", err)
				client.Deregister(context.Background())
				os.Exit(1)
			}
			defer closeCache()
			opts = append(opts, service.WithResolutionCache(cache, config.ResolveCacheTTL))
		}
		resolver := service.NewDiscoveryResolver(registry, logger, opts...)

		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterResolveHandlers(e, handlers.NewResolveServer(resolver))

		go func() {
			addr := fmt.Sprintf(":%d", config.HTTPPort)
			level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				level.Error(logger).Log("msg", "HTTP server error", "err", err)
				stop()
			}
		}()
	}

	// Wait for interrupt signal
	<-ctx.Done()
	level.Info(logger).Log("msg", "Shutting down sidecar...")

	if e != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := e.Shutdown(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
		}
		shutdownCancel()
	}

	// best effort; the sweeper removes the instance otherwise
	if out := client.Deregister(context.Background()); !out.OK() {
		level.Warn(logger).Log("msg", "Deregistration failed", "err", out.Err)
	}

	level.Info(logger).Log("msg", "Sidecar stopped")
}

func newResolveCache(addr string, logger log.Logger) (interfaces.Cache[string], func(), error) {
	redisClient, err := myredis.NewRedisUniversalClient(addr)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	level.Info(logger).Log("msg", "Connected to Redis")

	return myredis.NewStringCache(redisClient, resolveCachePrefix), func() { _ = redisClient.Close() }, nil
}
