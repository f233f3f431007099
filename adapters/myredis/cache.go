package myredis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-redis/redis/v8"
)

type redisCache[T any] struct {
	client    redis.UniversalClient
	prefix    string
	marshal   func(T) ([]byte, error)
	unmarshal func([]byte) (T, error)
}

// NewCache creates redis implementation of generic cache interface.
// Keys are stored as prefix:key.
func NewCache[T any](client redis.UniversalClient, prefix string, marshal func(T) ([]byte, error), unmarshal func([]byte) (T, error)) interfaces.Cache[T] {
	return &redisCache[T]{
		client:    client,
		prefix:    prefix,
		marshal:   marshal,
		unmarshal: unmarshal,
	}
}

// NewStringCache stores plain strings, e.g. resolved base URLs.
func NewStringCache(client redis.UniversalClient, prefix string) interfaces.Cache[string] {
	return NewCache[string](client, prefix,
		func(s string) ([]byte, error) { return []byte(s), nil },
		func(b []byte) (string, error) { return string(b), nil },
	)
}

func (r *redisCache[T]) WriteValue(ctx context.Context, key string, item T, ttlMs int) error {
	bytes, err := r.marshal(item)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal item of type %T, err: %w", item, err))
	}

	err = r.client.Set(ctx, r.generateKey(key), bytes, time.Duration(ttlMs)*time.Millisecond).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write item of type %T to redis (key='%s'), err: %w", item, key, err))
	}

	return nil
}

func (r *redisCache[T]) ReadValue(ctx context.Context, key string) (T, error) {
	var zero T
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, service.NewEntityNotFoundError("Entity not found", err)
		}
		return zero, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read key '%s' from redis, err: %w", key, err))
	}

	item, err := r.unmarshal(bytes)
	if err != nil {
		return zero, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal item of type %T (key='%s'), err: %w", zero, key, err))
	}
	return item, nil
}

func (r *redisCache[T]) generateKey(key string) string {
	return r.prefix + ":" + key
}
