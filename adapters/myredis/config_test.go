package myredis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisUniversalClient(t *testing.T) {
	mr := miniredis.RunT(t)

	t.Run("url", func(t *testing.T) {
		client, err := NewRedisUniversalClient("redis://" + mr.Addr())
		require.NoError(t, err)
		defer client.Close()
		require.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("bare host:port", func(t *testing.T) {
		client, err := NewRedisUniversalClient(mr.Addr())
		require.NoError(t, err)
		defer client.Close()
		require.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("with options", func(t *testing.T) {
		client, err := NewRedisUniversalClient(mr.Addr(), func(o *redis.Options) {
			o.DialTimeout = time.Second
		})
		require.NoError(t, err)
		defer client.Close()
	})

	t.Run("empty", func(t *testing.T) {
		client, err := NewRedisUniversalClient("")
		require.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("invalid", func(t *testing.T) {
		client, err := NewRedisUniversalClient("http://" + mr.Addr())
		require.Error(t, err)
		assert.Nil(t, client)
	})
}
