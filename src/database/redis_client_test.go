package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, RedisUp, RedisStatus(context.Background(), client))

	mr.Close()
	assert.Equal(t, RedisDown, RedisStatus(context.Background(), client))
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), addr)
	assert.Error(t, err)
}

func TestRedisStatusDisabled(t *testing.T) {
	assert.Equal(t, RedisDisabled, RedisStatus(context.Background(), nil))
}
