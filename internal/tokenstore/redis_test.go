package tokenstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a Redis slot backed by it
func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedis(client, "storefront:token"), mr
}

func TestRedisLoadMissing(t *testing.T) {
	sut, _ := setupTestRedis(t)

	_, err := sut.Load(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSaveLoadClear(t *testing.T) {
	sut, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, "tok-abc"))

	token, err := sut.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, sut.Clear(ctx))

	_, err = sut.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisEmptyValueCountsAsMissing(t *testing.T) {
	sut, mr := setupTestRedis(t)

	require.NoError(t, mr.Set("storefront:token", ""))

	_, err := sut.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSaveSetsExpiry(t *testing.T) {
	sut, mr := setupTestRedis(t)

	require.NoError(t, sut.Save(context.Background(), "tok-abc"))

	assert.Positive(t, mr.TTL("storefront:token"))
}

func TestRedisClearIsIdempotent(t *testing.T) {
	sut, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, sut.Clear(ctx))
	require.NoError(t, sut.Clear(ctx))
}
