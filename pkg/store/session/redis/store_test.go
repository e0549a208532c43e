package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/store"
	"github.com/de-tools/cloud-portal/pkg/store/session"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *redis.Client) {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	prefix := "portal:test:" + uuid.NewString() + ":"
	return NewStore(client, prefix, time.Minute), client
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, client := newTestStore(t)
	created := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	_, err := s.Load(ctx, "missing")
	require.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, s.Save(ctx, store.SessionRecord{ID: "s1", UserRole: "manager", UserName: "jane.smith", CreatedAt: created}))

	fields, err := client.HGetAll(ctx, s.key("s1")).Result()
	require.NoError(t, err)
	assert.Equal(t, "manager", fields[store.KeyUserRole])
	assert.Equal(t, "jane.smith", fields[store.KeyUserName])

	ttl, err := client.TTL(ctx, s.key("s1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	rec, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, created, rec.CreatedAt)

	require.NoError(t, s.Delete(ctx, "s1"))
	exists, err := client.Exists(ctx, s.key("s1")).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	_, err = s.Load(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestFactory_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := Factory(ctx, session.Settings{RedisAddr: "127.0.0.1:1"})
	assert.Error(t, err)
}
