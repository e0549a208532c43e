package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/store"
	"github.com/de-tools/cloud-portal/pkg/store/session"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "portal:session:"
	fieldCreatedAt   = "createdAt"
)

// Store keeps each session as a redis hash holding the role and user name
// entries, expiring after the configured TTL.
type Store struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewStore(client redis.UniversalClient, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix, ttl: ttl}
}

// Factory connects to the configured server and verifies it answers.
func Factory(ctx context.Context, settings session.Settings) (session.Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.RedisAddr,
		Password: settings.RedisPassword,
		DB:       settings.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", settings.RedisAddr, err)
	}
	return NewStore(client, settings.KeyPrefix, settings.TTL), nil
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) Save(ctx context.Context, rec store.SessionRecord) error {
	key := s.key(rec.ID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			store.KeyUserRole, rec.UserRole,
			store.KeyUserName, rec.UserName,
			fieldCreatedAt, rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, id string) (store.SessionRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return store.SessionRecord{}, fmt.Errorf("load session %s: %w", id, err)
	}

	role, ok := fields[store.KeyUserRole]
	if !ok {
		return store.SessionRecord{}, session.ErrNotFound
	}

	rec := store.SessionRecord{
		ID:       id,
		UserRole: role,
		UserName: fields[store.KeyUserName],
	}
	if raw := fields[fieldCreatedAt]; raw != "" {
		created, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return store.SessionRecord{}, fmt.Errorf("session %s: parse %s: %w", id, fieldCreatedAt, err)
		}
		rec.CreatedAt = created
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
