package draft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces draft keys in Redis.
const DefaultKeyPrefix = "formstate:draft:"

// RedisStore implements Store on Redis. Each draft is a JSON string whose
// key expires together with the draft.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a store writing keys under prefix.
// An empty prefix falls back to DefaultKeyPrefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Create(ctx context.Context, d *Draft) error {
	return s.set(ctx, d, "NX", ErrDraftExists)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Draft, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, errors.Join(ErrStorageOperation, err)
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	if d.IsExpired() {
		return nil, ErrDraftExpired
	}
	return &d, nil
}

func (s *RedisStore) Update(ctx context.Context, d *Draft) error {
	return s.set(ctx, d, "XX", ErrDraftNotFound)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}

// set writes d with the given SET mode; conflict is returned when the mode
// condition is not met.
func (s *RedisStore) set(ctx context.Context, d *Draft, mode string, conflict error) error {
	if err := d.validate(); err != nil {
		return err
	}

	ttl := time.Until(d.ExpiresAt)
	if ttl <= 0 {
		return ErrDraftExpired
	}

	data, err := json.Marshal(d)
	if err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}

	err = s.client.SetArgs(ctx, s.key(d.ID), data, redis.SetArgs{
		Mode: mode,
		TTL:  ttl,
	}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return conflict
		}
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}
