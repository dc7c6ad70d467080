package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
)

// RedisStore persists sessions in redis so a suspended lookup can be
// resumed by any instance behind a load balancer.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore connects to redis using cfg and verifies connectivity
// with a ping before returning.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "session: redis ping failed")
	}

	return &RedisStore{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.SessionTTL,
	}, nil
}

func (s *RedisStore) key(id string) string {
	return fmt.Sprintf("%s:session:%s", s.keyPrefix, id)
}

func (s *RedisStore) Put(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "session: marshal failed")
	}
	if err := s.client.Set(ctx, s.key(sess.ID), payload, s.ttl).Err(); err != nil {
		return errors.Wrap(err, errors.CodeUpstreamUnavailable, "session: redis set failed")
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, "session: redis get failed")
	}
	sess := &Session{}
	if err := json.Unmarshal(payload, sess); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "session: unmarshal failed")
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Wrap(err, errors.CodeUpstreamUnavailable, "session: redis del failed")
	}
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
