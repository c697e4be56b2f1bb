package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"overcooked-bot/bot-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps conversation sessions as JSON values. Every save
// refreshes the TTL, so an idle checkout expires after TTL. PurposeTTL
// overrides it per purpose.
type RedisSessionStore struct {
	Client     *redis.Client
	TTL        time.Duration
	PurposeTTL map[domain.Purpose]time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl, PurposeTTL: make(map[domain.Purpose]time.Duration)}
}

// WithTTL sets the lifetime of sessions with the given purpose. Zero keeps
// them until they are cleared.
func (s *RedisSessionStore) WithTTL(purpose domain.Purpose, ttl time.Duration) *RedisSessionStore {
	if s.PurposeTTL == nil {
		s.PurposeTTL = make(map[domain.Purpose]time.Duration)
	}
	s.PurposeTTL[purpose] = ttl
	return s
}

func (s *RedisSessionStore) ttlFor(purpose domain.Purpose) time.Duration {
	if ttl, ok := s.PurposeTTL[purpose]; ok {
		return ttl
	}
	return s.TTL
}

// Load returns the empty main-menu session when nothing is stored.
func (s *RedisSessionStore) Load(ctx context.Context, key domain.SessionKey) (domain.Session, error) {
	raw, err := s.Client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load %s: %w", key, err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return domain.Session{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, key domain.SessionKey, sess domain.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key.String(), payload, s.ttlFor(key.Purpose)).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, key domain.SessionKey) error {
	return s.Client.Del(ctx, key.String()).Err()
}
