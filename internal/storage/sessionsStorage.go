package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type SessionRedis struct {
	Client *redis.Client
}

// NewSessionsStorage - хранилище сессий в Redis, url вида redis://host:port/db
func NewSessionsStorage(url string) (*SessionRedis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &SessionRedis{Client: redis.NewClient(opts)}, nil
}

func (s *SessionRedis) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *SessionRedis) AddSession(ctx context.Context, tokenID string, userID string, ttl time.Duration) error {
	if err := s.Client.Set(ctx, sessionKeyPrefix+tokenID, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}
	return nil
}

func (s *SessionRedis) HasSession(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.Client.Exists(ctx, sessionKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

func (s *SessionRedis) DeleteSession(ctx context.Context, tokenID string) error {
	if err := s.Client.Del(ctx, sessionKeyPrefix+tokenID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *SessionRedis) Close() error {
	return s.Client.Close()
}
