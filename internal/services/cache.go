package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// CacheService stores JSON values in redis. With a nil client it keeps
// them in process memory instead, which is what tests and single-node
// development runs use.
type CacheService struct {
	client *redis.Client

	mu     sync.Mutex
	memory map[string]memoryEntry
	now    func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{
		client: client,
		memory: make(map[string]memoryEntry),
		now:    time.Now,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if s.client == nil {
		entry := memoryEntry{data: data}
		if expiration > 0 {
			entry.expiresAt = s.now().Add(expiration)
		}
		s.mu.Lock()
		s.memory[key] = entry
		s.mu.Unlock()
		return nil
	}

	if err := s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	var data []byte
	if s.client == nil {
		s.mu.Lock()
		entry, ok := s.memory[key]
		if ok && !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
			delete(s.memory, key)
			ok = false
		}
		s.mu.Unlock()
		if !ok {
			return ErrCacheMiss
		}
		data = entry.data
	} else {
		raw, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrCacheMiss
			}
			return fmt.Errorf("failed to get cache: %w", err)
		}
		data = raw
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if s.client == nil {
		s.mu.Lock()
		for _, k := range keys {
			delete(s.memory, k)
		}
		s.mu.Unlock()
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Cache key generators
func GameCacheKey(gameID uint) string {
	return fmt.Sprintf("game:%d", gameID)
}

func WeekCacheKey(season, week int) string {
	return fmt.Sprintf("week:%d:%d", season, week)
}
