package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// flashTTL bounds how long an unconsumed notice survives, e.g. when a
// visitor abandons the redirect that would have displayed it.
const flashTTL = 15 * time.Minute

// FlashStore holds one-shot user notices between requests, keyed by the
// visitor's flash session id. Key format: flash:<sid>:<category>
type FlashStore struct {
	client *redis.Client
}

func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client}
}

// Add appends a message under a category for the given session.
func (s *FlashStore) Add(ctx context.Context, sid, category, message string) error {
	key := s.key(sid, category)

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, message)
	pipe.Expire(ctx, key, flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("flash add: %w", err)
	}
	return nil
}

// Consume returns all pending messages for the category and deletes them
// in the same transaction, so a second consume in the same cycle sees
// nothing.
func (s *FlashStore) Consume(ctx context.Context, sid, category string) ([]string, error) {
	key := s.key(sid, category)

	pipe := s.client.TxPipeline()
	pending := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("flash consume: %w", err)
	}
	return pending.Val(), nil
}

func (s *FlashStore) key(sid, category string) string {
	return fmt.Sprintf("flash:%s:%s", sid, category)
}
