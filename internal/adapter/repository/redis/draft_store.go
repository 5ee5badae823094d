// Package redis persists in-progress booking and hiring flows so a
// flow can be resumed after a restart without repeating backend calls.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	flowKeyPrefix = "swiftbus:flow:"
	tokenKey      = "swiftbus:auth:token"

	// Stage payloads outlive an app restart but not a stale draft: the
	// backend releases unpaid seats long before this expires.
	stageTTL = 24 * time.Hour
)

type DraftStore struct {
	client goredis.UniversalClient
}

func NewDraftStore(client goredis.UniversalClient) *DraftStore {
	return &DraftStore{client: client}
}

func stageKey(flowID, stage string) string {
	return flowKeyPrefix + flowID + ":" + stage
}

func (s *DraftStore) SaveStage(ctx context.Context, flowID, stage string, payload []byte) error {
	if err := s.client.Set(ctx, stageKey(flowID, stage), payload, stageTTL).Err(); err != nil {
		return fmt.Errorf("save stage %s: %w", stage, err)
	}
	return nil
}

// LoadStage returns (nil, false, nil) when the stage was never saved,
// so callers can distinguish an empty flow from a broken store.
func (s *DraftStore) LoadStage(ctx context.Context, flowID, stage string) ([]byte, bool, error) {
	payload, err := s.client.Get(ctx, stageKey(flowID, stage)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load stage %s: %w", stage, err)
	}
	return payload, true, nil
}

// DeleteFlow removes every stage saved under the flow id.
func (s *DraftStore) DeleteFlow(ctx context.Context, flowID string) error {
	var cursor uint64
	pattern := flowKeyPrefix + flowID + ":*"
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("scan flow %s: %w", flowID, err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete flow %s: %w", flowID, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *DraftStore) SaveToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, tokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// LoadToken returns an empty string when no token is stored.
func (s *DraftStore) LoadToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (s *DraftStore) ClearToken(ctx context.Context) error {
	if err := s.client.Del(ctx, tokenKey).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
