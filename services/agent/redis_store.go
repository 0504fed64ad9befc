// File: services/agent/redis_store.go
package agent

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"agendabot/models"
)

const stateKeyPrefix = "agent:state:"

// RedisStateStore keeps negotiation state in Redis so it survives process
// restarts. A ttl of zero keeps pending negotiations forever, matching the
// in-memory behavior; any expiry policy beyond that is a product decision.
type RedisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{client: client, ttl: ttl}
}

func (s *RedisStateStore) Get(ctx context.Context, userID string) (*models.NegotiationState, error) {
	data, err := s.client.Get(ctx, stateKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.NegotiationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisStateStore) Set(ctx context.Context, userID string, state *models.NegotiationState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, stateKeyPrefix+userID, b, s.ttl).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, stateKeyPrefix+userID).Err()
}
