package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mealroom/models"
	"mealroom/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const historyKeyPrefix = "roomHistory:"

// historyTTL expires stale visit lists; a device that has not joined a room
// in this long starts over with an empty list.
const historyTTL = 90 * 24 * time.Hour

// Compile-time interface check.
var _ Store = (*RedisStore)(nil)

// RedisStore keeps each device's visit list as one JSON value.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, deviceID string) ([]models.RoomVisit, error) {
	data, err := s.Client.Get(ctx, historyKeyPrefix+deviceID).Result()
	if err == redis.Nil {
		return []models.RoomVisit{}, nil
	}
	if err != nil {
		// History is best-effort; an unreachable store reads as empty.
		utils.GetLogger().Warn("failed to read room history", zap.String("device", deviceID), zap.Error(err))
		return []models.RoomVisit{}, nil
	}

	var visits []models.RoomVisit
	if err := json.Unmarshal([]byte(data), &visits); err != nil {
		// Corrupt data is silently treated as empty.
		return []models.RoomVisit{}, nil
	}
	return visits, nil
}

func (s *RedisStore) Set(ctx context.Context, deviceID string, visits []models.RoomVisit) error {
	data, err := json.Marshal(visits)
	if err != nil {
		return fmt.Errorf("failed to marshal room history: %w", err)
	}
	if err := s.Client.Set(ctx, historyKeyPrefix+deviceID, data, historyTTL).Err(); err != nil {
		return fmt.Errorf("failed to store room history: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, deviceID string) error {
	return s.Client.Del(ctx, historyKeyPrefix+deviceID).Err()
}
