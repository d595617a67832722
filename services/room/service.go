// Package room implements the room registry: creating uniquely-coded rooms
// and looking them up by code.
package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	roomRepo "mealroom/database/repository/room"
	"mealroom/models"
	"mealroom/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// createAttempts bounds how many fresh codes CreateRoom tries before giving
// up on a pathological collision streak.
const createAttempts = 3

const roomCachePrefix = "room:"

// RoomService exposes room registry operations.
type RoomService interface {
	// CreateRoom registers a new room under a freshly generated code.
	CreateRoom(ctx context.Context, displayName string) (*models.Room, error)
	// GetRoom looks up a room by code, case-insensitively. Returns
	// roomRepo.ErrNotFound when no such room exists.
	GetRoom(ctx context.Context, code string) (*models.Room, error)
}

// DefaultRoomService is the production implementation.
type DefaultRoomService struct {
	Repo     roomRepo.RoomRepository
	Slugs    *SlugGenerator
	Cache    *redis.Client // optional; nil disables caching
	CacheTTL time.Duration
}

func (s *DefaultRoomService) CreateRoom(ctx context.Context, displayName string) (*models.Room, error) {
	logger := utils.GetLogger()

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyName
	}

	for attempt := 1; attempt <= createAttempts; attempt++ {
		candidate := &models.Room{
			ID:        uuid.New().String(),
			Code:      s.Slugs.Generate(),
			Name:      displayName,
			CreatedAt: time.Now().UTC(),
		}

		err := s.Repo.Create(ctx, candidate)
		if err == nil {
			logger.Info("room created",
				zap.String("code", candidate.Code),
				zap.Int("attempt", attempt))
			s.cacheRoom(ctx, candidate)
			return candidate, nil
		}
		if errors.Is(err, roomRepo.ErrCodeTaken) {
			logger.Warn("room code collision, retrying",
				zap.String("code", candidate.Code),
				zap.Int("attempt", attempt))
			continue
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return nil, ErrCreationExhausted
}

func (s *DefaultRoomService) GetRoom(ctx context.Context, code string) (*models.Room, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	if cached := s.cachedRoom(ctx, code); cached != nil {
		return cached, nil
	}

	room, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.cacheRoom(ctx, room)
	return room, nil
}

// cacheRoom stores a room lookup result; cache failures are ignored since
// Mongo remains the source of truth.
func (s *DefaultRoomService) cacheRoom(ctx context.Context, room *models.Room) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(room)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, roomCachePrefix+room.Code, data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache room", zap.String("code", room.Code), zap.Error(err))
	}
}

func (s *DefaultRoomService) cachedRoom(ctx context.Context, code string) *models.Room {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, roomCachePrefix+code).Result()
	if err != nil {
		return nil
	}
	var room models.Room
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		return nil
	}
	return &room
}
