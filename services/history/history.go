// Package history keeps a small per-device list of recently visited rooms.
// It is a convenience cache, never authoritative: reads degrade to an empty
// list on missing or corrupt data, and entries expire on their own.
package history

import (
	"context"
	"time"

	"mealroom/models"
)

// Capacity bounds the list; the oldest visit is dropped beyond it.
const Capacity = 3

// Store persists one visit list per device.
type Store interface {
	// Get returns the stored visits, newest first. Missing or unreadable
	// data yields an empty list, not an error.
	Get(ctx context.Context, deviceID string) ([]models.RoomVisit, error)
	// Set replaces the stored visits.
	Set(ctx context.Context, deviceID string, visits []models.RoomVisit) error
	// Clear drops the device's list.
	Clear(ctx context.Context, deviceID string) error
}

// HistoryService exposes visit tracking to the HTTP layer.
type HistoryService interface {
	Visits(ctx context.Context, deviceID string) ([]models.RoomVisit, error)
	Touch(ctx context.Context, deviceID string, room models.Room) error
	Clear(ctx context.Context, deviceID string) error
}

// DefaultHistoryService is the production implementation.
type DefaultHistoryService struct {
	Store Store
}

func (s *DefaultHistoryService) Visits(ctx context.Context, deviceID string) ([]models.RoomVisit, error) {
	return s.Store.Get(ctx, deviceID)
}

func (s *DefaultHistoryService) Touch(ctx context.Context, deviceID string, room models.Room) error {
	visits, err := s.Store.Get(ctx, deviceID)
	if err != nil {
		return err
	}
	visit := models.RoomVisit{
		Code:        room.Code,
		Name:        room.Name,
		LastVisited: time.Now().UTC(),
	}
	return s.Store.Set(ctx, deviceID, push(visits, visit))
}

func (s *DefaultHistoryService) Clear(ctx context.Context, deviceID string) error {
	return s.Store.Clear(ctx, deviceID)
}

// push prepends a visit, removes any older entry for the same room, and
// trims the list to capacity.
func push(visits []models.RoomVisit, visit models.RoomVisit) []models.RoomVisit {
	updated := make([]models.RoomVisit, 0, Capacity)
	updated = append(updated, visit)
	for _, v := range visits {
		if v.Code == visit.Code {
			continue
		}
		updated = append(updated, v)
		if len(updated) == Capacity {
			break
		}
	}
	return updated
}
