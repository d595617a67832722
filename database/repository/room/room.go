package roomRepo

import (
	"context"
	"errors"

	"mealroom/models"
)

// ErrNotFound is returned when no room matches the requested code. Absence is
// an expected steady state (bad or mistyped codes), not a transport failure.
var ErrNotFound = errors.New("room not found")

// ErrCodeTaken is returned when an insert collides with an existing room
// code. The service layer retries with a fresh code.
var ErrCodeTaken = errors.New("room code already taken")

// RoomRepository defines data access for rooms.
type RoomRepository interface {
	// Create inserts a new room record. Returns ErrCodeTaken when the code
	// collides with an existing room.
	Create(ctx context.Context, room *models.Room) error
	// GetByCode retrieves a room by its (already lowercased) code. Returns
	// ErrNotFound when absent.
	GetByCode(ctx context.Context, code string) (*models.Room, error)
}
