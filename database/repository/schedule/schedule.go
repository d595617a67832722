package scheduleRepo

import (
	"context"

	"mealroom/models"
)

// ScheduleRepository defines data access for weekly schedule records. The
// record keyed by (weekStart, roomCode) is the atomic unit of storage; there
// are no partial-week writes.
type ScheduleRepository interface {
	// GetWeek fetches the record for a week. Returns (nil, nil) when no
	// record exists yet, which is the normal state for a fresh week.
	GetWeek(ctx context.Context, weekStart, roomCode string) (*models.ScheduleRecord, error)
	// UpsertWeek writes the whole record, inserting or replacing it.
	UpsertWeek(ctx context.Context, record *models.ScheduleRecord) error
}
