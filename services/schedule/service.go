// Package schedule persists weekly meal schedules per room and derives the
// daily views. The whole week is the atomic storage unit: day-level reads
// project one weekday out of the week blob, day-level writes read the week,
// replace one day and write the whole week back. Two concurrent writers on
// the same (room, week) therefore race at week granularity and the last
// write wins; there is no version token on the record.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	scheduleRepo "mealroom/database/repository/schedule"
	"mealroom/models"
	"mealroom/services/planner"
	"mealroom/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const weekCachePrefix = "weeklySchedule:"

// ErrWeekNotGenerated is returned when a day or slot regeneration targets a
// week that has no stored schedule yet.
var ErrWeekNotGenerated = errors.New("week not generated")

// ScheduleService exposes schedule reads, generation and regeneration for a
// room. All dates are normalized internally to the Monday of their ISO week.
type ScheduleService interface {
	GetWeek(ctx context.Context, date time.Time, roomCode string) (*models.WeeklySchedule, error)
	SetWeek(ctx context.Context, date time.Time, week models.WeeklySchedule, roomCode string) error
	GetDay(ctx context.Context, date time.Time, roomCode string) (*models.DailySchedule, error)
	SetDay(ctx context.Context, date time.Time, daily models.DailySchedule, roomCode string) error

	GenerateWeek(ctx context.Context, date time.Time, roomCode string) (models.WeeklySchedule, error)
	GenerateDay(ctx context.Context, date time.Time, roomCode string) (models.DailySchedule, error)
	RegenerateDay(ctx context.Context, date time.Time, day models.Weekday, roomCode string) (models.WeeklySchedule, error)
	RegenerateSlot(ctx context.Context, date time.Time, day models.Weekday, slot models.MealSlot, roomCode string) (models.WeeklySchedule, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo     scheduleRepo.ScheduleRepository
	Planner  *planner.Planner
	Cache    *redis.Client // optional; nil disables caching
	CacheTTL time.Duration
}

func (s *DefaultScheduleService) GetWeek(ctx context.Context, date time.Time, roomCode string) (*models.WeeklySchedule, error) {
	weekStart := models.WeekKey(date)
	roomCode = normalizeCode(roomCode)

	if cached := s.cachedWeek(ctx, weekStart, roomCode); cached != nil {
		return cached, nil
	}

	record, err := s.Repo.GetWeek(ctx, weekStart, roomCode)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	s.cacheWeek(ctx, weekStart, roomCode, record.Schedule)
	return &record.Schedule, nil
}

func (s *DefaultScheduleService) SetWeek(ctx context.Context, date time.Time, week models.WeeklySchedule, roomCode string) error {
	weekStart := models.WeekKey(date)
	roomCode = normalizeCode(roomCode)

	record := &models.ScheduleRecord{
		RoomCode:  roomCode,
		WeekStart: weekStart,
		Schedule:  week,
	}
	if err := s.Repo.UpsertWeek(ctx, record); err != nil {
		return fmt.Errorf("failed to store week %s/%s: %w", roomCode, weekStart, err)
	}
	s.cacheWeek(ctx, weekStart, roomCode, week)
	return nil
}

func (s *DefaultScheduleService) GetDay(ctx context.Context, date time.Time, roomCode string) (*models.DailySchedule, error) {
	week, err := s.GetWeek(ctx, date, roomCode)
	if err != nil || week == nil {
		return nil, err
	}
	return week.Day(models.WeekdayOf(date)), nil
}

func (s *DefaultScheduleService) SetDay(ctx context.Context, date time.Time, daily models.DailySchedule, roomCode string) error {
	week, err := s.GetWeek(ctx, date, roomCode)
	if err != nil {
		return err
	}
	if week == nil {
		week = &models.WeeklySchedule{}
	}
	updated := week.WithDay(models.WeekdayOf(date), &daily)
	return s.SetWeek(ctx, date, updated, roomCode)
}

func (s *DefaultScheduleService) GenerateWeek(ctx context.Context, date time.Time, roomCode string) (models.WeeklySchedule, error) {
	week, err := s.Planner.GenerateWeekly()
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if err := s.SetWeek(ctx, date, week, roomCode); err != nil {
		return models.WeeklySchedule{}, err
	}
	utils.GetLogger().Info("week generated",
		zap.String("room", normalizeCode(roomCode)),
		zap.String("weekStart", models.WeekKey(date)))
	return week, nil
}

func (s *DefaultScheduleService) GenerateDay(ctx context.Context, date time.Time, roomCode string) (models.DailySchedule, error) {
	daily, err := s.Planner.GenerateDaily()
	if err != nil {
		return models.DailySchedule{}, err
	}
	if err := s.SetDay(ctx, date, daily, roomCode); err != nil {
		return models.DailySchedule{}, err
	}
	return daily, nil
}

func (s *DefaultScheduleService) RegenerateDay(ctx context.Context, date time.Time, day models.Weekday, roomCode string) (models.WeeklySchedule, error) {
	week, err := s.GetWeek(ctx, date, roomCode)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if week == nil {
		return models.WeeklySchedule{}, ErrWeekNotGenerated
	}

	updated, err := s.Planner.RegenerateDay(*week, day)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if err := s.SetWeek(ctx, date, updated, roomCode); err != nil {
		return models.WeeklySchedule{}, err
	}
	return updated, nil
}

func (s *DefaultScheduleService) RegenerateSlot(ctx context.Context, date time.Time, day models.Weekday, slot models.MealSlot, roomCode string) (models.WeeklySchedule, error) {
	week, err := s.GetWeek(ctx, date, roomCode)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if week == nil {
		return models.WeeklySchedule{}, ErrWeekNotGenerated
	}

	updated, err := s.Planner.RegenerateSlot(*week, day, slot)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if err := s.SetWeek(ctx, date, updated, roomCode); err != nil {
		return models.WeeklySchedule{}, err
	}
	return updated, nil
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (s *DefaultScheduleService) cacheWeek(ctx context.Context, weekStart, roomCode string, week models.WeeklySchedule) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(week)
	if err != nil {
		return
	}
	key := weekCachePrefix + roomCode + ":" + weekStart
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache week", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultScheduleService) cachedWeek(ctx context.Context, weekStart, roomCode string) *models.WeeklySchedule {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, weekCachePrefix+roomCode+":"+weekStart).Result()
	if err != nil {
		return nil
	}
	var week models.WeeklySchedule
	if err := json.Unmarshal([]byte(data), &week); err != nil {
		return nil
	}
	return &week
}
