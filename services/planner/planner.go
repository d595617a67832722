// Package planner owns schedule generation: uniform dish selection from the
// catalog, full daily/weekly generation, and minimal-diff regeneration of a
// single day or slot within an existing week.
package planner

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"mealroom/models"
)

// Planner draws dishes from a catalog. Safe for concurrent use; the random
// source is guarded because *rand.Rand is not.
type Planner struct {
	catalog []models.Dish

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a planner over the given catalog with a time-seeded source.
func New(catalog []models.Dish) *Planner {
	return NewWithRand(catalog, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a planner with an explicit random source, which makes
// generation deterministic in tests.
func NewWithRand(catalog []models.Dish, rng *rand.Rand) *Planner {
	return &Planner{catalog: catalog, rng: rng}
}

// Pick selects a uniformly random dish of the given category.
func (p *Planner) Pick(category models.Category) (models.Dish, error) {
	var candidates []models.Dish
	for _, dish := range p.catalog {
		if dish.Category == category {
			candidates = append(candidates, dish)
		}
	}
	if len(candidates) == 0 {
		return models.Dish{}, fmt.Errorf("%w: %s", ErrEmptyCategory, category)
	}

	p.mu.Lock()
	idx := p.rng.Intn(len(candidates))
	p.mu.Unlock()
	return candidates[idx], nil
}

// GenerateDaily builds a fresh daily schedule. Each slot is drawn
// independently with replacement, so the same dish may appear twice.
func (p *Planner) GenerateDaily() (models.DailySchedule, error) {
	var daily models.DailySchedule
	for _, slot := range models.MealSlots {
		dish, err := p.Pick(slot.Category())
		if err != nil {
			return models.DailySchedule{}, err
		}
		daily.SetSlot(slot, dish)
	}
	return daily, nil
}

// GenerateWeekly builds a full week of independent daily schedules. There are
// no cross-day constraints; dishes may repeat across days.
func (p *Planner) GenerateWeekly() (models.WeeklySchedule, error) {
	var week models.WeeklySchedule
	for _, day := range models.Weekdays {
		daily, err := p.GenerateDaily()
		if err != nil {
			return models.WeeklySchedule{}, err
		}
		week = week.WithDay(day, &daily)
	}
	return week, nil
}

// RegenerateDay replaces one day of the week with a fresh daily schedule.
// The input is not modified; untouched days keep pointer identity in the
// returned copy.
func (p *Planner) RegenerateDay(week models.WeeklySchedule, day models.Weekday) (models.WeeklySchedule, error) {
	daily, err := p.GenerateDaily()
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	return week.WithDay(day, &daily), nil
}

// RegenerateSlot redraws a single slot of an existing day. Targeting a day
// that has not been generated yet returns ErrDayNotGenerated; the other four
// slots of the day and all other days are unchanged.
func (p *Planner) RegenerateSlot(week models.WeeklySchedule, day models.Weekday, slot models.MealSlot) (models.WeeklySchedule, error) {
	current := week.Day(day)
	if current == nil {
		return models.WeeklySchedule{}, fmt.Errorf("%w: %s", ErrDayNotGenerated, day)
	}

	dish, err := p.Pick(slot.Category())
	if err != nil {
		return models.WeeklySchedule{}, err
	}

	daily := *current
	daily.SetSlot(slot, dish)
	return week.WithDay(day, &daily), nil
}
