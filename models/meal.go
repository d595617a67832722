package models

import (
	"fmt"
	"strings"
)

// Category groups catalog dishes by the kind of meal slot they can fill.
type Category string

const (
	CategoryBreakfast     Category = "breakfast"
	CategoryMainCourse    Category = "mainCourse"
	CategoryAccompaniment Category = "accompaniment"
)

// Dish is a single catalog entry.
type Dish struct {
	Name     string   `json:"name" bson:"name"`
	Category Category `json:"category" bson:"category"`
}

// MealSlot names one of the five positions in a daily schedule.
type MealSlot string

const (
	SlotBreakfast           MealSlot = "breakfast"
	SlotLunch               MealSlot = "lunch"
	SlotDinner              MealSlot = "dinner"
	SlotLunchAccompaniment  MealSlot = "lunchAccompaniment"
	SlotDinnerAccompaniment MealSlot = "dinnerAccompaniment"
)

// MealSlots lists all slots in display order.
var MealSlots = []MealSlot{
	SlotBreakfast,
	SlotLunch,
	SlotDinner,
	SlotLunchAccompaniment,
	SlotDinnerAccompaniment,
}

// ParseMealSlot validates a slot name coming from a request path.
func ParseMealSlot(s string) (MealSlot, error) {
	for _, slot := range MealSlots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown meal slot %q", s)
}

// Category returns the catalog category a slot draws its dish from.
func (s MealSlot) Category() Category {
	switch {
	case s == SlotBreakfast:
		return CategoryBreakfast
	case strings.Contains(string(s), "Accompaniment"):
		return CategoryAccompaniment
	default:
		return CategoryMainCourse
	}
}

// DailySchedule holds one dish per slot. It is either fully populated or not
// stored at all; a week never carries a partially filled day.
type DailySchedule struct {
	Breakfast           Dish `json:"breakfast" bson:"breakfast"`
	Lunch               Dish `json:"lunch" bson:"lunch"`
	Dinner              Dish `json:"dinner" bson:"dinner"`
	LunchAccompaniment  Dish `json:"lunchAccompaniment" bson:"lunchAccompaniment"`
	DinnerAccompaniment Dish `json:"dinnerAccompaniment" bson:"dinnerAccompaniment"`
}

// Slot returns the dish currently occupying the given slot.
func (d DailySchedule) Slot(slot MealSlot) Dish {
	switch slot {
	case SlotBreakfast:
		return d.Breakfast
	case SlotLunch:
		return d.Lunch
	case SlotDinner:
		return d.Dinner
	case SlotLunchAccompaniment:
		return d.LunchAccompaniment
	default:
		return d.DinnerAccompaniment
	}
}

// SetSlot replaces the dish in the given slot.
func (d *DailySchedule) SetSlot(slot MealSlot, dish Dish) {
	switch slot {
	case SlotBreakfast:
		d.Breakfast = dish
	case SlotLunch:
		d.Lunch = dish
	case SlotDinner:
		d.Dinner = dish
	case SlotLunchAccompaniment:
		d.LunchAccompaniment = dish
	case SlotDinnerAccompaniment:
		d.DinnerAccompaniment = dish
	}
}

// WeeklySchedule maps each weekday to an optional daily schedule. A nil day
// means "not yet generated". The seven keys are fixed; serialization always
// carries all of them.
type WeeklySchedule struct {
	Monday    *DailySchedule `json:"monday" bson:"monday"`
	Tuesday   *DailySchedule `json:"tuesday" bson:"tuesday"`
	Wednesday *DailySchedule `json:"wednesday" bson:"wednesday"`
	Thursday  *DailySchedule `json:"thursday" bson:"thursday"`
	Friday    *DailySchedule `json:"friday" bson:"friday"`
	Saturday  *DailySchedule `json:"saturday" bson:"saturday"`
	Sunday    *DailySchedule `json:"sunday" bson:"sunday"`
}

// Day returns the schedule stored for the given weekday, nil if absent.
func (w WeeklySchedule) Day(day Weekday) *DailySchedule {
	switch day {
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	case Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// WithDay returns a copy of the week with a single day replaced. The other
// six day pointers are carried over untouched, so callers can detect which
// days changed by pointer identity.
func (w WeeklySchedule) WithDay(day Weekday, daily *DailySchedule) WeeklySchedule {
	switch day {
	case Monday:
		w.Monday = daily
	case Tuesday:
		w.Tuesday = daily
	case Wednesday:
		w.Wednesday = daily
	case Thursday:
		w.Thursday = daily
	case Friday:
		w.Friday = daily
	case Saturday:
		w.Saturday = daily
	case Sunday:
		w.Sunday = daily
	}
	return w
}
