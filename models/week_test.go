package models

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), "2025-01-06"},
		{"midweek maps back to monday", time.Date(2025, 1, 8, 23, 59, 0, 0, time.UTC), "2025-01-06"},
		{"sunday belongs to the preceding monday", time.Date(2025, 1, 12, 5, 0, 0, 0, time.UTC), "2025-01-06"},
		{"next monday starts a new week", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), "2025-01-13"},
		{"year boundary", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), "2024-12-30"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekKey(tc.date); got != tc.want {
				t.Fatalf("WeekKey(%s) = %s, want %s", tc.date.Format(DateLayout), got, tc.want)
			}
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-01-06 is a Monday.
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i, want := range Weekdays {
		if got := WeekdayOf(start.AddDate(0, 0, i)); got != want {
			t.Fatalf("day offset %d: got %s, want %s", i, got, want)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	if _, err := ParseWeekday("monday"); err != nil {
		t.Fatalf("parse monday: %v", err)
	}
	for _, bad := range []string{"Monday", "funday", ""} {
		if _, err := ParseWeekday(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseMealSlot(t *testing.T) {
	for _, slot := range MealSlots {
		parsed, err := ParseMealSlot(string(slot))
		if err != nil || parsed != slot {
			t.Fatalf("parse %s: got (%s, %v)", slot, parsed, err)
		}
	}
	if _, err := ParseMealSlot("brunch"); err == nil {
		t.Fatal("expected error for unknown slot")
	}
}

func TestWithDayDoesNotMutateInput(t *testing.T) {
	daily := &DailySchedule{Breakfast: Dish{Name: "Oats", Category: CategoryBreakfast}}
	var week WeeklySchedule

	updated := week.WithDay(Tuesday, daily)
	if week.Tuesday != nil {
		t.Fatal("input week was mutated")
	}
	if updated.Tuesday != daily {
		t.Fatal("returned week does not carry the new day")
	}
	for _, day := range Weekdays {
		if day == Tuesday {
			continue
		}
		if updated.Day(day) != nil {
			t.Fatalf("day %s unexpectedly set", day)
		}
	}
}

func TestCatalogCoversAllCategories(t *testing.T) {
	counts := make(map[Category]int)
	for _, dish := range Catalog {
		counts[dish.Category]++
	}
	if counts[CategoryMainCourse] != 26 || counts[CategoryBreakfast] != 14 || counts[CategoryAccompaniment] != 5 {
		t.Fatalf("unexpected catalog shape: %v", counts)
	}
}
