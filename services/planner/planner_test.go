package planner

import (
	"errors"
	"math/rand"
	"testing"

	"mealroom/models"
)

func newTestPlanner() *Planner {
	return NewWithRand(models.Catalog, rand.New(rand.NewSource(1)))
}

func TestPickReturnsRequestedCategory(t *testing.T) {
	p := newTestPlanner()

	for _, category := range []models.Category{
		models.CategoryBreakfast,
		models.CategoryMainCourse,
		models.CategoryAccompaniment,
	} {
		for i := 0; i < 50; i++ {
			dish, err := p.Pick(category)
			if err != nil {
				t.Fatalf("pick %s: %v", category, err)
			}
			if dish.Category != category {
				t.Fatalf("pick %s returned %q of category %s", category, dish.Name, dish.Category)
			}
		}
	}
}

func TestPickEmptyCategory(t *testing.T) {
	onlyMains := []models.Dish{{Name: "Dal Tadka", Category: models.CategoryMainCourse}}
	p := NewWithRand(onlyMains, rand.New(rand.NewSource(1)))

	_, err := p.Pick(models.CategoryBreakfast)
	if !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

func TestGenerateDailySlotCategories(t *testing.T) {
	p := newTestPlanner()

	daily, err := p.GenerateDaily()
	if err != nil {
		t.Fatalf("generate daily: %v", err)
	}

	for _, slot := range models.MealSlots {
		dish := daily.Slot(slot)
		if dish.Name == "" {
			t.Fatalf("slot %s is empty", slot)
		}
		if dish.Category != slot.Category() {
			t.Fatalf("slot %s holds %q of category %s, want %s", slot, dish.Name, dish.Category, slot.Category())
		}
	}
}

// Breakfast slots must only ever draw from the breakfast dishes, across many
// generations (14 breakfasts vs 31 dishes in the other categories).
func TestGenerateDailyBreakfastNeverLeaks(t *testing.T) {
	p := newTestPlanner()

	breakfasts := make(map[string]bool)
	for _, dish := range models.Catalog {
		if dish.Category == models.CategoryBreakfast {
			breakfasts[dish.Name] = true
		}
	}
	if len(breakfasts) != 14 {
		t.Fatalf("catalog has %d breakfast dishes, want 14", len(breakfasts))
	}

	for i := 0; i < 1000; i++ {
		daily, err := p.GenerateDaily()
		if err != nil {
			t.Fatalf("generate daily #%d: %v", i, err)
		}
		if !breakfasts[daily.Breakfast.Name] {
			t.Fatalf("generation #%d put non-breakfast dish %q in the breakfast slot", i, daily.Breakfast.Name)
		}
	}
}

func TestGenerateWeeklyPopulatesAllDays(t *testing.T) {
	p := newTestPlanner()

	week, err := p.GenerateWeekly()
	if err != nil {
		t.Fatalf("generate weekly: %v", err)
	}

	for _, day := range models.Weekdays {
		daily := week.Day(day)
		if daily == nil {
			t.Fatalf("day %s not generated", day)
		}
		for _, slot := range models.MealSlots {
			if daily.Slot(slot).Name == "" {
				t.Fatalf("day %s slot %s is empty", day, slot)
			}
		}
	}
}

func TestRegenerateDayTouchesOnlyTarget(t *testing.T) {
	p := newTestPlanner()

	week, err := p.GenerateWeekly()
	if err != nil {
		t.Fatalf("generate weekly: %v", err)
	}

	updated, err := p.RegenerateDay(week, models.Wednesday)
	if err != nil {
		t.Fatalf("regenerate day: %v", err)
	}

	if updated.Wednesday == week.Wednesday {
		t.Fatal("wednesday was not replaced")
	}
	for _, day := range models.Weekdays {
		if day == models.Wednesday {
			continue
		}
		if updated.Day(day) != week.Day(day) {
			t.Fatalf("day %s lost pointer identity", day)
		}
	}
}

func TestRegenerateSlotTouchesOnlyTarget(t *testing.T) {
	p := newTestPlanner()

	week, err := p.GenerateWeekly()
	if err != nil {
		t.Fatalf("generate weekly: %v", err)
	}

	before := *week.Day(models.Friday)
	updated, err := p.RegenerateSlot(week, models.Friday, models.SlotDinner)
	if err != nil {
		t.Fatalf("regenerate slot: %v", err)
	}

	after := updated.Day(models.Friday)
	if after == week.Day(models.Friday) {
		t.Fatal("friday should be a fresh value after slot regeneration")
	}
	if after.Dinner.Category != models.CategoryMainCourse {
		t.Fatalf("regenerated dinner has category %s", after.Dinner.Category)
	}
	for _, slot := range models.MealSlots {
		if slot == models.SlotDinner {
			continue
		}
		if after.Slot(slot) != before.Slot(slot) {
			t.Fatalf("slot %s changed during dinner regeneration", slot)
		}
	}
	for _, day := range models.Weekdays {
		if day == models.Friday {
			continue
		}
		if updated.Day(day) != week.Day(day) {
			t.Fatalf("day %s lost pointer identity", day)
		}
	}
}

func TestRegenerateSlotOnMissingDay(t *testing.T) {
	p := newTestPlanner()

	var empty models.WeeklySchedule
	_, err := p.RegenerateSlot(empty, models.Monday, models.SlotLunch)
	if !errors.Is(err, ErrDayNotGenerated) {
		t.Fatalf("expected ErrDayNotGenerated, got %v", err)
	}
}

func TestSlotCategoryMapping(t *testing.T) {
	cases := []struct {
		slot models.MealSlot
		want models.Category
	}{
		{models.SlotBreakfast, models.CategoryBreakfast},
		{models.SlotLunch, models.CategoryMainCourse},
		{models.SlotDinner, models.CategoryMainCourse},
		{models.SlotLunchAccompaniment, models.CategoryAccompaniment},
		{models.SlotDinnerAccompaniment, models.CategoryAccompaniment},
	}
	for _, tc := range cases {
		if got := tc.slot.Category(); got != tc.want {
			t.Errorf("slot %s maps to %s, want %s", tc.slot, got, tc.want)
		}
	}
}
