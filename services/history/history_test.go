package history

import (
	"context"
	"testing"
	"time"

	"mealroom/models"
)

func visit(code string, age time.Duration) models.RoomVisit {
	return models.RoomVisit{
		Code:        code,
		Name:        "Room " + code,
		LastVisited: time.Now().Add(-age),
	}
}

func TestPushNewestFirst(t *testing.T) {
	visits := []models.RoomVisit{visit("a", time.Hour), visit("b", 2*time.Hour)}

	updated := push(visits, visit("c", 0))
	if len(updated) != 3 {
		t.Fatalf("expected 3 visits, got %d", len(updated))
	}
	if updated[0].Code != "c" || updated[1].Code != "a" || updated[2].Code != "b" {
		t.Fatalf("wrong order: %v", codes(updated))
	}
}

func TestPushDeduplicatesByCode(t *testing.T) {
	visits := []models.RoomVisit{visit("a", time.Hour), visit("b", 2*time.Hour)}

	updated := push(visits, visit("b", 0))
	if len(updated) != 2 {
		t.Fatalf("expected 2 visits after revisit, got %d", len(updated))
	}
	if updated[0].Code != "b" || updated[1].Code != "a" {
		t.Fatalf("wrong order after revisit: %v", codes(updated))
	}
}

func TestPushEvictsOldestBeyondCapacity(t *testing.T) {
	visits := []models.RoomVisit{
		visit("a", time.Hour),
		visit("b", 2*time.Hour),
		visit("c", 3*time.Hour),
	}

	updated := push(visits, visit("d", 0))
	if len(updated) != Capacity {
		t.Fatalf("expected %d visits, got %d", Capacity, len(updated))
	}
	if updated[0].Code != "d" || updated[2].Code != "b" {
		t.Fatalf("wrong eviction result: %v", codes(updated))
	}
	for _, v := range updated {
		if v.Code == "c" {
			t.Fatal("oldest visit was not evicted")
		}
	}
}

func TestServiceTouchAndVisits(t *testing.T) {
	svc := &DefaultHistoryService{Store: NewMemoryStore()}
	ctx := context.Background()

	rooms := []models.Room{
		{Code: "brave-tiger-42", Name: "Flat 4B"},
		{Code: "quiet-owl-77", Name: "Hostel C"},
		{Code: "sunny-fox-11", Name: "Office"},
		{Code: "merry-swan-28", Name: "Home"},
	}
	for _, r := range rooms {
		if err := svc.Touch(ctx, "device-1", r); err != nil {
			t.Fatalf("touch %s: %v", r.Code, err)
		}
	}

	visits, err := svc.Visits(ctx, "device-1")
	if err != nil {
		t.Fatalf("visits: %v", err)
	}
	if len(visits) != Capacity {
		t.Fatalf("expected %d visits, got %d", Capacity, len(visits))
	}
	if visits[0].Code != "merry-swan-28" {
		t.Fatalf("newest visit is %s", visits[0].Code)
	}
	if visits[0].Name != "Home" {
		t.Fatalf("visit lost room name: %+v", visits[0])
	}

	// Other devices are isolated.
	other, err := svc.Visits(ctx, "device-2")
	if err != nil {
		t.Fatalf("visits for fresh device: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("fresh device has %d visits", len(other))
	}
}

func TestServiceClear(t *testing.T) {
	svc := &DefaultHistoryService{Store: NewMemoryStore()}
	ctx := context.Background()

	if err := svc.Touch(ctx, "device-1", models.Room{Code: "brave-tiger-42", Name: "Flat"}); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := svc.Clear(ctx, "device-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	visits, err := svc.Visits(ctx, "device-1")
	if err != nil {
		t.Fatalf("visits: %v", err)
	}
	if len(visits) != 0 {
		t.Fatalf("expected empty history after clear, got %v", codes(visits))
	}
}

func codes(visits []models.RoomVisit) []string {
	out := make([]string, len(visits))
	for i, v := range visits {
		out[i] = v.Code
	}
	return out
}
