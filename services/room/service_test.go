package room

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	roomRepo "mealroom/database/repository/room"
	"mealroom/models"
)

// Compile-time interface check.
var _ roomRepo.RoomRepository = (*memoryRoomRepo)(nil)

// memoryRoomRepo is an in-memory RoomRepository with the same uniqueness
// semantics as the Mongo implementation.
type memoryRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]models.Room

	// rejectNext forces ErrCodeTaken for the next n creates.
	rejectNext int
}

func newMemoryRoomRepo() *memoryRoomRepo {
	return &memoryRoomRepo{rooms: make(map[string]models.Room)}
}

func (r *memoryRoomRepo) Create(ctx context.Context, room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rejectNext > 0 {
		r.rejectNext--
		return fmt.Errorf("%w: %s", roomRepo.ErrCodeTaken, room.Code)
	}
	if _, exists := r.rooms[room.Code]; exists {
		return fmt.Errorf("%w: %s", roomRepo.ErrCodeTaken, room.Code)
	}
	r.rooms[room.Code] = *room
	return nil
}

func (r *memoryRoomRepo) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[code]
	if !ok {
		return nil, roomRepo.ErrNotFound
	}
	return &room, nil
}

func newTestService(repo roomRepo.RoomRepository) *DefaultRoomService {
	return &DefaultRoomService{
		Repo:  repo,
		Slugs: NewSlugGeneratorWithRand(rand.New(rand.NewSource(1))),
	}
}

func TestCreateRoomRoundTrip(t *testing.T) {
	svc := newTestService(newMemoryRoomRepo())
	ctx := context.Background()

	created, err := svc.CreateRoom(ctx, "Flat 4B")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if created.Code == "" || created.ID == "" {
		t.Fatalf("room missing identifiers: %+v", created)
	}
	if created.Code != strings.ToLower(created.Code) {
		t.Fatalf("code %q is not lowercase", created.Code)
	}

	got, err := svc.GetRoom(ctx, created.Code)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if got.Code != created.Code || got.Name != "Flat 4B" {
		t.Fatalf("got %+v, want code=%s name=Flat 4B", got, created.Code)
	}
}

func TestCreateRoomDistinctCodes(t *testing.T) {
	svc := newTestService(newMemoryRoomRepo())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		created, err := svc.CreateRoom(ctx, "Shared Kitchen")
		if err != nil {
			t.Fatalf("create room #%d: %v", i, err)
		}
		if seen[created.Code] {
			t.Fatalf("code %q handed out twice", created.Code)
		}
		seen[created.Code] = true
	}
}

func TestGetRoomCaseInsensitive(t *testing.T) {
	svc := newTestService(newMemoryRoomRepo())
	ctx := context.Background()

	created, err := svc.CreateRoom(ctx, "Hostel Wing C")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	got, err := svc.GetRoom(ctx, strings.ToUpper(created.Code))
	if err != nil {
		t.Fatalf("get room with uppercase code: %v", err)
	}
	if got.Code != created.Code {
		t.Fatalf("got code %q, want %q", got.Code, created.Code)
	}
}

func TestGetRoomNotFound(t *testing.T) {
	svc := newTestService(newMemoryRoomRepo())

	_, err := svc.GetRoom(context.Background(), "no-such-room-11")
	if !errors.Is(err, roomRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRoomRetriesOnCollision(t *testing.T) {
	repo := newMemoryRoomRepo()
	repo.rejectNext = 2
	svc := newTestService(repo)

	created, err := svc.CreateRoom(context.Background(), "Retry Room")
	if err != nil {
		t.Fatalf("create room should survive two collisions: %v", err)
	}
	if created.Code == "" {
		t.Fatal("created room has no code")
	}
}

func TestCreateRoomExhaustsRetries(t *testing.T) {
	repo := newMemoryRoomRepo()
	repo.rejectNext = createAttempts
	svc := newTestService(repo)

	_, err := svc.CreateRoom(context.Background(), "Unlucky Room")
	if !errors.Is(err, ErrCreationExhausted) {
		t.Fatalf("expected ErrCreationExhausted, got %v", err)
	}
}

func TestCreateRoomRejectsEmptyName(t *testing.T) {
	svc := newTestService(newMemoryRoomRepo())

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := svc.CreateRoom(context.Background(), name); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("name %q: expected ErrEmptyName, got %v", name, err)
		}
	}
}

func TestSlugFormat(t *testing.T) {
	g := NewSlugGeneratorWithRand(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		slug := g.Generate()
		parts := strings.Split(slug, "-")
		if len(parts) != 3 {
			t.Fatalf("slug %q: want three hyphen-separated parts", slug)
		}
		if slug != strings.ToLower(slug) {
			t.Fatalf("slug %q is not lowercase", slug)
		}
	}
}
