package sport

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/sport"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return NewSQLiteStore(db)
}

// TestSportSaveAndGet tests the save/get round trip.
func TestSportSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	s := domain.Sport{
		ID:             "s1",
		Name:           "Tennis",
		Description:    "Professional tennis coaching",
		Instructor:     "Coach Sarah Johnson",
		Schedule:       "Mon, Wed, Fri 6:00 PM - 8:00 PM",
		Capacity:       20,
		CurrentMembers: 15,
		Price:          120,
	}
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "s1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != s {
		t.Fatalf("got %+v want %+v", got, s)
	}
}

// TestSportGetMissing tests the not-found path.
func TestSportGetMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetByID(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing sport")
	}
}

// TestSportListNewestFirst verifies new saves go to the head of the list.
func TestSportListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s3"} {
		if err := store.Save(ctx, domain.Sport{ID: id, Name: "Sport " + id, Capacity: 10}); err != nil {
			t.Fatalf("Save %s failed: %v", id, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len=%d want 3", len(list))
	}
	if list[0].ID != "s3" || list[1].ID != "s2" || list[2].ID != "s1" {
		t.Fatalf("order=%s,%s,%s want s3,s2,s1", list[0].ID, list[1].ID, list[2].ID)
	}
}

// TestSportUpdateKeepsPosition verifies an update does not reorder the list.
func TestSportUpdateKeepsPosition(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Save(ctx, domain.Sport{ID: "s1", Name: "Tennis", Capacity: 10})
	store.Save(ctx, domain.Sport{ID: "s2", Name: "Swimming", Capacity: 10})
	if err := store.Save(ctx, domain.Sport{ID: "s1", Name: "Tennis Pro", Capacity: 25}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len=%d want 2", len(list))
	}
	if list[1].ID != "s1" || list[1].Name != "Tennis Pro" || list[1].Capacity != 25 {
		t.Fatalf("updated entry=%+v want Tennis Pro at original position", list[1])
	}
}

// TestSportCount tests the count query.
func TestSportCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("Count=%d,%v want 0,nil", n, err)
	}
	store.Save(ctx, domain.Sport{ID: "s1", Name: "Tennis", Capacity: 10})
	n, err = store.Count(ctx)
	if err != nil || n != 1 {
		t.Fatalf("Count=%d,%v want 1,nil", n, err)
	}
}
