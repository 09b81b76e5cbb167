package member

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/member"
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

// TestMemberSaveAndGet tests the save/get round trip including the date column.
func TestMemberSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	m := domain.Member{
		ID:             "m1",
		FirstName:      "John",
		LastName:       "Smith",
		Email:          "john.smith@email.com",
		Phone:          "+1 (555) 123-4567",
		JoinDate:       time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		MembershipType: domain.TypePremium,
		Status:         domain.StatusActive,
	}
	if err := store.Save(ctx, m); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "m1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != m {
		t.Fatalf("got %+v want %+v", got, m)
	}
}

// TestMemberGetMissing tests the not-found path.
func TestMemberGetMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetByID(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing member")
	}
}

func seedMember(t *testing.T, store *SQLiteStore, id, status string) {
	t.Helper()
	err := store.Save(context.Background(), domain.Member{
		ID:             id,
		FirstName:      "F" + id,
		LastName:       "L" + id,
		Email:          id + "@email.com",
		JoinDate:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		MembershipType: domain.TypeBasic,
		Status:         status,
	})
	if err != nil {
		t.Fatalf("seed %s failed: %v", id, err)
	}
}

// TestMemberListStatusFilter verifies the status filter and display order.
func TestMemberListStatusFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMember(t, store, "m1", domain.StatusActive)
	seedMember(t, store, "m2", domain.StatusInactive)
	seedMember(t, store, "m3", domain.StatusActive)

	all, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all=%d want 3", len(all))
	}
	// Newest saves first.
	if all[0].ID != "m3" || all[2].ID != "m1" {
		t.Fatalf("order=%s..%s want m3..m1", all[0].ID, all[2].ID)
	}

	active, err := store.List(ctx, ListFilter{Status: domain.StatusActive})
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active=%d want 2", len(active))
	}
	for _, m := range active {
		if m.Status != domain.StatusActive {
			t.Fatalf("filter leaked status=%q", m.Status)
		}
	}
}

// TestMemberCountWithFilter tests filtered counting.
func TestMemberCountWithFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMember(t, store, "m1", domain.StatusActive)
	seedMember(t, store, "m2", domain.StatusPending)

	n, err := store.Count(ctx, ListFilter{})
	if err != nil || n != 2 {
		t.Fatalf("Count=%d,%v want 2,nil", n, err)
	}
	n, err = store.Count(ctx, ListFilter{Status: domain.StatusPending})
	if err != nil || n != 1 {
		t.Fatalf("pending Count=%d,%v want 1,nil", n, err)
	}
}
