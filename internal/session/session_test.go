package session

import (
	"strings"
	"testing"
	"time"

	"assetdash/internal/dataset"
)

func newTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.ParseCSV(strings.NewReader("Asset ID,Building\nA1,HQ\n"))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return table
}

func TestCreateAndGet(t *testing.T) {
	store := NewStore(10, time.Minute)
	sess := store.Create("assets.csv", newTable(t))

	if sess.ID == "" {
		t.Fatal("session ID is empty")
	}
	if sess.Filename != "assets.csv" {
		t.Errorf("Filename = %q", sess.Filename)
	}
	if !sess.Schema.Has("Building") {
		t.Error("schema missed the Building column")
	}

	got, ok := store.Get(sess.ID)
	if !ok || got.ID != sess.ID {
		t.Fatalf("Get(%q) = %v, %v", sess.ID, got, ok)
	}
}

func TestGetUnknownAndEmpty(t *testing.T) {
	store := NewStore(10, time.Minute)
	if _, ok := store.Get("nope"); ok {
		t.Error("Get returned a session for an unknown ID")
	}
	if _, ok := store.Get(""); ok {
		t.Error("Get returned a session for an empty ID")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewStore(10, time.Minute)
	a := store.Create("a.csv", newTable(t))
	b := store.Create("b.csv", newTable(t))

	if a.ID == b.ID {
		t.Fatal("two sessions share an ID")
	}
	store.Delete(a.ID)
	if _, ok := store.Get(a.ID); ok {
		t.Error("deleted session still retrievable")
	}
	if _, ok := store.Get(b.ID); !ok {
		t.Error("unrelated session was dropped")
	}
}

func TestExpiry(t *testing.T) {
	store := NewStore(10, 10*time.Millisecond)
	sess := store.Create("a.csv", newTable(t))
	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Get(sess.ID); ok {
		t.Error("expired session still retrievable")
	}
	store.Create("b.csv", newTable(t))
	if removed := store.CleanExpired(); removed != 0 {
		// Get already dropped the expired entry.
		t.Errorf("CleanExpired = %d, want 0", removed)
	}
}
