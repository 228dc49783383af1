package bolt

import (
	"context"
	"path/filepath"
	"testing"
)

func TestTokenStore_SaveLoadDelete(t *testing.T) {
	t.Parallel()
	db, err := Open(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	store := NewTokenStore(db, "token")

	token, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		t.Fatalf("expected empty store, got %q", token)
	}

	if err := store.Save(ctx, "abc123"); err != nil {
		t.Fatal(err)
	}
	if token, _ = store.Load(ctx); token != "abc123" {
		t.Fatalf("token = %q, want abc123", token)
	}

	if err := store.Save(ctx, "def456"); err != nil {
		t.Fatal(err)
	}
	if token, _ = store.Load(ctx); token != "def456" {
		t.Fatalf("single slot must be overwritten, got %q", token)
	}

	if err := store.Delete(ctx); err != nil {
		t.Fatal(err)
	}
	if token, _ = store.Load(ctx); token != "" {
		t.Fatalf("expected empty store after delete, got %q", token)
	}

	// Deleting an absent key is not an error.
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestTokenStore_SurvivesReopen(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "data")
	ctx := context.Background()

	db, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := NewTokenStore(db, "token").Save(ctx, "persisted"); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	token, err := NewTokenStore(db, "token").Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if token != "persisted" {
		t.Fatalf("token = %q, want persisted", token)
	}
}
