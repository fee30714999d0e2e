package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestSQLiteCache(t *testing.T, ttl time.Duration) *SQLiteCache {
	t.Helper()

	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), ttl)
	if err != nil {
		t.Fatalf("NewSQLiteCache failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSQLiteCache_GetSet(t *testing.T) {
	c := newTestSQLiteCache(t, time.Hour)

	if err := c.Set("key1", "value1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("key1")
	if !ok {
		t.Error("Get should return true for existing key")
	}
	if val != "value1" {
		t.Errorf("Get returned %q, want %q", val, "value1")
	}

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get should return false for missing key")
	}
}

func TestSQLiteCache_TTL(t *testing.T) {
	c := newTestSQLiteCache(t, time.Second)

	c.Set("key1", "value1")

	if _, ok := c.Get("key1"); !ok {
		t.Error("Value should be available immediately after set")
	}

	time.Sleep(1100 * time.Millisecond)

	if _, ok := c.Get("key1"); ok {
		t.Error("Value should be expired")
	}
}

func TestSQLiteCache_NoExpiration(t *testing.T) {
	c := newTestSQLiteCache(t, 0)

	c.Set("key1", "value1")
	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Get("key1"); !ok {
		t.Error("Value should never expire with zero TTL")
	}
}

func TestSQLiteCache_Overwrite(t *testing.T) {
	c := newTestSQLiteCache(t, 0)

	c.Set("key1", "value1")
	c.Set("key1", "value2")

	val, _ := c.Get("key1")
	if val != "value2" {
		t.Errorf("Get returned %q, want %q", val, "value2")
	}
}

func TestSQLiteCache_Persistence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")

	c1, err := NewSQLiteCache(path, 0)
	if err != nil {
		t.Fatalf("NewSQLiteCache failed: %v", err)
	}
	c1.Set("key1", "value1")
	c1.Close()

	// Reopen: entries survive the process boundary
	c2, err := NewSQLiteCache(path, 0)
	if err != nil {
		t.Fatalf("reopening cache failed: %v", err)
	}
	defer c2.Close()

	val, ok := c2.Get("key1")
	if !ok || val != "value1" {
		t.Errorf("entry did not survive reopen: %q (ok=%v)", val, ok)
	}
}

func TestSQLiteCache_Stats(t *testing.T) {
	c := newTestSQLiteCache(t, 0)

	c.Set("key1", "value1")
	c.Get("key1")        // hit
	c.Get("nonexistent") // miss

	stats, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
}

func TestSQLiteCache_Clear(t *testing.T) {
	c := newTestSQLiteCache(t, 0)

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	if err := c.Clear(false); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	stats, _ := c.Stats()
	if stats.Entries != 0 {
		t.Errorf("Entries = %d after Clear, want 0", stats.Entries)
	}
}

func TestSQLiteCache_Entries(t *testing.T) {
	c := newTestSQLiteCache(t, 0)

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	entries, err := c.Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Entries() = %d, want 2", len(entries))
	}
	if entries["key1"] != "value1" {
		t.Errorf("unexpected entries: %v", entries)
	}
}
