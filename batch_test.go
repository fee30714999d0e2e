package convertirse

import (
	"context"
	"testing"
	"time"
)

func batchRequests() []ConversionRequest {
	return []ConversionRequest{
		{SourceLang: "Python", TargetLang: "Go", Code: "def add(a, b):\n    return a + b"},
		{SourceLang: "Python", TargetLang: "Go", Code: "def sub(a, b):\n    return a - b"},
		{SourceLang: "Ruby", TargetLang: "Rust", Code: "puts [1, 2, 3].sum"},
	}
}

func TestParallelFingerprintLookup(t *testing.T) {
	store := newMockCache()
	reqs := batchRequests()

	// Pre-populate one entry
	store.Set(Fingerprint(reqs[1]), "cached output")

	hits, misses := ParallelFingerprintLookup(store, reqs, nil)

	if len(hits) != 1 {
		t.Errorf("hits = %d, want 1", len(hits))
	}
	if got := hits[Fingerprint(reqs[1])]; got != "cached output" {
		t.Errorf("hit value = %q, want %q", got, "cached output")
	}
	if len(misses) != 2 {
		t.Errorf("misses = %d, want 2", len(misses))
	}
}

func TestParallelFingerprintLookup_Dedupes(t *testing.T) {
	reqs := batchRequests()
	reqs = append(reqs, reqs[0]) // duplicate triple

	hits, misses := ParallelFingerprintLookup(newMockCache(), reqs, nil)

	if len(hits) != 0 {
		t.Errorf("hits = %d, want 0", len(hits))
	}
	if len(misses) != 3 {
		t.Errorf("misses = %d, want 3 (duplicates collapsed)", len(misses))
	}
}

func TestParallelFingerprintLookup_NilCache(t *testing.T) {
	reqs := batchRequests()
	hits, misses := ParallelFingerprintLookup(nil, reqs, nil)

	if len(hits) != 0 {
		t.Errorf("hits = %d, want 0", len(hits))
	}
	if len(misses) != len(reqs) {
		t.Errorf("misses = %d, want %d", len(misses), len(reqs))
	}
}

func TestConvertBatch(t *testing.T) {
	p := newMockProvider("converted")
	store := newMockCache()
	c := NewConverter(p, WithCache(store))

	reqs := batchRequests()

	// Pre-populate one entry
	store.Set(Fingerprint(reqs[0]), "previously converted")

	results, err := c.ConvertBatch(context.Background(), reqs)
	if err != nil {
		t.Fatalf("ConvertBatch failed: %v", err)
	}

	if len(results) != len(reqs) {
		t.Fatalf("results = %d, want %d", len(results), len(reqs))
	}

	if !results[0].Cached || results[0].Output != "previously converted" {
		t.Errorf("first result should come from cache, got %+v", results[0])
	}
	for i := 1; i < len(results); i++ {
		if results[i].Cached {
			t.Errorf("result %d should be a miss", i)
		}
		if results[i].Output != "converted" {
			t.Errorf("result %d output = %q", i, results[i].Output)
		}
	}

	if p.calls() != 2 {
		t.Errorf("provider called %d times, want 2", p.calls())
	}
}

func TestConvertBatch_DuplicateRequests(t *testing.T) {
	p := newMockProvider("converted")
	p.delay = 20 * time.Millisecond // keeps duplicates in the same flight
	c := NewConverter(p, WithCache(newMockCache()))

	req := batchRequests()[0]
	results, err := c.ConvertBatch(context.Background(), []ConversionRequest{req, req, req})
	if err != nil {
		t.Fatalf("ConvertBatch failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, r := range results {
		if r.Output != "converted" {
			t.Errorf("result %d output = %q", i, r.Output)
		}
	}

	if p.calls() != 1 {
		t.Errorf("duplicate requests should share one provider call, got %d", p.calls())
	}
}

func TestConvertBatch_ValidatesUpFront(t *testing.T) {
	p := newMockProvider("converted")
	c := NewConverter(p)

	reqs := batchRequests()
	reqs = append(reqs, ConversionRequest{SourceLang: "Python", TargetLang: "Go", Code: "x=1"})

	_, err := c.ConvertBatch(context.Background(), reqs)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if p.calls() != 0 {
		t.Errorf("no provider call should be made when validation fails, got %d", p.calls())
	}
}
