package embedding

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
)

type fakeCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	gets  int
	sets  int
	fail  bool
	lastT time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.fail {
		return false, context.DeadlineExceeded
	}
	b, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.lastT = ttl
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

type stubEmbedder struct {
	mu    sync.Mutex
	dim   int
	vec   []float64
	calls int
	batch int
}

func (s *stubEmbedder) Embed(context.Context, string) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]float64, len(s.vec))
	copy(out, s.vec)
	return out
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) [][]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch++
	out := make([][]float64, len(texts))
	for i := range texts {
		v := make([]float64, len(s.vec))
		copy(v, s.vec)
		out[i] = v
	}
	return out
}

func (s *stubEmbedder) Dimension() int             { return s.dim }
func (s *stubEmbedder) Ready(context.Context) bool { return true }

func TestCacheKey_StableAndModelScoped(t *testing.T) {
	a := CacheKey("model-a", "hello")
	b := CacheKey("model-a", "hello")
	if a != b {
		t.Fatalf("key must be deterministic: %q vs %q", a, b)
	}
	if CacheKey("model-b", "hello") == a {
		t.Fatalf("different models must produce different keys")
	}
	if CacheKey("model-a", "other") == a {
		t.Fatalf("different texts must produce different keys")
	}
	if len(a) != len("embed:")+64 {
		t.Fatalf("unexpected key shape %q", a)
	}
}

func TestCachedEmbed_MissThenHit(t *testing.T) {
	cache := newFakeCache()
	stub := &stubEmbedder{dim: 2, vec: []float64{0.6, 0.8}}
	c := NewCached(stub, cache, "m", time.Hour, nil)

	first := c.Embed(context.Background(), "hello")
	if first[0] != 0.6 {
		t.Fatalf("unexpected vector %v", first)
	}
	if stub.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", stub.calls)
	}

	second := c.Embed(context.Background(), "hello")
	if second[0] != 0.6 {
		t.Fatalf("unexpected cached vector %v", second)
	}
	if stub.calls != 1 {
		t.Fatalf("cache hit must not call upstream again, got %d calls", stub.calls)
	}
	if cache.lastT != time.Hour {
		t.Fatalf("expected configured TTL, got %v", cache.lastT)
	}
}

func TestCachedEmbed_ZeroVectorNotStored(t *testing.T) {
	cache := newFakeCache()
	stub := &stubEmbedder{dim: 2, vec: []float64{0, 0}}
	c := NewCached(stub, cache, "m", time.Hour, nil)

	c.Embed(context.Background(), "hello")
	if cache.sets != 0 {
		t.Fatalf("zero vector must not be cached")
	}

	c.Embed(context.Background(), "hello")
	if stub.calls != 2 {
		t.Fatalf("expected retry on the next call, got %d upstream calls", stub.calls)
	}
}

func TestCachedEmbed_CacheErrorFallsThrough(t *testing.T) {
	cache := newFakeCache()
	cache.fail = true
	stub := &stubEmbedder{dim: 2, vec: []float64{1, 0}}
	c := NewCached(stub, cache, "m", time.Hour, nil)

	got := c.Embed(context.Background(), "hello")
	if got[0] != 1 {
		t.Fatalf("cache failure must not break embedding, got %v", got)
	}
}

func TestCachedEmbedBatch_MixedHitsAndMisses(t *testing.T) {
	cache := newFakeCache()
	stub := &stubEmbedder{dim: 2, vec: []float64{0, 1}}
	c := NewCached(stub, cache, "m", time.Hour, nil)

	// Prime one entry.
	c.Embed(context.Background(), "warm")
	stubCallsBefore := stub.calls

	got := c.EmbedBatch(context.Background(), []string{"cold-a", "warm", "cold-b"})
	if len(got) != 3 {
		t.Fatalf("expected 3 vectors, got %d", len(got))
	}
	for i, v := range got {
		if v[1] != 1 {
			t.Fatalf("row %d wrong: %v", i, v)
		}
	}
	if stub.calls != stubCallsBefore {
		t.Fatalf("batch path must not use single embed")
	}
	if stub.batch != 1 {
		t.Fatalf("expected exactly one upstream batch for the misses, got %d", stub.batch)
	}
}

func TestCachedPassthroughs(t *testing.T) {
	stub := &stubEmbedder{dim: 7, vec: make([]float64, 7)}
	c := NewCached(stub, newFakeCache(), "m", time.Hour, nil)
	if c.Dimension() != 7 {
		t.Fatalf("dimension must pass through")
	}
	if !c.Ready(context.Background()) {
		t.Fatalf("readiness must pass through")
	}
}
