package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"
)

// VectorCache is the subset of the cache layer the embedder needs.
type VectorCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Cached wraps an Embedder with a vector cache. Zero vectors are never
// stored so a transient oracle failure does not stick for the TTL.
type Cached struct {
	next   Embedder
	cache  VectorCache
	ttl    time.Duration
	model  string
	logger *log.Logger
}

func NewCached(next Embedder, cache VectorCache, model string, ttl time.Duration, logger *log.Logger) *Cached {
	if logger == nil {
		logger = log.Default()
	}
	return &Cached{next: next, cache: cache, ttl: ttl, model: model, logger: logger}
}

// CacheKey is stable across processes: hash of model identity plus the
// exact text.
func CacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return "embed:" + hex.EncodeToString(sum[:])
}

func (c *Cached) Dimension() int {
	return c.next.Dimension()
}

func (c *Cached) Ready(ctx context.Context) bool {
	return c.next.Ready(ctx)
}

func (c *Cached) Embed(ctx context.Context, text string) []float64 {
	key := CacheKey(c.model, text)

	var vec []float64
	hit, err := c.cache.GetJSON(ctx, key, &vec)
	if err != nil {
		c.logger.Printf("[Embedding] cache read error, falling through: %v", err)
	}
	if hit && len(vec) == c.next.Dimension() {
		return vec
	}

	vec = c.next.Embed(ctx, text)
	c.store(ctx, key, vec)
	return vec
}

func (c *Cached) EmbedBatch(ctx context.Context, texts []string) [][]float64 {
	out := make([][]float64, len(texts))
	missIdx := make([]int, 0, len(texts))
	missTexts := make([]string, 0, len(texts))

	for i, t := range texts {
		key := CacheKey(c.model, t)
		var vec []float64
		hit, err := c.cache.GetJSON(ctx, key, &vec)
		if err != nil {
			c.logger.Printf("[Embedding] cache read error, falling through: %v", err)
		}
		if hit && len(vec) == c.next.Dimension() {
			out[i] = vec
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, t)
	}

	if len(missTexts) == 0 {
		return out
	}

	fresh := c.next.EmbedBatch(ctx, missTexts)
	for n, i := range missIdx {
		out[i] = fresh[n]
		c.store(ctx, CacheKey(c.model, texts[i]), fresh[n])
	}
	return out
}

func (c *Cached) store(ctx context.Context, key string, vec []float64) {
	if isZero(vec) {
		return
	}
	if err := c.cache.SetJSON(ctx, key, vec, c.ttl); err != nil {
		c.logger.Printf("[Embedding] cache write error: %v", err)
	}
}

func isZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}
