// Package embedding turns text into vectors for semantic similarity and
// caches accomplishment vectors by content hash.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/logger"
)

// batchConcurrency bounds parallel calls to the model.
const batchConcurrency = 4

// Model produces a vector for a piece of text. llm.GeminiClient and
// HashingModel both satisfy it.
type Model interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Item is one text to embed. ID keys the cache; items without an ID are not cached.
type Item struct {
	ID   string
	Text string
}

// Embedder wraps a Model with a content-hash cache.
type Embedder struct {
	model Model
	cache *Cache
	log   *zap.Logger
}

// NewEmbedder creates an Embedder. A nil model uses the hashing model and a
// nil cache gets a fresh one.
func NewEmbedder(model Model, cache *Cache, log *zap.Logger) *Embedder {
	if model == nil {
		model = NewHashingModel(DefaultDimensions)
	}
	if cache == nil {
		cache = NewCache()
	}
	return &Embedder{model: model, cache: cache, log: logger.OrNop(log).Named("embedder")}
}

// Cache returns the embedder's cache.
func (e *Embedder) Cache() *Cache {
	return e.cache
}

// Embed returns the vector for a single text without caching.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.model.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	return vec, nil
}

// EmbedBatch returns one vector per item, computing misses concurrently.
// Failures are reported per item and never abort the batch. Blank text
// yields a nil vector and no error.
func (e *Embedder) EmbedBatch(ctx context.Context, items []Item) ([][]float32, []error) {
	vecs := make([][]float32, len(items))
	errs := make([]error, len(items))
	if len(items) == 0 {
		return vecs, errs
	}

	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	for i, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			continue
		}
		hash := ContentHash(item.Text)
		if item.ID != "" {
			if vec, ok := e.cache.Get(item.ID, hash); ok {
				vecs[i] = vec
				continue
			}
		}

		g.Go(func() error {
			vec, err := e.model.Embed(ctx, item.Text)
			if err != nil {
				errs[i] = fmt.Errorf("embedding %q: %w", item.ID, err)
				return nil
			}
			vecs[i] = vec
			if item.ID != "" {
				e.cache.Put(item.ID, hash, vec)
			}
			return nil
		})
	}
	_ = g.Wait()

	hits, misses := e.cache.Stats()
	e.log.Debug("embedded batch",
		zap.Int("items", len(items)),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses))
	return vecs, errs
}
