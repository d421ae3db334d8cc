// Package cache remembers solved boards. Two boards with the same letters in a
// different order share one entry.
package cache

import (
	"slices"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/milden6/wordpool"
	"github.com/milden6/wordpool/internal/metrics"
)

// Solver is the part of a tree the cache sits in front of.
type Solver interface {
	Solve(letters string) ([]string, error)
}

type Cache struct {
	inner Solver
	outer *otter.Cache[string, []string]
}

var _ Solver = (*Cache)(nil)

// New caches up to size boards, each for ttl after it was solved.
func New(inner Solver, size int, ttl time.Duration) *Cache {
	return &Cache{
		inner: inner,
		outer: otter.Must(&otter.Options[string, []string]{
			MaximumSize:      size,
			ExpiryCalculator: otter.ExpiryWriting[string, []string](ttl),
		}),
	}
}

// Solve returns the cached result for letters, solving on a miss. Invalid
// boards are never cached. The returned slice belongs to the caller.
func (c *Cache) Solve(letters string) ([]string, error) {
	if err := wordpool.Validate(letters); err != nil {
		return nil, err
	}
	key := Key(letters)

	if words, ok := c.outer.GetIfPresent(key); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return slices.Clone(words), nil
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	words, err := c.inner.Solve(key)
	if err != nil {
		return nil, err
	}
	c.outer.Set(key, words)
	return slices.Clone(words), nil
}

// Len returns roughly how many boards are cached.
func (c *Cache) Len() int {
	return c.outer.EstimatedSize()
}

func (c *Cache) Clear() {
	c.outer.InvalidateAll()
}

// Key is the canonical form of a board: its letters sorted.
func Key(letters string) string {
	b := []byte(letters)
	slices.Sort(b)
	return string(b)
}
