package search

import (
	"context"
	"strings"
)

// ResultCache stores search results keyed by term.
// *cache.LRUCache[string, []T] satisfies it.
type ResultCache[T any] interface {
	Get(key string) ([]T, bool)
	Put(key string, value []T) ([]T, bool)
}

// Memoize caches successful results of s per normalized term.
// Failed searches are not cached, so the next keystroke retries.
func Memoize[T any](s Searcher[T], c ResultCache[T]) Searcher[T] {
	return func(ctx context.Context, term string) ([]T, error) {
		key := FoldCase(strings.TrimSpace(term))
		if results, ok := c.Get(key); ok {
			return results, nil
		}
		results, err := s(ctx, term)
		if err != nil {
			return nil, err
		}
		c.Put(key, results)
		return results, nil
	}
}
