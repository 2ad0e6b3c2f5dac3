package search

import (
	"log/slog"
	"time"
)

// DefaultDelay is the debounce window used when none is configured.
const DefaultDelay = 300 * time.Millisecond

// Option configures an Engine.
type Option[T any] func(*Engine[T])

// WithDelay sets the debounce window. Non-positive values are ignored.
func WithDelay[T any](d time.Duration) Option[T] {
	return func(e *Engine[T]) {
		if d > 0 {
			e.delay = d
		}
	}
}

// WithFields sets the fields used by local filtering.
func WithFields[T any](fields ...Field[T]) Option[T] {
	return func(e *Engine[T]) {
		e.fields = append(e.fields, fields...)
	}
}

// WithSource sets the initial collection.
func WithSource[T any](data []T) Option[T] {
	return func(e *Engine[T]) {
		e.source = data
	}
}

// WithSearcher delegates searching to an external capability instead of
// filtering the source locally.
func WithSearcher[T any](s Searcher[T]) Option[T] {
	return func(e *Engine[T]) {
		e.searcher = s
	}
}

// WithNormalizer replaces the text normalization used by local filtering.
func WithNormalizer[T any](n Normalizer) Option[T] {
	return func(e *Engine[T]) {
		if n != nil {
			e.normalize = n
		}
	}
}

// WithTimeout bounds every external search. Zero means no bound.
func WithTimeout[T any](d time.Duration) Option[T] {
	return func(e *Engine[T]) {
		if d >= 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(e *Engine[T]) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConfig applies an env-loaded Config.
func WithConfig[T any](cfg Config) Option[T] {
	return func(e *Engine[T]) {
		WithDelay[T](cfg.Delay)(e)
		WithTimeout[T](cfg.Timeout)(e)
		if cfg.FoldDiacritics {
			e.normalize = FoldDiacritics
		}
	}
}
