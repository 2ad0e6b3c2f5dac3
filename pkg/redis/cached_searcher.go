package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/clinickit/pkg/logger"
	"github.com/dmitrymomot/clinickit/pkg/search"
)

// CacheOption configures CachedSearcher.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// WithPrefix namespaces cache keys. Use a distinct prefix per record type.
func WithPrefix(prefix string) CacheOption {
	return func(o *cacheOptions) { o.prefix = prefix }
}

// WithTTL sets how long results stay cached. Zero keeps them until evicted.
func WithTTL(ttl time.Duration) CacheOption {
	return func(o *cacheOptions) { o.ttl = ttl }
}

func WithLogger(l *slog.Logger) CacheOption {
	return func(o *cacheOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithConfig applies the cache settings from cfg.
func WithConfig(cfg Config) CacheOption {
	return func(o *cacheOptions) {
		o.prefix = cfg.CachePrefix
		o.ttl = cfg.CacheTTL
	}
}

// CacheKey returns the key under which results for term are stored.
// Terms differing only in case or surrounding space share a key.
func CacheKey(prefix, term string) string {
	return prefix + search.FoldCase(strings.TrimSpace(term))
}

// CachedSearcher stores results of next in Redis as JSON. Redis failures are
// logged and the call falls through to next. Errors from next are returned
// and never cached.
func CachedSearcher[T any](client redis.UniversalClient, next search.Searcher[T], opts ...CacheOption) (search.Searcher[T], error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if next == nil {
		return nil, search.ErrNilSearcher
	}
	o := cacheOptions{prefix: "search:", log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With(logger.Component("redis.search_cache"))

	return func(ctx context.Context, term string) ([]T, error) {
		key := CacheKey(o.prefix, term)

		raw, err := client.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached []T
			uerr := json.Unmarshal(raw, &cached)
			if uerr == nil {
				log.DebugContext(ctx, "search cache hit", logger.Term(term), logger.Results(len(cached)))
				return cached, nil
			}
			log.WarnContext(ctx, "search cache entry is corrupt", logger.Error(uerr))
		case errors.Is(err, redis.Nil):
		default:
			log.WarnContext(ctx, "search cache read failed", logger.Error(err))
		}

		results, err := next(ctx, term)
		if err != nil {
			return nil, err
		}

		raw, err = json.Marshal(results)
		if err != nil {
			log.WarnContext(ctx, "search results are not cacheable", logger.Error(err))
			return results, nil
		}
		if err := client.Set(ctx, key, raw, o.ttl).Err(); err != nil {
			log.WarnContext(ctx, "search cache write failed", logger.Error(err))
		}
		return results, nil
	}, nil
}

// Invalidate deletes every cached entry under prefix. Matching keys are
// collected with SCAN until the cursor returns to zero and only then deleted
// in chunks of batch keys. It returns the number of deleted keys.
func Invalidate(ctx context.Context, client redis.UniversalClient, prefix string, batch int64) (int64, error) {
	if client == nil {
		return 0, ErrNilClient
	}
	if batch <= 0 {
		batch = 500
	}

	var (
		cursor uint64
		keys   []string
	)
	for {
		page, next, err := client.Scan(ctx, cursor, escapeGlob(prefix)+"*", batch).Result()
		if err != nil {
			return 0, err
		}
		keys = append(keys, page...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	var deleted int64
	for start := 0; start < len(keys); start += int(batch) {
		end := min(start+int(batch), len(keys))
		n, err := client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, nil
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
