// Package redis connects to Redis with go-redis/v9 and caches search results.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	cached, err := redis.CachedSearcher(client, find,
//		redis.WithConfig(cfg),
//		redis.WithPrefix("search:patients:"),
//		redis.WithLogger(log),
//	)
//	engine, err := search.New(sink, search.WithSearcher(cached))
//
// Results are stored as JSON under the prefix plus the case-folded, trimmed
// term. The cache never turns a working search into a failing one: read and
// write errors are logged and the wrapped searcher is used. Failed searches
// are not cached.
//
// Invalidate removes every entry under a prefix, e.g. after a patient record
// is edited.
package redis
