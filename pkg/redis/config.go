package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// Search result cache.
	CachePrefix   string        `env:"REDIS_SEARCH_CACHE_PREFIX" envDefault:"search:"`
	CacheTTL      time.Duration `env:"REDIS_SEARCH_CACHE_TTL" envDefault:"1m"`
	ScanBatchSize int64         `env:"REDIS_SCAN_BATCH_SIZE" envDefault:"500"`
}
