// Package cache provides a generic, thread-safe LRU cache with optional
// time-based expiry.
//
// clinickit uses it to memoize external search results per term so that
// retyping a recent query in the admin tables does not hit the backend again:
//
//	results := cache.NewLRUCache[string, []hospital.Patient](128, cache.WithTTL(30*time.Second))
//	searcher := search.Memoize(backendSearch, results)
//
// Get, Put and Remove are O(1). Expired entries are removed lazily on access.
package cache
