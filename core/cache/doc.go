// Package cache provides a small TTL cache with stampede protection.
//
// Catalog-wide counts are aggregate queries over the product tables; the cache keeps
// their results for a configurable TTL and collapses concurrent misses for the same key
// into a single load via golang.org/x/sync/singleflight.
//
// # Usage
//
//	store := cache.New(time.Minute)
//	v, err := store.GetOrLoad("catalog:size", func() (any, error) {
//	    return products.Size(ctx)
//	})
package cache
