// Package cache provides the sharded LRU cache that memoizes color names.
//
//	names := cache.NewSharded[uint32, string](0, cache.ColorHasher)
//	name := names.GetOrCreate(0xffff0000, func() string { return lookup(0xffff0000) })
//
// The cache is safe for concurrent use and must not be copied after creation.
package cache
