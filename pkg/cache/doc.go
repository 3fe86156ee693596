// Package cache provides a generic, thread-safe, fixed-capacity LRU store.
//
// It backs bounded in-memory state such as the last fingerprint seen per
// tracked array: once the capacity is reached, the least recently used entry
// is dropped and an optional eviction callback is invoked.
//
//	c := cache.NewLRU[string, string](128)
//	c.Put("scan1", "k3fq0v7a2mwe")
//	fp, ok := c.Get("scan1")
//
// Get, Put, Remove and Peek run in O(1). All methods may be called
// concurrently.
package cache
