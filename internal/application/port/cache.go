package port

// Cache stores computed values by key. A store may drop entries at any
// time, so callers must be able to recompute a missing value.
// Implementations are safe for concurrent use.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Remove(key K)
	Clear()
	Len() int
}
