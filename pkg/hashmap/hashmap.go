// Package hashmap holds the contract shared by every hash table strategy in
// this module along with the pieces they have in common: hash functions, the
// prime sizing policy, options and errors.
package hashmap

import "iter"

// HashFunc maps a key to a non-negative integer. The table reduces it modulo
// its capacity, so it only needs to be deterministic for the table's lifetime.
type HashFunc[K comparable] func(key K) uint64

// Pair is a single key value pair as returned by Pairs
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Iterator is the callback form of a traversal. Returning false stops it.
type Iterator[K comparable, V any] func(key K, value V) bool

// Map is the logical contract of a resizable hash table. Callers written
// against Map do not care which collision strategy backs it.
type Map[K comparable, V any] interface {
	// Put inserts or replaces the value for key. It returns the previous
	// value and true if an existing entry was replaced.
	Put(key K, value V) (V, bool)

	// Get returns the value for key, or false if it is absent.
	Get(key K) (V, bool)

	// Remove deletes key and returns its value, or false if it was absent.
	Remove(key K) (V, bool)

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// Len returns the number of live entries.
	Len() int

	// Capacity returns the number of buckets (always prime).
	Capacity() int

	// TableLoad returns Len() / Capacity().
	TableLoad() float64

	// EmptyBuckets returns the number of buckets holding no live entry.
	EmptyBuckets() int

	// Resize rebuilds the table at (at least) the next prime >= capacity.
	Resize(capacity int) error

	// Clear drops every entry. Capacity is unchanged.
	Clear()

	// All returns a restartable sequence over the live entries.
	All() iter.Seq2[K, V]

	// Pairs returns a snapshot of every live entry.
	Pairs() []Pair[K, V]
}

// Load returns size / capacity as a float
func Load(size, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(size) / float64(capacity)
}

// CollectPairs drains a traversal into a slice
func CollectPairs[K comparable, V any](seq iter.Seq2[K, V], sizeHint int) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, sizeHint)
	for k, v := range seq {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs
}
