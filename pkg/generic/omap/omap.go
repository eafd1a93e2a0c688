package omap

import (
	"iter"
	"slices"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// OrderedMap keeps the keys of a hashmap.Map in the order they were first
// inserted. Updating a key does not move it; removing and re-adding does.
type OrderedMap[K comparable, V any] struct {
	data hashmap.Map[K, V]
	keys []K
}

// New wraps data, which is cleared first
func New[K comparable, V any](data hashmap.Map[K, V]) *OrderedMap[K, V] {
	data.Clear()
	return &OrderedMap[K, V]{
		data: data,
	}
}

// Put inserts or replaces a value for the given key
func (o *OrderedMap[K, V]) Put(key K, value V) (V, bool) {
	prev, ok := o.data.Put(key, value)
	if !ok {
		o.keys = append(o.keys, key)
	}
	return prev, ok
}

// Get returns a value for the given key (if it exists)
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	return o.data.Get(key)
}

// Remove removes and returns the value for the given key (if it exists)
func (o *OrderedMap[K, V]) Remove(key K) (V, bool) {
	prev, ok := o.data.Remove(key)
	if ok {
		if i := slices.Index(o.keys, key); i >= 0 {
			o.keys = slices.Delete(o.keys, i, i+1)
		}
	}
	return prev, ok
}

// Len returns the number of entries
func (o *OrderedMap[K, V]) Len() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(o.keys)
}

// All iterates over all keys and values in insertion order
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range o.keys {
			val, _ := o.data.Get(key)
			if !yield(key, val) {
				return
			}
		}
	}
}

// Range iterates over all keys and values in insertion order
func (o *OrderedMap[K, V]) Range(it hashmap.Iterator[K, V]) {
	o.All()(it)
}
