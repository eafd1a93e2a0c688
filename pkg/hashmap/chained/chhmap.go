package chained

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

const (
	loadFactor  = 1.0 // grow once there is an entry for every bucket
	minCapacity = 2
)

// entry is a key value pair that is found in each bucket
type entry[K comparable, V any] struct {
	key K
	val V
}

// bucket represents a single slot in the HashMap table. Colliding entries
// are chained in insertion order.
type bucket[K comparable, V any] []entry[K, V]

// insert adds or replaces key and returns the previous value, or false
func (b *bucket[K, V]) insert(key K, val V) (V, bool) {
	if i := b.index(key); i >= 0 {
		prev := (*b)[i].val
		(*b)[i].val = val
		return prev, true
	}
	*b = append(*b, entry[K, V]{key: key, val: val})
	// no previous value, so return false
	return *new(V), false
}

func (b bucket[K, V]) index(key K) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}
	return -1
}

func (b bucket[K, V]) search(key K) (V, bool) {
	if i := b.index(key); i >= 0 {
		return b[i].val, true
	}
	return *new(V), false
}

func (b bucket[K, V]) scan(yield func(K, V) bool) bool {
	for i := range b {
		if !yield(b[i].key, b[i].val) {
			return false
		}
	}
	return true
}

// delete removes key, keeping the remaining entries in order
func (b *bucket[K, V]) delete(key K) (V, bool) {
	i := b.index(key)
	if i < 0 {
		return *new(V), false
	}
	ret := (*b)[i].val
	*b = slices.Delete(*b, i, i+1)
	return ret, true
}

// HashMap represents an open hashing (separate chaining) hashtable
// implementation. It is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	hash    hashmap.HashFunc[K]
	log     *zap.Logger
	size    int
	buckets []bucket[K, V]
}

var _ hashmap.Map[string, int] = (*HashMap[string, int])(nil)

// NewHashMap returns a new HashMap whose capacity is the smallest prime
// >= capacity. A nil hash falls back to hashmap.Comparable.
func NewHashMap[K comparable, V any](capacity int, hash hashmap.HashFunc[K], opts *hashmap.Options) (*HashMap[K, V], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(hashmap.ErrInvalidCapacity, "new table with capacity %d", capacity)
	}
	if hash == nil {
		hash = hashmap.Comparable[K]()
	}
	opts = hashmap.CheckOptions(opts)
	return newHashMap[K, V](capacity, hash, opts.Logger), nil
}

// newHashMap is the internal variant of the previous function
// and is mainly used internally
func newHashMap[K comparable, V any](capacity int, hash hashmap.HashFunc[K], log *zap.Logger) *HashMap[K, V] {
	return &HashMap[K, V]{
		hash:    hash,
		log:     log,
		buckets: make([]bucket[K, V], hashmap.NextPrime(max(capacity, minCapacity))),
	}
}

// lazyInit makes the zero value usable
func (m *HashMap[K, V]) lazyInit() {
	if len(m.buckets) == 0 {
		*m = *newHashMap[K, V](hashmap.DefaultCapacity, hashmap.Comparable[K](), zap.NewNop())
	}
}

// bucketFor masks the hashkey to get the bucket of key
func (m *HashMap[K, V]) bucketFor(key K) *bucket[K, V] {
	return &m.buckets[m.hash(key)%uint64(len(m.buckets))]
}

// resize makes a new map with the new size, copies everything over, and
// then swaps it in
func (m *HashMap[K, V]) resize(capacity int) {
	m.log.Debug("rebuilding table",
		zap.Int("from", len(m.buckets)),
		zap.Int("to", capacity),
		zap.Int("size", m.size))
	newHM := newHashMap[K, V](capacity, m.hash, m.log)
	for k, v := range m.All() {
		newHM.bucketFor(k).insert(k, v)
	}
	newHM.size = m.size
	*m = *newHM
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	if len(m.buckets) == 0 {
		return *new(V), false
	}
	return m.bucketFor(key).search(key)
}

// ContainsKey reports whether key has an entry
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put inserts a key value entry and returns the previous value, or false
func (m *HashMap[K, V]) Put(key K, value V) (V, bool) {
	m.lazyInit()
	// check and see if we need to resize
	if m.TableLoad() >= loadFactor {
		// if we do, then double the map size
		m.resize(hashmap.NextPrime(2 * len(m.buckets)))
	}
	val, ok := m.bucketFor(key).insert(key, value)
	if !ok { // means not updated, aka a new one was inserted
		m.size++
	}
	return val, ok
}

// Remove removes a value for a given key and returns the removed value, or false
func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	if len(m.buckets) == 0 {
		// nothing to see here folks
		return *new(V), false
	}
	val, ok := m.bucketFor(key).delete(key)
	if ok {
		m.size--
	}
	return val, ok
}

// Resize rebuilds the table at the smallest prime >= capacity. A capacity
// below Len is rejected and leaves the table as it was.
func (m *HashMap[K, V]) Resize(capacity int) error {
	if capacity < 1 || capacity < m.size {
		return errors.Wrapf(hashmap.ErrInvalidCapacity,
			"resize to %d with %d entries", capacity, m.size)
	}
	m.lazyInit()
	m.resize(hashmap.NextPrime(capacity))
	return nil
}

// Clear empties every bucket. The capacity stays the same.
func (m *HashMap[K, V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// All returns a sequence over every entry, bucket by bucket. It is not
// safe to insert or remove while ranging.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.buckets {
			if !m.buckets[i].scan(yield) {
				return
			}
		}
	}
}

// Range takes an Iterator and ranges the HashMap as long
// as the iterator function continues to be true.
func (m *HashMap[K, V]) Range(it hashmap.Iterator[K, V]) {
	m.All()(it)
}

// Pairs returns every key value pair
func (m *HashMap[K, V]) Pairs() []hashmap.Pair[K, V] {
	return hashmap.CollectPairs(m.All(), m.size)
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap[K, V]) TableLoad() float64 {
	return hashmap.Load(m.size, len(m.buckets))
}

// EmptyBuckets returns the number of buckets with no entries
func (m *HashMap[K, V]) EmptyBuckets() int {
	var n int
	for i := range m.buckets {
		if len(m.buckets[i]) == 0 {
			n++
		}
	}
	return n
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[K, V]) Len() int {
	return m.size
}

// Capacity returns the number of buckets in the table
func (m *HashMap[K, V]) Capacity() int {
	return len(m.buckets)
}
