package openaddr

import (
	"iter"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// slotState is the tag of a slot
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// slot represents a single position in the HashMap table. The key and
// value are only meaningful while the slot is occupied.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	val   V
}

// HashMap represents a closed hashing hashtable implementation using
// quadratic probing. It is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	hash  hashmap.HashFunc[K]
	log   *zap.Logger
	size  int
	tombs int
	slots []slot[K, V]
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
// and is mainly used when rebuilding the table
func newHashMap[K comparable, V any](capacity int, hash hashmap.HashFunc[K], log *zap.Logger) *HashMap[K, V] {
	return &HashMap[K, V]{
		hash:  hash,
		log:   log,
		slots: make([]slot[K, V], hashmap.NextPrime(max(capacity, minCapacity))),
	}
}

// lazyInit makes the zero value usable
func (m *HashMap[K, V]) lazyInit() {
	if len(m.slots) == 0 {
		*m = *newHashMap[K, V](hashmap.DefaultCapacity, hashmap.Comparable[K](), zap.NewNop())
	}
}

// lookup walks the probe sequence of key and returns the index of its slot
// along with its probe distance, or false
func (m *HashMap[K, V]) lookup(key K) (int, int, bool) {
	n := uint64(len(m.slots))
	if n == 0 {
		return -1, 0, false
	}
	idx := m.hash(key) % n
	for i := uint64(0); i < n; i++ {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			// nothing was ever placed past here
			return -1, int(i), false
		case slotOccupied:
			if s.key == key {
				return int(idx), int(i), true
			}
		}
		// (h + i*i) -> (h + (i+1)*(i+1)) is a step of 2i+1
		idx = (idx + 2*i + 1) % n
	}
	return -1, int(n), false
}

// Get returns a value for a given key, or returns false if none could be found
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	idx, _, ok := m.lookup(key)
	if !ok {
		return *new(V), false
	}
	return m.slots[idx].val, true
}

// ContainsKey reports whether key has a live entry
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	_, _, ok := m.lookup(key)
	return ok
}

// Put inserts a key value entry and returns the previous value, or false
func (m *HashMap[K, V]) Put(key K, value V) (V, bool) {
	m.lazyInit()
	// check and see if we need to grow. this runs before the key is located,
	// so an update can still grow the table
	if overLoad(m.size+1, len(m.slots)) {
		m.resize(hashmap.NextPrime(2 * len(m.slots)))
	}
	return m.insert(key, value)
}

// insert places the entry on the probe sequence of key, reusing the first
// tombstone passed, but only after making sure key is not already live
// further along the sequence
func (m *HashMap[K, V]) insert(key K, value V) (V, bool) {
	n := uint64(len(m.slots))
	idx := m.hash(key) % n
	tomb := -1
	for i := uint64(0); i < n; i++ {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			if tomb < 0 {
				m.occupy(int(idx), key, value)
			} else {
				m.occupy(tomb, key, value)
			}
			return *new(V), false
		case slotTombstone:
			if tomb < 0 {
				tomb = int(idx)
			}
		case slotOccupied:
			if s.key == key {
				prev := s.val
				s.val = value
				return prev, true
			}
		}
		idx = (idx + 2*i + 1) % n
	}
	if tomb < 0 {
		// the load factor ceiling makes this unreachable
		panic(errors.Wrapf(hashmap.ErrProbeExhausted,
			"no free slot after %d probes (size=%d)", n, m.size))
	}
	m.occupy(tomb, key, value)
	return *new(V), false
}

// occupy writes a new live entry into slot i
func (m *HashMap[K, V]) occupy(i int, key K, value V) {
	if m.slots[i].state == slotTombstone {
		m.tombs--
	}
	m.slots[i] = slot[K, V]{state: slotOccupied, key: key, val: value}
	m.size++
}

// Remove removes a value for a given key and returns the removed value, or false
func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	idx, _, ok := m.lookup(key)
	if !ok {
		return *new(V), false
	}
	prev := m.slots[idx].val
	// drop the key and value so they can be collected
	m.slots[idx] = slot[K, V]{state: slotTombstone}
	m.size--
	m.tombs++
	return prev, true
}

// Resize rebuilds the table at the smallest prime >= capacity. The table
// will never hold fewer slots than it has entries, so a capacity below Len
// is rejected. If the requested size would break the load factor ceiling,
// the table keeps doubling until the entries fit.
func (m *HashMap[K, V]) Resize(capacity int) error {
	if capacity < 1 || capacity < m.size {
		return errors.Wrapf(hashmap.ErrInvalidCapacity,
			"resize to %d with %d entries", capacity, m.size)
	}
	m.lazyInit()
	target := hashmap.NextPrime(capacity)
	for overLoad(m.size, target) {
		target = hashmap.NextPrime(2 * target)
	}
	m.resize(target)
	return nil
}

// resize makes a new table with the new capacity, copies every live entry
// over and then swaps it in. Tombstones are left behind.
func (m *HashMap[K, V]) resize(capacity int) {
	m.log.Debug("rebuilding table",
		zap.Int("from", len(m.slots)),
		zap.Int("to", capacity),
		zap.Int("size", m.size),
		zap.Int("tombstones", m.tombs))
	newHM := newHashMap[K, V](capacity, m.hash, m.log)
	for k, v := range m.All() {
		newHM.insert(k, v)
	}
	*m = *newHM
}

// Clear resets every slot to empty. The capacity stays the same.
func (m *HashMap[K, V]) Clear() {
	clear(m.slots)
	m.size = 0
	m.tombs = 0
}

// All returns a sequence over the live entries in slot order. Every call to
// the sequence starts over at the first slot with its own cursor. It is not
// safe to insert or remove while ranging.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < len(m.slots); i++ {
			if m.slots[i].state != slotOccupied {
				continue
			}
			if !yield(m.slots[i].key, m.slots[i].val) {
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

// Pairs returns every live key value pair
func (m *HashMap[K, V]) Pairs() []hashmap.Pair[K, V] {
	return hashmap.CollectPairs(m.All(), m.size)
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap[K, V]) TableLoad() float64 {
	return hashmap.Load(m.size, len(m.slots))
}

// EmptyBuckets returns the number of slots that are empty or tombstoned
func (m *HashMap[K, V]) EmptyBuckets() int {
	return len(m.slots) - m.size
}

// Tombstones returns the number of tombstoned slots
func (m *HashMap[K, V]) Tombstones() int {
	return m.tombs
}

// LongestProbe returns the highest probe distance (the i in h + i*i) of any
// live key. A table without collisions reports zero.
func (m *HashMap[K, V]) LongestProbe() int {
	var longest int
	for k := range m.All() {
		if _, probes, _ := m.lookup(k); probes > longest {
			longest = probes
		}
	}
	return longest
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap[K, V]) Len() int {
	return m.size
}

// Capacity returns the number of slots in the table
func (m *HashMap[K, V]) Capacity() int {
	return len(m.slots)
}
