package openaddr

const (
	MaxLoadFactor = 0.50 // quadratic probing only guarantees a free slot below 50%
	minCapacity   = 2
)

// overLoad reports whether holding size entries in capacity slots would
// break the load factor ceiling
func overLoad(size, capacity int) bool {
	return float64(size)/float64(capacity) >= MaxLoadFactor
}
