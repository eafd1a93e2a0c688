package hashmap

import (
	"hash/maphash"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// SumHash adds up the code points of key. Anagrams collide, which makes it
// handy for exercising collision handling.
func SumHash(key string) uint64 {
	var hash uint64
	for _, r := range key {
		hash += uint64(r)
	}
	return hash
}

// WeightedSumHash adds up the code points of key, each weighted by its
// one-based position.
func WeightedSumHash(key string) uint64 {
	var hash, i uint64
	for _, r := range key {
		i++
		hash += i * uint64(r)
	}
	return hash
}

// XXHash is the default string hash
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Murmur3 hashes key using 64-bit murmur3
func Murmur3(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

// IntHash uses the integer itself as its hash value
func IntHash[K constraints.Integer](key K) uint64 {
	return uint64(key)
}

// Comparable returns a HashFunc for any comparable key type. Each call
// draws a fresh random seed, so hash values are only stable for the
// lifetime of the returned function.
func Comparable[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

var stringHashes = map[string]HashFunc[string]{
	"sum":      SumHash,
	"weighted": WeightedSumHash,
	"xxhash":   XXHash,
	"murmur3":  Murmur3,
}

// StringHash looks up one of the string hash functions by name
func StringHash(name string) (HashFunc[string], error) {
	fn, ok := stringHashes[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHash, "%q", name)
	}
	return fn, nil
}
