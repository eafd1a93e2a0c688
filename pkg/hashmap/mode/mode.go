// Package mode finds the most frequent values of a sequence using any
// hashmap.Map to do the counting.
package mode

import (
	"github.com/scottcagno/hashtables/pkg/generic/omap"
	"github.com/scottcagno/hashtables/pkg/hashmap"
)

// FindMode returns every value of values that occurs the most, in the order
// each was first seen, together with that frequency. The counts are kept in
// m, which is cleared first. An empty input has no mode and returns 0.
func FindMode[K comparable](m hashmap.Map[K, int], values []K) ([]K, int) {
	counts := omap.New(m)
	var frequency int
	for _, v := range values {
		n, _ := counts.Get(v)
		n++
		counts.Put(v, n)
		if n > frequency {
			frequency = n
		}
	}
	var modes []K
	for v, n := range counts.All() {
		if n == frequency {
			modes = append(modes, v)
		}
	}
	return modes, frequency
}
