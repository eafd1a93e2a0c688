package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPrime(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-5, 2},
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{10, 11},
		{11, 11},
		{20, 23},
		{22, 23},
		{24, 29},
		{46, 47},
		{94, 97},
		{128, 131},
		{1000, 1009},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextPrime(tt.n), "NextPrime(%d)", tt.n)
		// same input, same answer
		assert.Equal(t, NextPrime(tt.n), NextPrime(tt.n))
	}
}

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true, 29: true}
	for n := -1; n < 30; n++ {
		assert.Equal(t, primes[n], IsPrime(n), "IsPrime(%d)", n)
	}
	assert.False(t, IsPrime(7919*7919))
	assert.True(t, IsPrime(7919))
}

func TestLoad(t *testing.T) {
	assert.Equal(t, 0.0, Load(0, 0))
	assert.Equal(t, 0.5, Load(1, 2))
	assert.InDelta(t, 0.2577, Load(25, 97), 0.0001)
}
