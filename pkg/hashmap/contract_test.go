package hashmap_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/hashtables/pkg/hashmap"
	"github.com/scottcagno/hashtables/pkg/hashmap/chained"
	"github.com/scottcagno/hashtables/pkg/hashmap/openaddr"
)

type strategy struct {
	name    string
	maxLoad float64
	new     func(t *testing.T, capacity int, hash hashmap.HashFunc[string]) hashmap.Map[string, int]
}

var strategies = []strategy{
	{
		name:    "openaddr",
		maxLoad: openaddr.MaxLoadFactor,
		new: func(t *testing.T, capacity int, hash hashmap.HashFunc[string]) hashmap.Map[string, int] {
			m, err := openaddr.NewHashMap[string, int](capacity, hash, nil)
			require.NoError(t, err)
			return m
		},
	},
	{
		name:    "chained",
		maxLoad: 1.0,
		new: func(t *testing.T, capacity int, hash hashmap.HashFunc[string]) hashmap.Map[string, int] {
			m, err := chained.NewHashMap[string, int](capacity, hash, nil)
			require.NoError(t, err)
			return m
		},
	},
}

var hashes = map[string]hashmap.HashFunc[string]{
	"sum":      hashmap.SumHash,
	"weighted": hashmap.WeightedSumHash,
	"xxhash":   hashmap.XXHash,
	"murmur3":  hashmap.Murmur3,
}

func forEach(t *testing.T, fn func(t *testing.T, newMap func(capacity int) hashmap.Map[string, int], s strategy)) {
	for _, s := range strategies {
		for name, hash := range hashes {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				fn(t, func(capacity int) hashmap.Map[string, int] {
					return s.new(t, capacity, hash)
				}, s)
			})
		}
	}
}

func TestMap_PutGet(t *testing.T) {
	forEach(t, func(t *testing.T, newMap func(int) hashmap.Map[string, int], s strategy) {
		m := newMap(1)
		for i := 0; i < 300; i++ {
			m.Put("key"+strconv.Itoa(i), i)
			assert.LessOrEqual(t, m.TableLoad(), s.maxLoad)
		}
		// overwrite every other key
		for i := 0; i < 300; i += 2 {
			prev, ok := m.Put("key"+strconv.Itoa(i), -i)
			assert.True(t, ok)
			assert.Equal(t, i, prev)
		}
		assert.Equal(t, 300, m.Len())
		for i := 0; i < 300; i++ {
			want := i
			if i%2 == 0 {
				want = -i
			}
			got, ok := m.Get("key" + strconv.Itoa(i))
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}
	})
}

func TestMap_OpenAddrLoadCeiling(t *testing.T) {
	for name, hash := range hashes {
		m, err := openaddr.NewHashMap[string, int](1, hash, nil)
		require.NoError(t, err)
		for i := 0; i < 500; i++ {
			m.Put(strconv.Itoa(i), i)
			require.Less(t, m.TableLoad(), 0.5, name)
			require.Equal(t, m.Capacity(), m.EmptyBuckets()+m.Len(), name)
		}
	}
}

func TestMap_Remove(t *testing.T) {
	forEach(t, func(t *testing.T, newMap func(int) hashmap.Map[string, int], _ strategy) {
		m := newMap(11)
		m.Put("a", 1)
		m.Put("b", 2)

		val, ok := m.Remove("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		_, ok = m.Get("a")
		assert.False(t, ok)
		assert.False(t, m.ContainsKey("a"))
		assert.Equal(t, 1, m.Len())

		_, ok = m.Remove("a")
		assert.False(t, ok)
		_, ok = m.Remove("never")
		assert.False(t, ok)
		assert.Equal(t, 1, m.Len())

		m.Put("a", 2)
		got, ok := m.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, got)
		assert.Equal(t, 2, m.Len())
	})
}

func TestMap_Resize(t *testing.T) {
	forEach(t, func(t *testing.T, newMap func(int) hashmap.Map[string, int], _ strategy) {
		m := newMap(11)
		want := map[string]int{"x": 1, "y": 2, "z": 3}
		for k, v := range want {
			m.Put(k, v)
		}

		before := m.Capacity()
		assert.ErrorIs(t, m.Resize(2), hashmap.ErrInvalidCapacity)
		assert.ErrorIs(t, m.Resize(0), hashmap.ErrInvalidCapacity)
		assert.Equal(t, before, m.Capacity())

		for _, capacity := range []int{3, 8, 50, 11} {
			require.NoError(t, m.Resize(capacity))
			assert.True(t, hashmap.IsPrime(m.Capacity()))
			assert.GreaterOrEqual(t, m.Capacity(), capacity)
			got := make(map[string]int)
			for _, p := range m.Pairs() {
				got[p.Key] = p.Value
			}
			assert.Equal(t, want, got)
			for k, v := range want {
				val, ok := m.Get(k)
				assert.True(t, ok)
				assert.Equal(t, v, val)
			}
		}
	})
}

func TestMap_Clear(t *testing.T) {
	forEach(t, func(t *testing.T, newMap func(int) hashmap.Map[string, int], _ strategy) {
		m := newMap(11)
		for i := 0; i < 20; i++ {
			m.Put(strconv.Itoa(i), i)
		}
		capacity := m.Capacity()
		for i := 0; i < 2; i++ {
			m.Clear()
			assert.Equal(t, 0, m.Len())
			assert.Equal(t, capacity, m.Capacity())
			assert.Equal(t, capacity, m.EmptyBuckets())
			assert.Empty(t, m.Pairs())
		}
	})
}

func TestMap_All(t *testing.T) {
	forEach(t, func(t *testing.T, newMap func(int) hashmap.Map[string, int], _ strategy) {
		m := newMap(11)
		for i := 0; i < 40; i++ {
			m.Put(strconv.Itoa(i), i)
		}
		m.Remove("7")
		m.Remove("21")

		seq := m.All()
		for pass := 0; pass < 2; pass++ {
			seen := make(map[string]bool)
			for k, v := range seq {
				assert.False(t, seen[k])
				seen[k] = true
				assert.Equal(t, strconv.Itoa(v), k)
			}
			assert.Len(t, seen, 38)
		}
		assert.Len(t, m.Pairs(), 38)
	})
}
