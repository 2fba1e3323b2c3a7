package treemap

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openacid/testkeys"
)

func collectKeys[K, V any](m *Map[K, V]) []K {
	keys := make([]K, 0, m.Len())
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func TestInsertTraversalOrder(t *testing.T) {
	dataSet := []struct {
		keys     []int
		expected []int
	}{
		{
			[]int{},
			[]int{},
		},
		{
			[]int{10, 20, 5, 15, 30},
			[]int{5, 10, 15, 20, 30},
		},
		{
			[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			[]int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			[]int{7, 7, 7, 7},
			[]int{7},
		},
	}

	for _, d := range dataSet {
		m := New[int, string]()
		for _, k := range d.keys {
			m.Insert(k, "")
		}
		assert.NoError(t, m.Check())
		assert.Equal(t, d.expected, collectKeys(m), d.keys)
		assert.Equal(t, len(d.expected), m.Len(), d.keys)
	}
}

func TestInsertDuplicateKeepsExisting(t *testing.T) {
	m := New[string, int]()
	first, inserted := m.Insert("a", 1)
	assert.True(t, inserted)

	second, inserted := m.Insert("a", 99)
	assert.False(t, inserted)
	assert.True(t, first.Equal(second))
	assert.Equal(t, 1, m.Len())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestEraseByIterator(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{10, 20, 5, 15, 30} {
		m.Insert(k, "")
	}

	assert.NoError(t, m.Erase(m.Find(20)))
	assert.Equal(t, []int{5, 10, 15, 30}, collectKeys(m))
	assert.Equal(t, 4, m.Len())
	assert.NoError(t, m.Check())

	// erase via end iterator must not mutate
	assert.Equal(t, ErrInvalidIterator, m.Erase(m.End()))
	assert.Equal(t, 4, m.Len())
}

func TestAtAndRef(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{10, 20, 5, 15, 30} {
		m.Insert(k, "v")
	}

	_, err := m.At(99)
	assert.Equal(t, ErrKeyNotFound, err)
	assert.Equal(t, 5, m.Len())

	ref := m.Ref(99)
	assert.Equal(t, "", *ref)
	assert.Equal(t, 6, m.Len())

	at, err := m.At(99)
	assert.NoError(t, err)
	assert.Same(t, ref, at)

	*ref = "filled"
	v, ok := m.Get(99)
	assert.True(t, ok)
	assert.Equal(t, "filled", v)
}

func TestFindCountContains(t *testing.T) {
	m := New[string, int]()
	m.Insert("b", 2)
	m.Insert("a", 1)

	it := m.Find("a")
	v, err := it.Value()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.True(t, m.Find("zzz").AtEnd())
	assert.True(t, m.Find("zzz").Equal(m.End()))

	assert.Equal(t, 1, m.Count("a"))
	assert.Equal(t, 0, m.Count("zzz"))
	assert.True(t, m.Contains("b"))
	assert.False(t, m.Contains("zzz"))
}

func TestDeleteByKey(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 100; i++ {
		m.Insert(i, i*i)
	}
	for i := 0; i < 100; i += 2 {
		assert.True(t, m.Delete(i))
	}
	assert.False(t, m.Delete(2))
	assert.Equal(t, 50, m.Len())
	assert.NoError(t, m.Check())

	for i := 0; i < 100; i++ {
		assert.Equal(t, i%2 == 1, m.Contains(i), i)
	}
}

func TestMinMax(t *testing.T) {
	m := New[int, string]()
	_, _, ok := m.Min()
	assert.False(t, ok)
	_, _, ok = m.Max()
	assert.False(t, ok)

	for _, k := range []int{10, 20, 5, 15, 30} {
		m.Insert(k, "")
	}
	k, _, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, 5, k)
	k, _, ok = m.Max()
	assert.True(t, ok)
	assert.Equal(t, 30, k)
}

func TestClear(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 64; i++ {
		m.Insert(i, i)
	}
	stale := m.Find(7)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
	assert.True(t, m.Begin().Equal(m.End()))
	assert.NoError(t, m.Check())

	// iterators from before the clear are rejected
	assert.Equal(t, ErrInvalidIterator, stale.Next())

	// the map stays usable
	m.Insert(1, 1)
	assert.Equal(t, 1, m.Len())
	assert.NoError(t, m.Check())
}

func TestCloneIndependence(t *testing.T) {
	orig := New[int, string]()
	for _, k := range []int{10, 20, 5, 15, 30} {
		orig.Insert(k, "orig")
	}

	cp := orig.Clone()
	assert.Equal(t, collectKeys(orig), collectKeys(cp))
	assert.NoError(t, cp.Check())

	cp.Delete(10)
	cp.Insert(99, "copy")
	*cp.Ref(20) = "changed"

	assert.True(t, orig.Contains(10))
	assert.False(t, orig.Contains(99))
	v, _ := orig.Get(20)
	assert.Equal(t, "orig", v)

	orig.Delete(30)
	assert.True(t, cp.Contains(30))
	assert.NoError(t, orig.Check())
	assert.NoError(t, cp.Check())
}

func TestCustomComparator(t *testing.T) {
	m := NewFunc[int, string](func(a, b int) bool { return a > b })
	for _, k := range []int{10, 20, 5, 15, 30} {
		m.Insert(k, "")
	}
	assert.Equal(t, []int{30, 20, 15, 10, 5}, collectKeys(m))
	assert.NoError(t, m.Check())
}

func TestAllStopsEarly(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}
	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func balanceBound(size int) int {
	return int(2 * math.Log2(float64(size)+1))
}

func TestBigKeySetInvariants(t *testing.T) {
	keys := getKeys("1mvl5_10")
	if len(keys) > 50000 {
		keys = keys[:50000]
	}

	m := New[string, int]()
	unique := map[string]bool{}
	for i, k := range keys {
		m.Insert(k, i)
		unique[k] = true
	}
	assert.Equal(t, len(unique), m.Len())
	assert.NoError(t, m.Check())
	assert.LessOrEqual(t, m.Height(), balanceBound(m.Len()))

	// delete every other key and re-validate
	for i := 0; i < len(keys); i += 2 {
		m.Delete(keys[i])
	}
	assert.NoError(t, m.Check())
	assert.LessOrEqual(t, m.Height(), balanceBound(m.Len()))

	expected := make([]string, 0, m.Len())
	for k := range unique {
		if !m.Contains(k) {
			continue
		}
		expected = append(expected, k)
	}
	sort.Strings(expected)
	assert.Equal(t, expected, collectKeys(m))
}

var cache map[string][]string = map[string][]string{}

func getKeys(fn string) []string {
	ss, ok := cache[fn]
	if ok {
		return ss
	}
	ks := testkeys.Load(fn)
	cache[fn] = ks
	return ks
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, typ string, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}

		b.Run(fn, func(b *testing.B) {
			f(b, fn, keys)
		})
	}
}

func BenchmarkWordsMapInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			m := New[string, int]()

			for j, k := range keys {
				m.Insert(k, j)
			}
		}
	})
}

func BenchmarkWordsMapFind(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		m := New[string, int]()
		for j, k := range keys {
			m.Insert(k, j)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			m.Find(keys[i%len(keys)])
		}
	})
}
