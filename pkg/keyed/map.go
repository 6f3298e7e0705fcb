package keyed

import "hash/maphash"

// entry is one stored key/value pair. Entries with colliding hashes
// share a bucket and are told apart by the strategy's Equal.
type entry[K, V any] struct {
	key   K
	value V
}

// Map is an associative container over owned keys of type K. Plain key
// operations are methods; lookups by an equivalent view type are the
// package-level functions GetBy, ContainsBy, DeleteBy, and UpdateBy,
// since Go methods cannot introduce the view type parameter.
//
// A Map is not safe for concurrent use.
type Map[K, V any] struct {
	strategy Strategy[K]
	seed     maphash.Seed
	buckets  map[uint64][]entry[K, V]
	size     int
}

// NewMap returns an empty map using the given strategy. The hash seed
// is chosen per map, so hashes never carry across instances.
func NewMap[K, V any](s Strategy[K]) *Map[K, V] {
	return &Map[K, V]{
		strategy: s,
		seed:     maphash.MakeSeed(),
		buckets:  make(map[uint64][]entry[K, V]),
	}
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Set stores v under k, replacing any existing entry for the same key.
func (m *Map[K, V]) Set(k K, v V) {
	h := m.strategy.Hash(m.seed, k)
	bucket := m.buckets[h]
	for i := range bucket {
		if m.strategy.Equal(bucket[i].key, k) {
			bucket[i].value = v
			return
		}
	}
	m.buckets[h] = append(bucket, entry[K, V]{key: k, value: v})
	m.size++
}

// Get returns the value stored under k. This is the reflexive lookup;
// it locates the same bucket and applies the same comparison as a
// view lookup through Self.
func (m *Map[K, V]) Get(k K) (V, bool) {
	h := m.strategy.Hash(m.seed, k)
	for _, e := range m.buckets[h] {
		if m.strategy.Equal(e.key, k) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry stored under k, reporting whether an entry
// was removed.
func (m *Map[K, V]) Delete(k K) bool {
	h := m.strategy.Hash(m.seed, k)
	bucket := m.buckets[h]
	for i := range bucket {
		if m.strategy.Equal(bucket[i].key, k) {
			m.removeAt(h, bucket, i)
			return true
		}
	}
	return false
}

// Range calls fn for every entry until fn returns false. Iteration
// order is unspecified. The map must not be modified during Range.
func (m *Map[K, V]) Range(fn func(k K, v V) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// removeAt drops bucket[i], releasing the bucket when it empties.
func (m *Map[K, V]) removeAt(h uint64, bucket []entry[K, V], i int) {
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket = bucket[:last]
	if len(bucket) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket
	}
	m.size--
}

// GetBy returns the value stored under the key the view refers to,
// never taking ownership of the view and never allocating an owned key.
// The view is hashed with the map's seed and compared through eq, which
// by the equivalence contract agrees with the strategy's own comparison.
func GetBy[K, V, Q any](m *Map[K, V], eq Equivalence[K, Q], view Q) (V, bool) {
	h := eq.HashView(m.seed, view)
	for _, e := range m.buckets[h] {
		if eq.EqualKey(e.key, view) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// ContainsBy reports whether the map holds a key the view refers to.
func ContainsBy[K, V, Q any](m *Map[K, V], eq Equivalence[K, Q], view Q) bool {
	_, ok := GetBy(m, eq, view)
	return ok
}

// DeleteBy removes the entry whose key the view refers to, reporting
// whether an entry was removed.
func DeleteBy[K, V, Q any](m *Map[K, V], eq Equivalence[K, Q], view Q) bool {
	h := eq.HashView(m.seed, view)
	bucket := m.buckets[h]
	for i := range bucket {
		if eq.EqualKey(bucket[i].key, view) {
			m.removeAt(h, bucket, i)
			return true
		}
	}
	return false
}

// UpdateBy applies fn to the value stored under the key the view refers
// to, in place, reporting whether such an entry exists. fn must not
// touch the map. UpdateBy is the allocation-free path for counters and
// accumulators keyed by borrowed views.
func UpdateBy[K, V, Q any](m *Map[K, V], eq Equivalence[K, Q], view Q, fn func(v *V)) bool {
	h := eq.HashView(m.seed, view)
	bucket := m.buckets[h]
	for i := range bucket {
		if eq.EqualKey(bucket[i].key, view) {
			fn(&bucket[i].value)
			return true
		}
	}
	return false
}
