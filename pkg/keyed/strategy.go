// Package keyed provides an associative container whose lookup accepts
// any view type declared equivalent to the stored key type, so that a
// multi-word owned key (a heap-backed buffer, say) can be found by a
// lightweight view of the same content without allocating a temporary
// key.
//
// A Map is driven by a single Strategy: one hash function and one
// comparison shared by the key type and every view admitted through an
// Equivalence. Hashes are seeded per map instance, so hash values are
// meaningful only within the map that produced them.
package keyed

import "hash/maphash"

// Strategy tells a Map how to hash and compare its key type. All keys
// and all equivalent views of one map go through the same strategy and
// seed.
type Strategy[K any] interface {
	// Hash returns the hash of k under seed.
	Hash(seed maphash.Seed, k K) uint64

	// Equal reports whether two keys are the same key.
	Equal(a, b K) bool
}

// StringKey returns the strategy for string-kinded keys.
func StringKey[K ~string]() Strategy[K] {
	return stringStrategy[K]{}
}

type stringStrategy[K ~string] struct{}

func (stringStrategy[K]) Hash(seed maphash.Seed, k K) uint64 {
	return maphash.String(seed, string(k))
}

func (stringStrategy[K]) Equal(a, b K) bool {
	return a == b
}

// BytesKey returns the strategy for byte-slice-kinded keys. Keys are
// compared by content. Callers must not mutate a key after inserting
// it.
func BytesKey[K ~[]byte]() Strategy[K] {
	return bytesStrategy[K]{}
}

type bytesStrategy[K ~[]byte] struct{}

func (bytesStrategy[K]) Hash(seed maphash.Seed, k K) uint64 {
	return maphash.Bytes(seed, []byte(k))
}

func (bytesStrategy[K]) Equal(a, b K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ComparableKey returns the strategy for any comparable key type,
// hashing with maphash.Comparable.
func ComparableKey[K comparable]() Strategy[K] {
	return comparableStrategy[K]{}
}

type comparableStrategy[K comparable] struct{}

func (comparableStrategy[K]) Hash(seed maphash.Seed, k K) uint64 {
	return maphash.Comparable(seed, k)
}

func (comparableStrategy[K]) Equal(a, b K) bool {
	return a == b
}
