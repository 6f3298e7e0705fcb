package keyed

import "hash/maphash"

// Equivalence declares that views of type Q hash and compare identically
// to owned keys of type K under a map's strategy and seed.
//
// The declaration is a promise the implementer makes, not one the map
// can verify: for every key k and every view q of the same content,
// HashView(seed, q) must equal the strategy's Hash(seed, k), and
// EqualKey(k, q) must report true exactly when q views k's content.
// A declaration that breaks this silently corrupts every lookup in maps
// that rely on it, so each declared pair needs its own round-trip test.
type Equivalence[K, Q any] interface {
	// HashView returns the hash of the view under seed, using the same
	// algorithm the map's strategy applies to owned keys.
	HashView(seed maphash.Seed, q Q) uint64

	// EqualKey reports whether the view q refers to the same content as
	// the owned key k.
	EqualKey(k K, q Q) bool
}

// Self returns the reflexive equivalence every key type has to itself,
// derived from the map's own strategy. Lookups through Self behave
// identically to the map's plain key lookups.
func Self[K any](s Strategy[K]) Equivalence[K, K] {
	return selfEquivalence[K]{s}
}

type selfEquivalence[K any] struct {
	s Strategy[K]
}

func (e selfEquivalence[K]) HashView(seed maphash.Seed, q K) uint64 {
	return e.s.Hash(seed, q)
}

func (e selfEquivalence[K]) EqualKey(k, q K) bool {
	return e.s.Equal(k, q)
}

// BytesView lets byte-slice-kinded views look up string-kinded keys.
// maphash guarantees that Bytes and String hash equal content equally,
// which is exactly the consistency the contract requires.
func BytesView[K ~string, Q ~[]byte]() Equivalence[K, Q] {
	return bytesView[K, Q]{}
}

type bytesView[K ~string, Q ~[]byte] struct{}

func (bytesView[K, Q]) HashView(seed maphash.Seed, q Q) uint64 {
	return maphash.Bytes(seed, []byte(q))
}

func (bytesView[K, Q]) EqualKey(k K, q Q) bool {
	return string(k) == string(q)
}

// StringView is the mirror of BytesView: string-kinded views over
// byte-slice-kinded keys.
func StringView[K ~[]byte, Q ~string]() Equivalence[K, Q] {
	return stringView[K, Q]{}
}

type stringView[K ~[]byte, Q ~string] struct{}

func (stringView[K, Q]) HashView(seed maphash.Seed, q Q) uint64 {
	return maphash.String(seed, string(q))
}

func (stringView[K, Q]) EqualKey(k K, q Q) bool {
	return string(k) == string(q)
}
