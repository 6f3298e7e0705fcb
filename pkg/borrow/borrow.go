// Package borrow defines the reference-widening capability: a type
// declares that it can cheaply produce a view of another type, and call
// sites widen through that declaration without allocating.
//
// Unlike the equivalence contract in package keyed, a borrow carries no
// hashing or ordering guarantee. It is purely ergonomic: a function
// expecting a Span accepts anything that borrows as one.
//
// Widening resolution (To) is a bounded call-site mechanism for a
// concrete expected type. It must never stand in for a generic
// constraint: code that needs "any S that borrows as T" spells the
// constraint as Ref[T], which the compiler rejects at compile time when
// unsatisfied.
package borrow

// Ref is implemented by types that can produce a T view of themselves
// without copying the underlying data. A type declares at most one
// borrow target this way; wider reach is layered through Chain.
type Ref[T any] interface {
	Borrow() T
}

// Mut is the exclusive counterpart of Ref. A type may deliberately
// implement Ref without Mut: when mutating through the derived view
// could break an invariant the source type maintains (a validated
// encoding, a sorted run), the mutable widening is simply not declared.
type Mut[T any] interface {
	BorrowMut() T
}

// As widens src to a T view. The call compiles only when src declares
// the borrow, so there is nothing to check at runtime.
func As[T any](src Ref[T]) T {
	return src.Borrow()
}

// AsMut widens src to an exclusive T view.
func AsMut[T any](src Mut[T]) T {
	return src.BorrowMut()
}

// Chain is one hop toward a wider view. The dynamic type of the result
// decides how much further To can resolve.
type Chain interface {
	BorrowNext() any
}

// maxHops bounds chained resolution. One declared borrow plus one Chain
// hop covers every sanctioned layering; the bound exists so that a
// miswired Chain cycle fails a lookup instead of spinning.
const maxHops = 4

// To resolves v to a T view: a direct match, a declared Ref[T] borrow,
// or up to maxHops Chain hops followed by either. It reports false when
// no view of type T is reachable. T is always a concrete type at the
// call site; To performs no resolution inside generic constraints.
func To[T any](v any) (T, bool) {
	for hop := 0; hop <= maxHops; hop++ {
		if t, ok := v.(T); ok {
			return t, true
		}
		if r, ok := v.(Ref[T]); ok {
			return r.Borrow(), true
		}
		c, ok := v.(Chain)
		if !ok {
			break
		}
		v = c.BorrowNext()
	}
	var zero T
	return zero, false
}
