package own

// Cloner is the explicit duplication capability: Clone returns a copy
// sharing no mutable state with the receiver. Clone may be expensive
// (it typically allocates) and must always succeed.
type Cloner[T any] interface {
	Clone() T
}

// CloneInto is the optimized duplication variant: CloneFrom overwrites
// the receiver with a copy of src, reusing the receiver's existing
// allocations where possible. Implemented on the pointer type.
type CloneInto[T any] interface {
	CloneFrom(src T)
}

// Copy duplicates v. Types declaring the explicit capability are cloned
// through it; every other type is duplicated by plain assignment, which
// is correct exactly for types whose values carry no shared mutable
// state. Whether a type falls in the assignment category is a static
// per-type fact, expressed here by not implementing Cloner.
func Copy[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
