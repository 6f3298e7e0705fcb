// Package convert defines the conversion capabilities a type opts into:
// infallible value conversions, fallible conversions reporting an error,
// and checked numeric narrowing.
//
// A conversion is declared in one direction, on the source type. The
// reversed-direction call (From, TryFrom) is derived from the same
// declaration, so both directions always agree; callers use whichever
// reads better at the call site.
//
// Go's error interface is the uniform boxed failure type: any concrete
// failure widens into it the moment it is returned, and %w wrapping is the
// propagation operator. Failure values produced by this package unwrap to
// the package sentinels so callers can match with errors.Is.
package convert

// Into is implemented by types that convert into a T, consuming the
// receiver. The conversion must succeed for every value of the source
// type; a conversion that can lose information or fail on part of the
// source domain belongs on TryInto instead. Into is not assumed cheap.
type Into[T any] interface {
	Into() T
}

// TryInto is implemented by types whose conversion into T can fail.
// The returned error describes which precondition the value violated;
// a failed conversion never yields a silently truncated result.
type TryInto[T any] interface {
	TryInto() (T, error)
}

// From converts src into a T. It is the reversed-direction form of
// src.Into() and yields the identical result for the same input.
func From[T any, S Into[T]](src S) T {
	return src.Into()
}

// TryFrom attempts to convert src into a T. It is the reversed-direction
// form of src.TryInto() and yields the identical outcome for the same
// input.
func TryFrom[T any, S TryInto[T]](src S) (T, error) {
	return src.TryInto()
}

// Identity returns v unchanged. Every type carries this implicit
// conversion to itself; generic code uses Identity where a conversion
// step is structurally required but the types already match.
func Identity[T any](v T) T {
	return v
}
