package convert

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Numeric covers the built-in fixed-width numeric types accepted by
// Number.
type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Number converts v to Out, failing when the value is not exactly
// representable in the target type. A failed conversion never returns a
// truncated or wrapped-around result; the Out value accompanying a
// non-nil error is the zero value.
//
// The returned error is a *Failure unwrapping to ErrOutOfRange or, for
// float inputs with a fractional part, ErrNotExact.
func Number[Out, In Numeric](v In) (Out, error) {
	out, err := safecast.Convert[Out](v)
	if err == nil {
		return out, nil
	}
	cause := ErrOutOfRange
	if f := float64(v); f != math.Trunc(f) {
		cause = ErrNotExact
	}
	var zero Out
	return zero, &Failure{
		Op:     "convert.Number",
		Value:  v,
		Target: fmt.Sprintf("%T", zero),
		Err:    cause,
	}
}

// MustNumber is Number for values the caller knows are in range, such as
// slice lengths narrowed to a wire width. It panics on failure.
func MustNumber[Out, In Numeric](v In) Out {
	out, err := Number[Out](v)
	if err != nil {
		panic(err)
	}
	return out
}
