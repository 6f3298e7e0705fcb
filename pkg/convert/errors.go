package convert

import (
	"errors"
	"fmt"
)

// Conversion failure sentinels. Failure values returned by this package
// unwrap to one of these, so callers can match with errors.Is.
var (
	// ErrOutOfRange reports a value outside the representable range of
	// the target type.
	ErrOutOfRange = errors.New("value out of range for target type")

	// ErrNotExact reports a value that fits the target's range but cannot
	// be represented exactly (for example a float with a fractional part
	// converted to an integer).
	ErrNotExact = errors.New("value not exactly representable in target type")
)

// Failure describes a failed conversion: the operation, the input value,
// the name of the target type, and the underlying cause. It implements
// error and unwraps to the cause, which for conversions produced by this
// package is one of the sentinels above.
type Failure struct {
	Op     string // operation that failed, e.g. "convert.Number"
	Value  any    // input value
	Target string // target type name
	Err    error  // underlying cause
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v -> %s: %v", f.Op, f.Value, f.Target, f.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Describer is the minimal capability a non-error failure value needs to
// participate in the error chain: it can describe itself.
type Describer interface {
	Describe() string
}

// Widen adapts any describable failure value into an error. Types that
// already implement error are returned as-is; everything else is wrapped,
// so individual failure types need no bespoke conversion code.
func Widen(d Describer) error {
	if d == nil {
		return nil
	}
	if err, ok := d.(error); ok {
		return err
	}
	return describedError{d}
}

// describedError carries a Describer through the error chain.
type describedError struct {
	d Describer
}

func (e describedError) Error() string {
	return e.d.Describe()
}
