// Package own provides the ownership-polymorphic value holder: a cell
// that starts as a borrowed view and becomes an independently owned
// value only when mutation is actually requested, plus the duplication
// capabilities the cell is built on.
//
// The cell lets generic code defer the borrow-vs-own decision. Read
// paths never copy; the single duplication happens lazily, on the first
// mutable access, and never again for the lifetime of the cell.
//
// Cells are not safe for concurrent use. Sharing a cell across
// goroutines requires an external exclusivity guard around Mutable and
// Take, the same shared/exclusive discipline as any Go value.
package own

import "github.com/mesh-intelligence/cowl/pkg/convert"

// Owner is implemented by view types whose referenced data can be
// duplicated into an independently owned O. ToOwned is the duplication
// the cell invokes on promotion; it must always succeed.
type Owner[O any] interface {
	ToOwned() O
}

// Borrower is implemented by owned types that can derive a read-only
// view of themselves without copying.
type Borrower[V any] interface {
	Borrow() V
}

// Cow holds either a borrowed V view or an owned O value. A cell is in
// exactly one of the two states at any time; the borrowed-to-owned
// transition is one-directional and happens at most once.
//
// For the pair to be coherent, a view and the owned value duplicated
// from it must refer to equal data: o.Borrow() observed after
// v.ToOwned() must equal v. That is the implementer's contract on the
// (V, O) pair, not something the cell checks.
//
// The zero Cow is a borrowed cell over the zero view.
type Cow[V Owner[O], O Borrower[V]] struct {
	view  V
	value O
	owned bool
}

// Borrowed wraps a view in a cell without copying. The cell remains
// valid only as long as the data behind v does.
func Borrowed[V Owner[O], O Borrower[V]](v V) Cow[V, O] {
	return Cow[V, O]{view: v}
}

// Owned wraps an already-owned value in a cell. No duplication will
// ever occur for this cell.
func Owned[V Owner[O], O Borrower[V]](o O) Cow[V, O] {
	return Cow[V, O]{value: o, owned: true}
}

// Wrap builds a cell from any source declaring an infallible conversion
// into the cell type. View-like sources convert to a borrowed cell and
// value-like sources to an owned one, so a computed value and a wrapped
// constant can satisfy the same return type at different call sites.
func Wrap[V Owner[O], O Borrower[V]](src convert.Into[Cow[V, O]]) Cow[V, O] {
	return src.Into()
}

// View returns a shared view of the held data regardless of state: the
// stored view when borrowed, a view derived from the owned value
// otherwise. View has no side effects and never copies.
func (c *Cow[V, O]) View() V {
	if c.owned {
		return c.value.Borrow()
	}
	return c.view
}

// Mutable returns exclusive access to the owned value, promoting a
// borrowed cell first: the viewed data is duplicated via ToOwned, the
// cell transitions to owned, and the old view is dropped. The
// duplication happens on the first Mutable call only; an already-owned
// cell returns directly.
func (c *Cow[V, O]) Mutable() *O {
	if !c.owned {
		c.value = c.view.ToOwned()
		c.owned = true
		var zero V
		c.view = zero
	}
	return &c.value
}

// Take consumes the cell and returns an owned value: a duplicate of the
// viewed data when borrowed, the stored value itself (no duplication)
// when owned. The cell must not be used after Take.
func (c *Cow[V, O]) Take() O {
	if c.owned {
		return c.value
	}
	return c.view.ToOwned()
}

// IsOwned reports whether the cell has been promoted (or was constructed
// owned).
func (c *Cow[V, O]) IsOwned() bool {
	return c.owned
}
