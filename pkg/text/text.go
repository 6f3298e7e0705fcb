// Package text provides the canonical view/owned pair for the cowl
// capabilities: Span, a read-only view of byte content, and Buffer, an
// owned, mutable copy of such content. The pair implements duplication,
// borrowing, conversion, and hashes equivalently to plain string keys,
// so a keyed.Map with string keys can be probed by a Span without
// allocating.
package text

import (
	"github.com/mesh-intelligence/cowl/pkg/own"
)

// Span is a read-only view of a run of bytes. A Span does not own its
// backing array; callers must not mutate the viewed bytes through it
// (which is also why Span declares no mutable borrow). A Span remains
// valid only as long as the data it was derived from.
type Span []byte

// SpanOf views s without copying its content beyond the string header.
func SpanOf[S ~string | ~[]byte](s S) Span {
	return Span(s)
}

// Len returns the number of viewed bytes.
func (s Span) Len() int {
	return len(s)
}

// String returns the viewed content as a string, copying it.
func (s Span) String() string {
	return string(s)
}

// Equal reports whether two spans view equal content.
func (s Span) Equal(other Span) bool {
	return string(s) == string(other)
}

// ToOwned duplicates the viewed content into an independent Buffer.
// This is the duplication a Cow cell over the pair invokes on
// promotion.
func (s Span) ToOwned() Buffer {
	return Buffer(append([]byte(nil), s...))
}

// Borrow widens the span to its raw byte form, sharing the backing
// array.
func (s Span) Borrow() []byte {
	return []byte(s)
}

// Into wraps the span in a cell, in the borrowed state.
func (s Span) Into() own.Cow[Span, Buffer] {
	return own.Borrowed[Span, Buffer](s)
}

// Buffer owns a run of bytes and may be mutated freely.
type Buffer []byte

// NewBuffer copies s into a fresh Buffer.
func NewBuffer[S ~string | ~[]byte](s S) Buffer {
	return Buffer(append([]byte(nil), s...))
}

// Len returns the number of owned bytes.
func (b Buffer) Len() int {
	return len(b)
}

// String returns the owned content as a string, copying it.
func (b Buffer) String() string {
	return string(b)
}

// Equal reports whether two buffers hold equal content.
func (b Buffer) Equal(other Buffer) bool {
	return string(b) == string(other)
}

// Borrow derives a read-only view of the buffer without copying. The
// view is invalidated by any subsequent mutation of the buffer.
func (b Buffer) Borrow() Span {
	return Span(b)
}

// BorrowNext chains toward wider views: a Buffer reaches []byte through
// its Span.
func (b Buffer) BorrowNext() any {
	return b.Borrow()
}

// Clone returns an independent copy of the buffer.
func (b Buffer) Clone() Buffer {
	return Buffer(append([]byte(nil), b...))
}

// CloneFrom overwrites the buffer with a copy of src, reusing the
// existing allocation when it is large enough.
func (b *Buffer) CloneFrom(src Buffer) {
	*b = append((*b)[:0], src...)
}

// Append appends raw bytes to the buffer.
func (b *Buffer) Append(p []byte) {
	*b = append(*b, p...)
}

// AppendString appends string content to the buffer.
func (b *Buffer) AppendString(s string) {
	*b = append(*b, s...)
}

// Into wraps the buffer in a cell, in the owned state.
func (b Buffer) Into() own.Cow[Span, Buffer] {
	return own.Owned[Span, Buffer](b)
}
