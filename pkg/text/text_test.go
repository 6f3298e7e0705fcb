package text_test

import (
	"testing"

	"github.com/mesh-intelligence/cowl/pkg/text"
)

func TestSpanOf(t *testing.T) {
	fromString := text.SpanOf("abc")
	fromBytes := text.SpanOf([]byte("abc"))
	if !fromString.Equal(fromBytes) {
		t.Errorf("spans differ: %q vs %q", fromString, fromBytes)
	}
	if fromString.Len() != 3 {
		t.Errorf("Len = %d, want 3", fromString.Len())
	}
}

func TestSpanToOwnedIsIndependent(t *testing.T) {
	src := []byte("abc")
	span := text.SpanOf(src)

	buf := span.ToOwned()
	buf.AppendString("d")
	src[0] = 'X'

	if buf.String() != "abcd" {
		t.Errorf("buffer = %q, want %q", buf, "abcd")
	}
	if span.String() != "Xbc" {
		t.Errorf("span no longer views the source: %q", span)
	}
}

func TestBufferBorrowSharesBacking(t *testing.T) {
	buf := text.NewBuffer("abc")
	span := buf.Borrow()
	if &span[0] != &buf[0] {
		t.Error("Borrow copied the backing array")
	}
	if span.String() != "abc" {
		t.Errorf("span = %q", span)
	}
}

func TestBufferClone(t *testing.T) {
	orig := text.NewBuffer("abc")
	dup := orig.Clone()
	dup.AppendString("d")

	if orig.String() != "abc" {
		t.Errorf("original mutated by clone: %q", orig)
	}
	if dup.String() != "abcd" {
		t.Errorf("clone = %q", dup)
	}
}

func TestBufferCloneFrom(t *testing.T) {
	dst := text.NewBuffer("a long buffer with spare capacity")
	src := text.NewBuffer("short")

	dst.CloneFrom(src)
	if !dst.Equal(src) {
		t.Errorf("dst = %q, want %q", dst, src)
	}

	// The copy is independent of the source.
	dst.AppendString("!")
	if src.String() != "short" {
		t.Errorf("source mutated through CloneFrom: %q", src)
	}
}

func TestBufferAppend(t *testing.T) {
	var buf text.Buffer
	buf.Append([]byte("ab"))
	buf.AppendString("cd")
	if buf.String() != "abcd" || buf.Len() != 4 {
		t.Errorf("buffer = %q (len %d)", buf, buf.Len())
	}
}

func TestIntoCellStates(t *testing.T) {
	borrowed := text.SpanOf("v").Into()
	if borrowed.IsOwned() {
		t.Error("span converted to an owned cell")
	}
	owned := text.NewBuffer("v").Into()
	if !owned.IsOwned() {
		t.Error("buffer converted to a borrowed cell")
	}
}
