package text_test

import (
	"testing"

	"github.com/mesh-intelligence/cowl/pkg/text"
)

func TestFoldAlreadyLowerBorrows(t *testing.T) {
	src := []byte("already lower 123")
	cell := text.Fold(text.SpanOf(src))

	if cell.IsOwned() {
		t.Error("Fold copied a span that needed no folding")
	}
	view := cell.View()
	if view.String() != string(src) {
		t.Errorf("view = %q", view)
	}
	// Still the same backing array: no duplication happened.
	if &view[0] != &src[0] {
		t.Error("borrowed view does not share the source bytes")
	}
}

func TestFoldMixedCaseOwns(t *testing.T) {
	src := []byte("Hello World")
	cell := text.Fold(text.SpanOf(src))

	if !cell.IsOwned() {
		t.Error("Fold did not promote a span that changed")
	}
	if got := cell.View().String(); got != "hello world" {
		t.Errorf("folded view = %q, want %q", got, "hello world")
	}
	// The source is untouched; folding worked on the owned copy.
	if string(src) != "Hello World" {
		t.Errorf("source mutated: %q", src)
	}
}

func TestFoldEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantOwned bool
	}{
		{"empty", "", "", false},
		{"digits and punctuation", "42, ok!", "42, ok!", false},
		{"single upper", "A", "a", true},
		{"non-ascii untouched", "Grüße", "grüße", true},
		{"non-ascii only", "üß", "üß", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := text.Fold(text.SpanOf(tt.in))
			if got := cell.View().String(); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if cell.IsOwned() != tt.wantOwned {
				t.Errorf("Fold(%q) owned = %v, want %v", tt.in, cell.IsOwned(), tt.wantOwned)
			}
		})
	}
}
