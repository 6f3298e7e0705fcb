package text

import "github.com/mesh-intelligence/cowl/pkg/own"

// Fold lower-cases the ASCII letters of s, deferring the copy until it
// is known to be needed: a span with no upper-case ASCII letters comes
// back as a borrowed cell over the original bytes, and only a span that
// actually changes is duplicated and folded. Non-ASCII bytes pass
// through unchanged.
func Fold(s Span) own.Cow[Span, Buffer] {
	cell := own.Borrowed[Span, Buffer](s)
	if !needsFold(s) {
		return cell
	}
	b := cell.Mutable()
	for i, c := range *b {
		if c >= 'A' && c <= 'Z' {
			(*b)[i] = c + ('a' - 'A')
		}
	}
	return cell
}

// needsFold reports whether s contains an upper-case ASCII letter.
func needsFold(s Span) bool {
	for _, c := range s {
		if c >= 'A' && c <= 'Z' {
			return true
		}
	}
	return false
}
