// Package cowl carries the module identity for the cowl libraries.
//
// The functionality lives in the sibling packages: own (clone-on-write
// cells and duplication), borrow (reference widening), convert (infallible
// and fallible conversions), keyed (equivalence-keyed maps), and text (the
// canonical view/owned text pair).
package cowl

// Version is the cowl release version, also reported by the tally CLI.
const Version = "0.3.0"
