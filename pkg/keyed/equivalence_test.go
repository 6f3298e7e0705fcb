package keyed_test

import (
	"hash/maphash"
	"testing"

	"github.com/mesh-intelligence/cowl/pkg/keyed"
	"github.com/mesh-intelligence/cowl/pkg/text"
)

// Hash consistency is the contract everything else rests on: a view
// must hash exactly as the owned key it was derived from.
func TestEquivalenceHashConsistency(t *testing.T) {
	strategy := keyed.StringKey[string]()
	byView := keyed.BytesView[string, text.Span]()
	seed := maphash.MakeSeed()

	for _, s := range []string{"", "a", "hello", "with spaces", "ünïcode"} {
		keyHash := strategy.Hash(seed, s)
		viewHash := byView.HashView(seed, text.SpanOf(s))
		if keyHash != viewHash {
			t.Errorf("hash(%q) differs between key and view: %d vs %d", s, keyHash, viewHash)
		}
	}
}

func TestEquivalenceRoundTrip(t *testing.T) {
	m := keyed.NewMap[string, int](keyed.StringKey[string]())
	byView := keyed.BytesView[string, text.Span]()

	words := []string{"alpha", "beta", "gamma", "delta"}
	for i, w := range words {
		m.Set(w, i)
	}

	// Every stored key is found through a view of equal content.
	for i, w := range words {
		view := text.SpanOf([]byte(w))
		v, ok := keyed.GetBy(m, byView, view)
		if !ok || v != i {
			t.Errorf("GetBy(%q) = %d, %v; want %d", w, v, ok, i)
		}
		if !keyed.ContainsBy(m, byView, view) {
			t.Errorf("ContainsBy(%q) = false", w)
		}
	}

	if _, ok := keyed.GetBy(m, byView, text.SpanOf("epsilon")); ok {
		t.Error("GetBy found a key that was never stored")
	}
}

func TestSelfEquivalenceMatchesPlainLookup(t *testing.T) {
	strategy := keyed.StringKey[string]()
	m := keyed.NewMap[string, int](strategy)
	self := keyed.Self(strategy)

	m.Set("k", 7)

	direct, directOK := m.Get("k")
	viaSelf, selfOK := keyed.GetBy(m, self, "k")
	if direct != viaSelf || directOK != selfOK {
		t.Errorf("Get = (%d, %v), GetBy(Self) = (%d, %v)", direct, directOK, viaSelf, selfOK)
	}

	if _, ok := keyed.GetBy(m, self, "missing"); ok {
		t.Error("GetBy(Self) found a missing key")
	}
}

func TestStringViewOverBytesKeys(t *testing.T) {
	m := keyed.NewMap[[]byte, int](keyed.BytesKey[[]byte]())
	byView := keyed.StringView[[]byte, string]()

	m.Set([]byte("owned"), 1)

	if v, ok := keyed.GetBy(m, byView, "owned"); !ok || v != 1 {
		t.Errorf("GetBy = %d, %v", v, ok)
	}
	if !keyed.DeleteBy(m, byView, "owned") {
		t.Error("DeleteBy = false")
	}
	if m.Len() != 0 {
		t.Errorf("Len after DeleteBy = %d", m.Len())
	}
}

func TestUpdateBy(t *testing.T) {
	m := keyed.NewMap[string, int64](keyed.StringKey[string]())
	byView := keyed.BytesView[string, text.Span]()

	m.Set("word", 1)

	for i := 0; i < 3; i++ {
		if !keyed.UpdateBy(m, byView, text.SpanOf("word"), func(v *int64) { *v++ }) {
			t.Fatal("UpdateBy missed an existing key")
		}
	}
	if v, _ := m.Get("word"); v != 4 {
		t.Errorf("count = %d, want 4", v)
	}

	if keyed.UpdateBy(m, byView, text.SpanOf("other"), func(v *int64) { *v++ }) {
		t.Error("UpdateBy reported an update for a missing key")
	}
	if m.Len() != 1 {
		t.Errorf("UpdateBy inserted a key; Len = %d", m.Len())
	}
}

func TestDeleteBy(t *testing.T) {
	m := keyed.NewMap[string, int](keyed.StringKey[string]())
	byView := keyed.BytesView[string, text.Span]()

	m.Set("a", 1)
	m.Set("b", 2)

	if !keyed.DeleteBy(m, byView, text.SpanOf("a")) {
		t.Error("DeleteBy(a) = false")
	}
	if keyed.DeleteBy(m, byView, text.SpanOf("a")) {
		t.Error("second DeleteBy(a) = true")
	}
	if _, ok := m.Get("a"); ok {
		t.Error("deleted key still present")
	}
	if v, ok := m.Get("b"); !ok || v != 2 {
		t.Errorf("unrelated key disturbed: %d, %v", v, ok)
	}
}
