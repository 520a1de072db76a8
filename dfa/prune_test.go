package dfa

import "testing"

func TestPrunePreservesMatching(t *testing.T) {
	tb, b := newBuilder()
	r := tb.Or(tb.Symbol(1), tb.Concat(tb.Symbol(2), tb.Closure(tb.Symbol(3))))

	a, err := b.Build(r)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pruned := Prune(a)
	if pruned.Len() > a.Len() {
		t.Fatalf("Prune should never grow the automaton: %d > %d", pruned.Len(), a.Len())
	}

	words := [][]int{{}, {1}, {2}, {2, 3}, {2, 3, 3, 3}, {3}}
	for _, w := range words {
		before := NewMatcher(a).AdvanceMany(w)
		after := NewMatcher(pruned).AdvanceMany(w)
		if before != after {
			t.Errorf("Prune changed matching behavior for %v: before=%v after=%v", w, before, after)
		}
	}
}

func TestPruneIsIdempotentOnDenseAutomaton(t *testing.T) {
	tb, b := newBuilder()
	r := tb.Symbol(1)

	a, err := b.Build(r)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	first := Prune(a)
	second := Prune(first)
	if first.Len() != second.Len() {
		t.Error("pruning an already-dense automaton should be a no-op")
	}
}
