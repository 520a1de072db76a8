package term

import "testing"

// Scenarios from spec.md §8.
func TestIsMatchScenarios(t *testing.T) {
	b := newCanon()

	t.Run("symbol", func(t *testing.T) {
		r := b.Symbol(42)
		if !IsMatch(r, []int{42}, b) {
			t.Error("symbol(42) should match [42]")
		}
		if IsMatch(r, []int{42, 42}, b) {
			t.Error("symbol(42) should not match [42,42]")
		}
		if IsMatch(r, []int{11}, b) {
			t.Error("symbol(42) should not match [11]")
		}
	})

	t.Run("closure", func(t *testing.T) {
		r := b.Closure(b.Symbol(42))
		if !IsMatch(r, nil, b) {
			t.Error("closure(symbol(42)) should match []")
		}
		if !IsMatch(r, []int{42, 42, 42}, b) {
			t.Error("closure(symbol(42)) should match [42,42,42]")
		}
		if IsMatch(r, []int{42, 11}, b) {
			t.Error("closure(symbol(42)) should not match [42,11]")
		}
	})

	t.Run("intersection exactly one", func(t *testing.T) {
		r := b.And(b.Symbol(42), b.Closure(b.Symbol(42)))
		if !IsMatch(r, []int{42}, b) {
			t.Error("and(symbol(42), closure(symbol(42))) should match [42]")
		}
		if IsMatch(r, []int{42, 42}, b) {
			t.Error("and(symbol(42), closure(symbol(42))) should not match [42,42]")
		}
	})

	t.Run("union", func(t *testing.T) {
		r := b.Or(b.Symbol(42), b.Closure(b.Symbol(11)))
		if !IsMatch(r, []int{11, 11}, b) {
			t.Error("or(symbol(42), closure(symbol(11))) should match [11,11]")
		}
		if IsMatch(r, []int{42, 11}, b) {
			t.Error("or(symbol(42), closure(symbol(11))) should not match [42,11]")
		}
	})

	t.Run("complement", func(t *testing.T) {
		r := b.Complement(b.Symbol(11))
		if !IsMatch(r, []int{42}, b) {
			t.Error("complement(symbol(11)) should match [42]")
		}
		if IsMatch(r, []int{11}, b) {
			t.Error("complement(symbol(11)) should not match [11]")
		}
		if !IsMatch(r, nil, b) {
			t.Error("complement(symbol(11)) should match [] (epsilon is not in symbol(11))")
		}
	})
}

func TestCanonicalFormCheck(t *testing.T) {
	b := newCanon()
	left := b.And(b.Symbol(42), b.And(b.Symbol(11), b.Symbol(17)))
	right := b.And(b.And(b.Symbol(11), b.Symbol(17)), b.Symbol(42))
	if !Equal(left, right) {
		t.Error("intersection should reassociate/reorder to the same canonical term")
	}
	if left.Key() != right.Key() {
		t.Error("canonical keys should match for structurally equal terms")
	}
}

// Derivative soundness: IsMatch(R, s::w) == IsMatch(derive(R,s), w).
func TestDerivativeSoundness(t *testing.T) {
	b := newCanon()
	r := b.Or(b.Concat(b.Symbol(1), b.Closure(b.Symbol(2))), b.And(b.Symbol(1), b.Symbol(1)))

	words := [][]int{{1, 2, 2}, {1}, {1, 1}, {2}, {}}
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		full := append([]int{}, w...)
		derived := DeriveSymbol(r, full[0], b)
		got := IsMatch(r, full, b)
		want := IsMatch(derived, full[1:], b)
		if got != want {
			t.Errorf("IsMatch(R, %v) = %v, want %v (derivative soundness)", full, got, want)
		}
	}
}

func TestRebuildIdentityThroughPure(t *testing.T) {
	p := NewPureBuilder[int]()
	orig := p.Or(p.Symbol(1), p.Concat(p.Symbol(2), p.Closure(p.Symbol(3))))
	rebuilt := Rebuild(orig, NewPureBuilder[int]())
	if !Equal(orig, rebuilt) {
		t.Error("rebuilding a pure term through the pure builder should yield an equal term")
	}
}

func TestRebuildCanonicalizes(t *testing.T) {
	p := NewPureBuilder[int]()
	c := newCanon()
	nonCanon := p.Or(p.Symbol(1), p.Symbol(1)) // Or(X, X), not collapsed under Pure
	if nonCanon.Kind() != KindOr {
		t.Fatal("pure builder should not collapse Or(X, X)")
	}

	rebuilt := Rebuild(nonCanon, c)
	if !Equal(rebuilt, c.Symbol(1)) {
		t.Error("rebuilding through the canonical builder should collapse Or(X, X) to X")
	}
}
