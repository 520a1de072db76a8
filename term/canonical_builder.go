package term

import "github.com/coregx/bzregex/alphabet"

// CanonicalBuilder constructs terms in approximately-similar canonical form
// (ASCF): every operation applies the rewrite rules of spec.md §4.1 at
// construction time, so that associativity, commutativity, and idempotence
// of union/intersection, involution of complement, and the identity/
// absorbing behavior of ∅/ε/Σ* are all closed by construction. This is
// what bounds the number of distinct derivative residues the DFA builder
// can encounter, guaranteeing termination.
//
// CanonicalBuilder does not decide full language equivalence: distributivity,
// De Morgan's laws, and semantic absorptions like X ∪ (X ∩ Y) = X are left
// open; hence "approximately". The identities that are closed already keep
// the set of derivative residues finite.
type CanonicalBuilder[S comparable] struct {
	alpha alphabet.Alphabet[S]
}

// NewCanonicalBuilder returns a CanonicalBuilder using alpha's total order
// to sort union/intersection operands (see Compare).
func NewCanonicalBuilder[S comparable](alpha alphabet.Alphabet[S]) *CanonicalBuilder[S] {
	return &CanonicalBuilder[S]{alpha: alpha}
}

func (b *CanonicalBuilder[S]) EmptySet() *Term[S] { return leaf[S](KindEmptySet, Canonical) }

func (b *CanonicalBuilder[S]) EmptyString() *Term[S] { return leaf[S](KindEmptyString, Canonical) }

func (b *CanonicalBuilder[S]) Symbol(s S) *Term[S] { return symbolTerm(s, Canonical) }

// Concat implements the concatenation rules: ∅ absorbs, ε is the identity,
// and nested Concat nodes are flattened then refolded right-associatively
// without reordering (concatenation is non-commutative).
func (b *CanonicalBuilder[S]) Concat(l, r *Term[S]) *Term[S] {
	if l.kind == KindEmptySet || r.kind == KindEmptySet {
		return b.EmptySet()
	}
	if l.kind == KindEmptyString {
		return r
	}
	if r.kind == KindEmptyString {
		return l
	}

	items := append(flattenConcat(l), flattenConcat(r)...)
	return foldRightConcat(items)
}

func flattenConcat[S comparable](t *Term[S]) []*Term[S] {
	if t.kind != KindConcat {
		return []*Term[S]{t}
	}
	return append(flattenConcat(t.left), flattenConcat(t.right)...)
}

func foldRightConcat[S comparable](items []*Term[S]) *Term[S] {
	result := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		result = binary(KindConcat, items[i], result, Canonical)
	}
	return result
}

// Closure implements the closure rules: ∅* = ε, ε* = ε, and (I*)* = I*.
func (b *CanonicalBuilder[S]) Closure(i *Term[S]) *Term[S] {
	switch i.kind {
	case KindEmptySet, KindEmptyString:
		return b.EmptyString()
	case KindClosure:
		return i
	default:
		return unary(KindClosure, i, Canonical)
	}
}

// Or implements the union rules: ∅ is the identity, Σ* absorbs, and
// otherwise nested Or nodes are flattened into a multiset, sorted by the
// total order (§4.1.1), deduplicated, and refolded right-associatively —
// making union commutative and idempotent up to syntactic equality.
func (b *CanonicalBuilder[S]) Or(l, r *Term[S]) *Term[S] {
	if l.kind == KindEmptySet {
		return r
	}
	if r.kind == KindEmptySet {
		return l
	}
	if isUniversal(l) {
		return l
	}
	if isUniversal(r) {
		return r
	}

	items := append(flattenOr(l), flattenOr(r)...)
	items = b.sortDedup(items)
	return foldRightBinary(KindOr, items)
}

func flattenOr[S comparable](t *Term[S]) []*Term[S] {
	if t.kind != KindOr {
		return []*Term[S]{t}
	}
	return append(flattenOr(t.left), flattenOr(t.right)...)
}

// And implements the intersection rules, dual to Or: ∅ absorbs, Σ* is the
// identity, and otherwise flatten/sort/dedup/refold as with Or.
func (b *CanonicalBuilder[S]) And(l, r *Term[S]) *Term[S] {
	if l.kind == KindEmptySet || r.kind == KindEmptySet {
		return b.EmptySet()
	}
	if isUniversal(l) {
		return r
	}
	if isUniversal(r) {
		return l
	}

	items := append(flattenAnd(l), flattenAnd(r)...)
	items = b.sortDedup(items)
	return foldRightBinary(KindAnd, items)
}

func flattenAnd[S comparable](t *Term[S]) []*Term[S] {
	if t.kind != KindAnd {
		return []*Term[S]{t}
	}
	return append(flattenAnd(t.left), flattenAnd(t.right)...)
}

// Complement implements the complement rule: ¬¬X = X, otherwise wrap.
func (b *CanonicalBuilder[S]) Complement(i *Term[S]) *Term[S] {
	if i.kind == KindComplement {
		return i.left
	}
	return unary(KindComplement, i, Canonical)
}

func isUniversal[S comparable](t *Term[S]) bool {
	return t.kind == KindComplement && t.left.kind == KindEmptySet
}

// sortDedup sorts items by Compare and removes adjacent duplicates. Since
// Compare is a strict total order consistent with Equal (see alphabet.
// Alphabet), Compare(a, b) == 0 implies Equal(a, b): duplicates are always
// adjacent after sorting.
func (b *CanonicalBuilder[S]) sortDedup(items []*Term[S]) []*Term[S] {
	sortTerms(items, b.alpha)

	out := items[:1]
	for _, t := range items[1:] {
		if Compare(b.alpha, out[len(out)-1], t) != 0 {
			out = append(out, t)
		}
	}
	return out
}

func foldRightBinary[S comparable](kind Kind, items []*Term[S]) *Term[S] {
	if len(items) == 1 {
		return items[0]
	}
	result := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		result = binary(kind, items[i], result, Canonical)
	}
	return result
}

// sortTerms sorts items in place by Compare using insertion sort: operand
// counts after flattening a regex's union/intersection chain are small in
// practice, and insertion sort keeps this file free of an extra import.
func sortTerms[S comparable](items []*Term[S], alpha alphabet.Alphabet[S]) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && Compare(alpha, items[j-1], items[j]) > 0; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}

// Compare implements the total order of spec.md §4.1.1: terms with the
// same outermost constructor compare recursively on children (left before
// right); otherwise they compare by the fixed constructor ranking
// EmptySet < EmptyString < Symbol < Concat < Closure < Or < And <
// Complement (Kind's declaration order). Symbol-vs-Symbol falls back to
// alpha's order on the underlying alphabet values. Compare is deterministic,
// total, and independent of S's hash.
func Compare[S comparable](alpha alphabet.Alphabet[S], l, r *Term[S]) int {
	if l.kind != r.kind {
		if l.kind < r.kind {
			return -1
		}
		return 1
	}

	switch l.kind {
	case KindEmptySet, KindEmptyString:
		return 0
	case KindSymbol:
		return alpha.Compare(l.sym, r.sym)
	case KindClosure, KindComplement:
		return Compare(alpha, l.left, r.left)
	default: // Concat, Or, And
		if c := Compare(alpha, l.left, r.left); c != 0 {
			return c
		}
		return Compare(alpha, l.right, r.right)
	}
}
