package term

import "github.com/coregx/bzregex/internal/symbolclass"

// Derive computes the Brzozowski derivative ∂σt of t with respect to the
// symbol class σ (spec.md §4.3):
//
//	EmptySet          EmptySet
//	EmptyString       EmptySet
//	Symbol(s)         EmptyString if σ matches s, else EmptySet
//	Concat(L, R)      (∂σL · R) ∪ (ν(L) · ∂σR)
//	Closure(I)        ∂σI · Closure(I)
//	Or(L, R)          ∂σL ∪ ∂σR
//	And(L, R)         ∂σL ∩ ∂σR
//	Complement(I)     ¬(∂σI)
//
// Construction always goes through b, so when b is a CanonicalBuilder the
// result is already in canonical form.
func Derive[S comparable](t *Term[S], sigma symbolclass.Class[S], b Builder[S]) *Term[S] {
	switch t.kind {
	case KindEmptySet:
		return b.EmptySet()
	case KindEmptyString:
		return b.EmptySet()
	case KindSymbol:
		if sigma.Matches(t.sym) {
			return b.EmptyString()
		}
		return b.EmptySet()
	case KindConcat:
		left := b.Concat(Derive(t.left, sigma, b), t.right)
		right := b.Concat(Nullable(t.left, b), Derive(t.right, sigma, b))
		return b.Or(left, right)
	case KindClosure:
		return b.Concat(Derive(t.left, sigma, b), t)
	case KindOr:
		return b.Or(Derive(t.left, sigma, b), Derive(t.right, sigma, b))
	case KindAnd:
		return b.And(Derive(t.left, sigma, b), Derive(t.right, sigma, b))
	case KindComplement:
		return b.Complement(Derive(t.left, sigma, b))
	default:
		panic("term: Derive: unknown kind " + t.kind.String())
	}
}

// DeriveSymbol is the single-symbol specialization of Derive, with
// σ = Include({s}).
func DeriveSymbol[S comparable](t *Term[S], s S, b Builder[S]) *Term[S] {
	return Derive(t, symbolclass.Include(s), b)
}

// DeriveWord is the left fold of per-symbol derivatives over word.
func DeriveWord[S comparable](t *Term[S], word []S, b Builder[S]) *Term[S] {
	cur := t
	for _, s := range word {
		cur = DeriveSymbol(cur, s, b)
	}
	return cur
}

// IsMatch reports whether word ∈ L(t), by taking the derivative of t with
// respect to word and testing the residual for nullability.
func IsMatch[S comparable](t *Term[S], word []S, b Builder[S]) bool {
	return IsNullable(DeriveWord(t, word, b))
}
