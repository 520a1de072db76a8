package term

// IsNullable decides whether ε ∈ L(t), by pure structural recursion
// (spec.md §4.2):
//
//	EmptySet          false
//	EmptyString       true
//	Symbol            false
//	Concat(L, R)      L.nullable ∧ R.nullable
//	Closure           true
//	Or(L, R)          L.nullable ∨ R.nullable
//	And(L, R)         L.nullable ∧ R.nullable
//	Complement(I)     ¬I.nullable
func IsNullable[S comparable](t *Term[S]) bool {
	switch t.kind {
	case KindEmptySet:
		return false
	case KindEmptyString:
		return true
	case KindSymbol:
		return false
	case KindConcat:
		return IsNullable(t.left) && IsNullable(t.right)
	case KindClosure:
		return true
	case KindOr:
		return IsNullable(t.left) || IsNullable(t.right)
	case KindAnd:
		return IsNullable(t.left) && IsNullable(t.right)
	case KindComplement:
		return !IsNullable(t.left)
	default:
		panic("term: IsNullable: unknown kind " + t.kind.String())
	}
}

// Nullable returns EmptyString if t accepts the empty string, else
// EmptySet. It is the ν(L) helper used by the Concat derivative rule.
func Nullable[S comparable](t *Term[S], b Builder[S]) *Term[S] {
	if IsNullable(t) {
		return b.EmptyString()
	}
	return b.EmptySet()
}
