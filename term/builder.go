package term

// Builder is the abstract factory over the eight term constructors. Every
// term consumed by the derivative engine or the DFA builder is produced
// through a Builder; the two concrete implementations are PureBuilder
// (identity, no rewriting) and CanonicalBuilder (ASCF rewriting).
type Builder[S comparable] interface {
	EmptySet() *Term[S]
	EmptyString() *Term[S]
	Symbol(s S) *Term[S]
	Concat(l, r *Term[S]) *Term[S]
	Closure(i *Term[S]) *Term[S]
	Or(l, r *Term[S]) *Term[S]
	And(l, r *Term[S]) *Term[S]
	Complement(i *Term[S]) *Term[S]
}

// Rebuild walks t and re-emits it through target, the only legal way to
// retarget a term to a different builder (e.g. switching a pure term to
// ASCF, or vice versa for a ground-truth comparison in tests).
func Rebuild[S comparable](t *Term[S], target Builder[S]) *Term[S] {
	switch t.kind {
	case KindEmptySet:
		return target.EmptySet()
	case KindEmptyString:
		return target.EmptyString()
	case KindSymbol:
		return target.Symbol(t.sym)
	case KindConcat:
		return target.Concat(Rebuild(t.left, target), Rebuild(t.right, target))
	case KindClosure:
		return target.Closure(Rebuild(t.left, target))
	case KindOr:
		return target.Or(Rebuild(t.left, target), Rebuild(t.right, target))
	case KindAnd:
		return target.And(Rebuild(t.left, target), Rebuild(t.right, target))
	case KindComplement:
		return target.Complement(Rebuild(t.left, target))
	default:
		panic("term: Rebuild: unknown kind " + t.kind.String())
	}
}
