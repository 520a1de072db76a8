// Package sugar offers derived regex combinators built entirely on top of
// term.Builder's eight primitive constructors: every function here expands
// to ordinary Concat/Or/Closure/Complement calls and carries no term.Kind
// of its own, so a canonicalizing builder rewrites its output exactly as it
// would any hand-built term.
package sugar

import "github.com/coregx/bzregex/term"

// Seq concatenates ts left to right. Seq() is EmptyString (the identity for
// concatenation); Seq(x) is x.
func Seq[S comparable](b term.Builder[S], ts ...*term.Term[S]) *term.Term[S] {
	if len(ts) == 0 {
		return b.EmptyString()
	}
	acc := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		acc = b.Concat(ts[i], acc)
	}
	return acc
}

// Alt unions ts. Alt() is EmptySet (the identity for union); Alt(x) is x.
func Alt[S comparable](b term.Builder[S], ts ...*term.Term[S]) *term.Term[S] {
	if len(ts) == 0 {
		return b.EmptySet()
	}
	acc := ts[len(ts)-1]
	for i := len(ts) - 2; i >= 0; i-- {
		acc = b.Or(ts[i], acc)
	}
	return acc
}

// Opt is x?, i.e. Or(x, EmptyString): x or nothing.
func Opt[S comparable](b term.Builder[S], x *term.Term[S]) *term.Term[S] {
	return b.Or(x, b.EmptyString())
}

// Plus is x+, i.e. Concat(x, Closure(x)): one or more occurrences of x.
func Plus[S comparable](b term.Builder[S], x *term.Term[S]) *term.Term[S] {
	return b.Concat(x, b.Closure(x))
}

// Lit builds the concatenation of the literal symbol sequence vs, e.g.
// Lit(b, 'a', 'b', 'c') is the term matching exactly "abc".
func Lit[S comparable](b term.Builder[S], vs ...S) *term.Term[S] {
	if len(vs) == 0 {
		return b.EmptyString()
	}
	ts := make([]*term.Term[S], len(vs))
	for i, v := range vs {
		ts[i] = b.Symbol(v)
	}
	return Seq(b, ts...)
}

// NotIn builds ¬(Symbol(v1)|Symbol(v2)|...), the complement of the
// one-symbol languages named by vs. Builder exposes no way to enumerate an
// alphabet's remaining symbols, so this is the complement of the excluded
// set's language, not a restriction to single symbols: it also accepts the
// empty string and every word of length other than one.
func NotIn[S comparable](b term.Builder[S], vs ...S) *term.Term[S] {
	if len(vs) == 0 {
		return b.Complement(b.EmptySet())
	}
	excluded := make([]*term.Term[S], len(vs))
	for i, v := range vs {
		excluded[i] = b.Symbol(v)
	}
	return b.Complement(Alt(b, excluded...))
}
