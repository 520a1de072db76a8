package dfa

import (
	"github.com/coregx/bzregex/alphabet"
	"github.com/coregx/bzregex/internal/conv"
	"github.com/coregx/bzregex/internal/symbolclass"
	"github.com/coregx/bzregex/term"
)

// Builder performs fixed-point exploration of derivatives to compile a
// term into an Automaton (spec.md §4.5).
type Builder[S comparable] struct {
	alpha alphabet.Alphabet[S]
	term  term.Builder[S]
	cfg   Config
}

// NewBuilder returns a Builder. tb is the term builder used to construct
// every derivative encountered during exploration — it should normally be
// a *term.CanonicalBuilder[S], since ASCF is what guarantees the residue
// set explored here is finite.
func NewBuilder[S comparable](alpha alphabet.Alphabet[S], tb term.Builder[S], cfg Config) *Builder[S] {
	return &Builder[S]{alpha: alpha, term: tb, cfg: cfg}
}

// Build compiles r into an Automaton.
//
// Algorithm (spec.md §4.5):
//  1. Walk r, collecting Σ₀: every symbol occurring literally in r.
//  2. Compute the default class D = Exclude(Σ₀).
//  3. Intern r as state 0.
//  4. While there are interned-but-unprocessed states, compute the
//     derivative with respect to each symbol in Σ₀ and with respect to D,
//     interning each result (assigning a new index if unseen).
//  5. ASCF guarantees this terminates: the canonicalizing builder bounds
//     the number of distinct residues reachable from r.
func (b *Builder[S]) Build(r *term.Term[S]) (*Automaton[S], error) {
	sigma0 := b.collectAlphabet(r)
	def := symbolclass.Exclude(sigma0...)

	index := make(map[string]int)
	var regexes []*term.Term[S]

	intern := func(t *term.Term[S]) (int, error) {
		key := t.Key()
		if i, ok := index[key]; ok {
			return i, nil
		}
		i := len(regexes)
		if b.cfg.MaxStates > 0 && conv.IntToUint32(i) >= b.cfg.MaxStates {
			return 0, &BuildError{Limit: b.cfg.MaxStates, Count: conv.IntToUint32(i + 1)}
		}
		index[key] = i
		regexes = append(regexes, t)
		return i, nil
	}

	if _, err := intern(r); err != nil {
		return nil, err
	}

	// regexes grows as new residues are discovered; iterating by index
	// over a slice that grows under us is the FIFO work queue of spec.md
	// §4.5 step 3-4 without a separate queue data structure.
	var states []State[S]
	for i := 0; i < len(regexes); i++ {
		q := regexes[i]

		transitions := make(map[S]int, len(sigma0))
		for _, s := range sigma0 {
			d := term.DeriveSymbol(q, s, b.term)
			di, err := intern(d)
			if err != nil {
				return nil, err
			}
			transitions[s] = di
		}

		defResidue := term.Derive(q, def, b.term)
		defIdx, err := intern(defResidue)
		if err != nil {
			return nil, err
		}

		states = append(states, State[S]{
			Regex:       q,
			Accepting:   term.IsNullable(q),
			Transitions: transitions,
			Default:     defIdx,
		})
	}

	return &Automaton[S]{States: states}, nil
}

// collectAlphabet walks t, collecting every symbol that occurs literally,
// sorted by alpha's order for a deterministic (and therefore testable)
// iteration order — spec.md §4.5 notes this ordering is not observable
// through matching semantics, but reproducible state indices help tests.
func (b *Builder[S]) collectAlphabet(t *term.Term[S]) []S {
	seen := make(map[S]struct{})
	var walk func(t *term.Term[S])
	walk = func(t *term.Term[S]) {
		switch t.Kind() {
		case term.KindSymbol:
			seen[t.Sym()] = struct{}{}
		case term.KindConcat, term.KindOr, term.KindAnd:
			walk(t.Left())
			walk(t.Right())
		case term.KindClosure, term.KindComplement:
			walk(t.Left())
		}
	}
	walk(t)

	out := make([]S, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sortSymbols(out, b.alpha)
	return out
}

func sortSymbols[S comparable](items []S, alpha alphabet.Alphabet[S]) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && alpha.Compare(items[j-1], items[j]) > 0; j-- {
			items[j-1], items[j] = items[j], items[j-1]
		}
	}
}
