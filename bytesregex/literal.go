package bytesregex

import (
	"bytes"

	"github.com/coregx/bzregex/term"
)

// Literal is a concrete byte run a match must contain. Complete means the
// literal spans the whole branch it was extracted from: matching it alone
// is sufficient for that branch, not merely necessary.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Seq is the set of alternative literals extracted from a term — one per
// Or branch that bottoms out in a pure Concat/Symbol chain.
type Seq struct {
	literals []Literal
}

// Len returns the number of extracted literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
func (s *Seq) Get(i int) Literal { return s.literals[i] }

// IsEmpty reports whether extraction found no required literal.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether every extracted literal spans the whole of its
// branch. A Prefilter hit still only says the haystack contains a literal,
// not that the whole haystack matches.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, l := range s.literals {
		if !l.Complete {
			return false
		}
	}
	return true
}

// ExtractLiterals walks t, collecting one required byte run per Or branch:
// the run of Symbols a branch's Concat chain starts with. The literal is
// Complete when the chain holds nothing but Symbols. A branch that does not
// start with a Symbol has no such run, and then no literal is required of t
// at all, so the result is empty.
func ExtractLiterals(t *term.Term[byte]) *Seq {
	return &Seq{literals: collectLiterals(t)}
}

func collectLiterals(t *term.Term[byte]) []Literal {
	if t.Kind() == term.KindOr {
		left := collectLiterals(t.Left())
		if len(left) == 0 {
			return nil
		}
		right := collectLiterals(t.Right())
		if len(right) == 0 {
			return nil
		}
		return append(left, right...)
	}
	run, whole := literalRun(t)
	if len(run) == 0 {
		return nil
	}
	return []Literal{{Bytes: run, Complete: whole}}
}

// literalRun returns the byte run obtained by reading a Concat/Symbol chain
// left to right, and whether that chain exhausts t (whole).
func literalRun(t *term.Term[byte]) ([]byte, bool) {
	switch t.Kind() {
	case term.KindSymbol:
		return []byte{t.Sym()}, true
	case term.KindConcat:
		lb, lwhole := literalRun(t.Left())
		if !lwhole {
			return lb, false
		}
		rb, rwhole := literalRun(t.Right())
		return append(bytes.Clone(lb), rb...), rwhole
	default:
		return nil, false
	}
}
