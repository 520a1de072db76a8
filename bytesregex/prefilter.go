package bytesregex

import (
	"errors"

	"github.com/coregx/ahocorasick"
)

// ErrNoLiterals is returned by NewPrefilter when the extracted Seq has no
// literals to build an automaton from.
var ErrNoLiterals = errors.New("bytesregex: no literals to build a prefilter from")

// Prefilter wraps an Aho-Corasick automaton over a term's extracted
// literals, mirroring coregx/coregex's meta engine's use of
// ahocorasick.Automaton for its large-alternation strategy. It never
// decides a match by itself — MaybeMatch only rules out haystacks that
// cannot possibly satisfy the term, letting callers skip DFA stepping.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// NewPrefilter builds a Prefilter from seq. Returns ErrNoLiterals if seq is
// empty.
func NewPrefilter(seq *Seq) (*Prefilter, error) {
	if seq.IsEmpty() {
		return nil, ErrNoLiterals
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{automaton: auto}, nil
}

// MaybeMatch reports whether haystack might satisfy the term the Prefilter
// was built from. false is a definite non-match; true means the DFA must
// still be consulted.
func (p *Prefilter) MaybeMatch(haystack []byte) bool {
	return p.automaton.IsMatch(haystack)
}
